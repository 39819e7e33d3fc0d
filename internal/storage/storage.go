// Package storage persists entity collections as one pretty-printed JSON
// file each. A missing file is an empty collection; a malformed file is
// logged and degrades to an empty collection. Every save overwrites the
// whole file.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
)

// Collection is the file-backed store for one entity list.
type Collection[T any] struct {
	path string
}

// NewCollection creates a collection stored at dir/name.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name)}
}

// Load reads the whole collection from disk.
func (c *Collection[T]) Load() []T {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("storage: read %s: %v", c.path, err)
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("storage: parse %s: %v", c.path, err)
		return nil
	}
	return items
}

// Save overwrites the collection file with the given items.
func (c *Collection[T]) Save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
