package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Client]
	items []*Client
}

// NewJSONRepository loads the client collection from dir/clients.json.
// Vehicles travel embedded in each client record.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Client](dir, "clients.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == c.ID {
			r.items[i] = c
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("client %d not found", c.ID)
}

func (r *jsonRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("client %d not found", id)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("client %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Client, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *jsonRepo) NextID(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, it := range r.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1, nil
}
