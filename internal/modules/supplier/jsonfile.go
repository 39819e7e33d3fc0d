package supplier

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Supplier]
	items []*Supplier
}

// NewJSONRepository loads the supplier collection from dir/suppliers.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Supplier](dir, "suppliers.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, s *Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, s *Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == s.ID {
			r.items[i] = s
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("supplier %d not found", s.ID)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("supplier %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Supplier, len(r.items))
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
