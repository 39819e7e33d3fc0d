package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*ServiceItem]
	items []*ServiceItem
}

// NewJSONRepository loads the catalog from dir/services.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*ServiceItem](dir, "services.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, item *ServiceItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, item *ServiceItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("service %d not found", item.ID)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*ServiceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("service %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*ServiceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ServiceItem, len(r.items))
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
