package employee

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Employee]
	items []*Employee
}

// NewJSONRepository loads the employee collection from dir/employees.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Employee](dir, "employees.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == e.ID {
			r.items[i] = e
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("employee %d not found", e.ID)
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
	return fmt.Errorf("employee %d not found", id)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("employee %d not found", id)
}

func (r *jsonRepo) GetByDocument(ctx context.Context, document string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Document == document {
			return it, nil
		}
	}
	return nil, fmt.Errorf("employee with document %s not found", document)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Employee, len(r.items))
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
