package expense

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Expense]
	items []*Expense
}

// NewJSONRepository loads expenses from dir/expenses.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Expense](dir, "expenses.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, e *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return r.col.Save(r.items)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("expense %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Expense, len(r.items))
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
