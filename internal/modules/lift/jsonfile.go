package lift

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Lift]
	items []*Lift
}

// NewJSONRepository loads the lift pool from dir/lifts.json, seeding the
// default pool when the file does not exist yet.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Lift](dir, "lifts.json")
	items := col.Load()
	if len(items) == 0 {
		items = DefaultPool()
		if err := col.Save(items); err != nil {
			log.Printf("lift: seed pool: %v", err)
		}
	}
	return &jsonRepo{col: col, items: items}
}

func (r *jsonRepo) GetByNumber(ctx context.Context, number int) (*Lift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Number == number {
			return it, nil
		}
	}
	return nil, fmt.Errorf("lift %d not found", number)
}

func (r *jsonRepo) Update(ctx context.Context, l *Lift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.Number == l.Number {
			r.items[i] = l
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("lift %d not found", l.Number)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Lift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Lift, len(r.items))
	copy(out, r.items)
	return out, nil
}
