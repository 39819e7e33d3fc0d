package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*Appointment]
	items []*Appointment
}

// NewJSONRepository loads appointments from dir/appointments.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*Appointment](dir, "appointments.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == a.ID {
			r.items[i] = a
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("appointment %d not found", a.ID)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("appointment %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Appointment, len(r.items))
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
