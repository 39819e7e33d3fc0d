package serviceorder

import (
	"context"
	"fmt"
	"sync"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type jsonRepo struct {
	mu    sync.Mutex
	col   *storage.Collection[*ServiceOrder]
	items []*ServiceOrder
}

// NewJSONRepository loads the order ledger from dir/service_orders.json.
func NewJSONRepository(dir string) Repository {
	col := storage.NewCollection[*ServiceOrder](dir, "service_orders.json")
	return &jsonRepo{col: col, items: col.Load()}
}

func (r *jsonRepo) Create(ctx context.Context, o *ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, o)
	return r.col.Save(r.items)
}

func (r *jsonRepo) Update(ctx context.Context, o *ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == o.ID {
			r.items[i] = o
			return r.col.Save(r.items)
		}
	}
	return fmt.Errorf("service order %d not found", o.ID)
}

func (r *jsonRepo) GetByID(ctx context.Context, id int) (*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("service order %d not found", id)
}

func (r *jsonRepo) List(ctx context.Context) ([]*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ServiceOrder, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *jsonRepo) ListByAppointment(ctx context.Context, appointmentID int) ([]*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ServiceOrder
	for _, it := range r.items {
		if it.AppointmentID == appointmentID {
			out = append(out, it)
		}
	}
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
