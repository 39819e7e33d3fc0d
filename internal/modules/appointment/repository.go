package appointment

import "context"

// Repository defines data access for appointments.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	NextID(ctx context.Context) (int, error)
}
