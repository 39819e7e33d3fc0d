package serviceorder

import "context"

// Repository defines data access for service orders.
type Repository interface {
	Create(ctx context.Context, o *ServiceOrder) error
	Update(ctx context.Context, o *ServiceOrder) error
	GetByID(ctx context.Context, id int) (*ServiceOrder, error)
	List(ctx context.Context) ([]*ServiceOrder, error)
	ListByAppointment(ctx context.Context, appointmentID int) ([]*ServiceOrder, error)
	NextID(ctx context.Context) (int, error)
}
