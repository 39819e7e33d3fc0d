package catalog

import "context"

// Repository defines data access for the service catalog.
type Repository interface {
	Create(ctx context.Context, item *ServiceItem) error
	Update(ctx context.Context, item *ServiceItem) error
	GetByID(ctx context.Context, id int) (*ServiceItem, error)
	List(ctx context.Context) ([]*ServiceItem, error)
	NextID(ctx context.Context) (int, error)
}
