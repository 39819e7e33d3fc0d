package inventory

import "context"

// Repository defines data access for the product inventory.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	NextID(ctx context.Context) (int, error)
}
