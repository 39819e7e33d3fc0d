package employee

import "context"

// Repository defines data access for employees.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*Employee, error)
	GetByDocument(ctx context.Context, document string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	NextID(ctx context.Context) (int, error)
}
