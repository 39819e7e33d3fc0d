package supplier

import "context"

// Repository defines data access for suppliers.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, id int) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)

	// NextID returns max(existing ids)+1, or 1 for an empty collection.
	NextID(ctx context.Context) (int, error)
}
