package expense

import "context"

// Repository defines data access for expenses.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id int) (*Expense, error)
	List(ctx context.Context) ([]*Expense, error)
	NextID(ctx context.Context) (int, error)
}
