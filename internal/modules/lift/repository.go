package lift

import "context"

// Repository defines data access for the lift pool. The pool is fixed
// size; there is no create or delete.
type Repository interface {
	GetByNumber(ctx context.Context, number int) (*Lift, error)
	Update(ctx context.Context, l *Lift) error
	List(ctx context.Context) ([]*Lift, error)
}
