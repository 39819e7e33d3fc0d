package lift

import (
	"context"
	"fmt"
	"strings"
)

// Service defines lift pool business logic.
type Service interface {
	// AllocateByType marks the first free lift whose type contains typ
	// as occupied and returns it.
	AllocateByType(ctx context.Context, typ string) (*Lift, error)

	// Release frees the lift. Releasing a free lift is a no-op.
	Release(ctx context.Context, number int) error

	// ForceRelease frees the lift unconditionally, regardless of any
	// appointment still referencing it.
	ForceRelease(ctx context.Context, number int) (*Lift, error)

	GetLift(ctx context.Context, number int) (*Lift, error)
	ListLifts(ctx context.Context) ([]*Lift, error)
}

type service struct{ repo Repository }

// NewService creates a new lift service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AllocateByType(ctx context.Context, typ string) (*Lift, error) {
	lifts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range lifts {
		if !l.Occupied && strings.Contains(l.Type, typ) {
			l.Occupied = true
			if err := s.repo.Update(ctx, l); err != nil {
				return nil, err
			}
			return l, nil
		}
	}
	return nil, fmt.Errorf("no free lift of type %s", typ)
}

func (s *service) Release(ctx context.Context, number int) error {
	l, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if !l.Occupied {
		return nil
	}
	l.Occupied = false
	return s.repo.Update(ctx, l)
}

func (s *service) ForceRelease(ctx context.Context, number int) (*Lift, error) {
	l, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	l.Occupied = false
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) GetLift(ctx context.Context, number int) (*Lift, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) ListLifts(ctx context.Context) ([]*Lift, error) {
	return s.repo.List(ctx)
}
