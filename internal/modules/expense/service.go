package expense

import (
	"context"
	"fmt"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

// Service defines expense business logic.
type Service interface {
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (*Expense, error)
	GetExpense(ctx context.Context, id int) (*Expense, error)
	ListExpenses(ctx context.Context) ([]*Expense, error)
}

// CreateExpenseRequest holds the data for recording an expense. An
// empty date defaults to the current time.
type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

type service struct{ repo Repository }

// NewService creates a new expense service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("value must be positive")
	}

	date := storage.Now()
	if req.Date != "" {
		parsed, err := storage.ParseDateTime(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date, use %s: %w", storage.DateTimeLayout, err)
		}
		date = parsed
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	e := &Expense{
		ID:          id,
		Description: req.Description,
		Value:       req.Value,
		Date:        date,
		Category:    req.Category,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetExpense(ctx context.Context, id int) (*Expense, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("expense %d not found", id)
	}
	return e, nil
}

func (s *service) ListExpenses(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}
