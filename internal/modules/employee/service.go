package employee

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service defines employee business logic.
type Service interface {
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (*Employee, error)
	GetEmployee(ctx context.Context, id int) (*Employee, error)
	GetByDocument(ctx context.Context, document string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, id int, req UpdateEmployeeRequest) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int) error

	// ChangePassword verifies the current password before setting a new one.
	ChangePassword(ctx context.Context, id int, current, next string) error
}

// RegisterEmployeeRequest holds the data for registering an employee.
type RegisterEmployeeRequest struct {
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
}

// UpdateEmployeeRequest holds the mutable employee fields.
type UpdateEmployeeRequest struct {
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}

type service struct{ repo Repository }

// NewService creates a new employee service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (*Employee, error) {
	if req.Name == "" || req.Document == "" {
		return nil, fmt.Errorf("name and document are required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if existing, _ := s.repo.GetByDocument(ctx, req.Document); existing != nil {
		return nil, fmt.Errorf("an employee with document %s already exists", req.Document)
	}

	role := Role(req.Role)
	if role != RoleManager {
		role = RoleMechanic
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	e := &Employee{
		ID:           id,
		Name:         req.Name,
		Document:     req.Document,
		PasswordHash: string(hash),
		Role:         role,
		Salary:       req.Salary,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetEmployee(ctx context.Context, id int) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee %d not found", id)
	}
	return e, nil
}

func (s *service) GetByDocument(ctx context.Context, document string) (*Employee, error) {
	e, err := s.repo.GetByDocument(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("employee with document %s not found", document)
	}
	return e, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateEmployee(ctx context.Context, id int, req UpdateEmployeeRequest) (*Employee, error) {
	e, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Salary > 0 {
		e.Salary = req.Salary
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) DeleteEmployee(ctx context.Context, id int) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ChangePassword(ctx context.Context, id int, current, next string) error {
	if next == "" {
		return fmt.Errorf("new password cannot be blank")
	}
	e, err := s.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(current)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return s.repo.Update(ctx, e)
}
