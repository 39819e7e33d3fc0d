package supplier

import (
	"context"
	"fmt"
)

// Service defines supplier business logic.
type Service interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*Supplier, error)
	UpdateSupplier(ctx context.Context, id int, req CreateSupplierRequest) (*Supplier, error)
	GetSupplier(ctx context.Context, id int) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
}

// CreateSupplierRequest holds the data for registering a supplier.
type CreateSupplierRequest struct {
	TradeName string `json:"trade_name"`
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type service struct{ repo Repository }

// NewService creates a new supplier service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*Supplier, error) {
	if req.TradeName == "" {
		return nil, fmt.Errorf("trade_name is required")
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	sup := &Supplier{
		ID:        id,
		TradeName: req.TradeName,
		LegalName: req.LegalName,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) UpdateSupplier(ctx context.Context, id int, req CreateSupplierRequest) (*Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("supplier %d not found", id)
	}
	if req.TradeName != "" {
		sup.TradeName = req.TradeName
	}
	sup.LegalName = req.LegalName
	sup.TaxID = req.TaxID
	sup.Phone = req.Phone
	sup.Address = req.Address
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("supplier %d not found", id)
	}
	return sup, nil
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	return s.repo.List(ctx)
}
