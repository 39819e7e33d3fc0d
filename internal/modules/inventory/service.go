package inventory

import (
	"context"
	"fmt"

	"github.com/milhoverde/oficina-backend/internal/modules/supplier"
)

// Service defines inventory business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// AddStock increases stock by qty. A non-positive qty is a no-op.
	AddStock(ctx context.Context, id, qty int) (*Product, error)

	// RemoveStock decreases stock by qty, failing without any state change
	// when qty exceeds the current stock.
	RemoveStock(ctx context.Context, id, qty int) (*Product, error)

	// ConsumeUnit removes exactly one unit for a service order line and
	// returns a snapshot of the product as it was at consumption time.
	ConsumeUnit(ctx context.Context, id int) (Product, error)
}

// CreateProductRequest holds the data for registering a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CostPrice   float64 `json:"cost_price"`
	SalePrice   float64 `json:"sale_price"`
	StockQty    int     `json:"stock_quantity"`
	SupplierID  int     `json:"supplier_id"`
}

type service struct {
	repo        Repository
	supplierSvc supplier.Service
}

// NewService creates a new inventory service.
func NewService(repo Repository, supplierSvc supplier.Service) Service {
	return &service{repo: repo, supplierSvc: supplierSvc}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.StockQty < 0 {
		return nil, fmt.Errorf("stock_quantity cannot be negative")
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	p := &Product{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		CostPrice:     req.CostPrice,
		SalePrice:     req.SalePrice,
		StockQuantity: req.StockQty,
	}
	if req.SupplierID != 0 {
		sup, err := s.supplierSvc.GetSupplier(ctx, req.SupplierID)
		if err != nil {
			return nil, err
		}
		p.SupplierID = sup.ID
		p.SupplierName = sup.TradeName
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %d not found", id)
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) AddStock(ctx context.Context, id, qty int) (*Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		return p, nil
	}
	p.StockQuantity += qty
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) RemoveStock(ctx context.Context, id, qty int) (*Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero")
	}
	if qty > p.StockQuantity {
		return nil, fmt.Errorf("insufficient stock for product %d: have %d, want %d", id, p.StockQuantity, qty)
	}
	p.StockQuantity -= qty
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ConsumeUnit(ctx context.Context, id int) (Product, error) {
	p, err := s.RemoveStock(ctx, id, 1)
	if err != nil {
		return Product{}, err
	}
	return *p, nil
}
