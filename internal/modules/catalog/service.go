package catalog

import (
	"context"
	"fmt"
)

// Service defines catalog business logic.
type Service interface {
	CreateServiceItem(ctx context.Context, req CreateServiceItemRequest) (*ServiceItem, error)
	UpdateServiceItem(ctx context.Context, id int, req CreateServiceItemRequest) (*ServiceItem, error)
	GetServiceItem(ctx context.Context, id int) (*ServiceItem, error)
	ListServiceItems(ctx context.Context) ([]*ServiceItem, error)
}

// CreateServiceItemRequest holds the data for a catalog entry.
type CreateServiceItemRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateServiceItem(ctx context.Context, req CreateServiceItemRequest) (*ServiceItem, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero")
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	item := &ServiceItem{ID: id, Description: req.Description, Price: req.Price}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) UpdateServiceItem(ctx context.Context, id int, req CreateServiceItemRequest) (*ServiceItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service %d not found", id)
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) GetServiceItem(ctx context.Context, id int) (*ServiceItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service %d not found", id)
	}
	return item, nil
}

func (s *service) ListServiceItems(ctx context.Context) ([]*ServiceItem, error) {
	return s.repo.List(ctx)
}
