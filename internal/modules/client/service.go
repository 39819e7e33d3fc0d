package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Service defines client business logic.
type Service interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)
	UpdateClient(ctx context.Context, id int, req CreateClientRequest) (*Client, error)
	DeleteClient(ctx context.Context, id int) error
	GetClient(ctx context.Context, id int) (*Client, error)

	// ListClients returns all clients, sorted by name when sortByName is set.
	ListClients(ctx context.Context, sortByName bool) ([]*Client, error)

	AddVehicle(ctx context.Context, clientID int, v Vehicle) (*Client, error)
	RemoveVehicle(ctx context.Context, clientID int, plate string) (*Client, error)
}

// CreateClientRequest holds the data for registering a client.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type service struct{ repo Repository }

// NewService creates a new client service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	c := &Client{
		ID:       id,
		Name:     req.Name,
		Document: req.Document,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Vehicles: []Vehicle{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateClient(ctx context.Context, id int, req CreateClientRequest) (*Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Document != "" {
		c.Document = req.Document
	}
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteClient(ctx context.Context, id int) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetClient(ctx context.Context, id int) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client %d not found", id)
	}
	return c, nil
}

func (s *service) ListClients(ctx context.Context, sortByName bool) ([]*Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if sortByName {
		sort.SliceStable(clients, func(i, j int) bool {
			return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
		})
	}
	return clients, nil
}

func (s *service) AddVehicle(ctx context.Context, clientID int, v Vehicle) (*Client, error) {
	if v.Plate == "" || v.Model == "" {
		return nil, fmt.Errorf("vehicle model and plate are required")
	}
	c, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if _, exists := c.VehicleByPlate(v.Plate); exists {
		return nil, fmt.Errorf("a vehicle with plate %s is already registered", v.Plate)
	}
	c.Vehicles = append(c.Vehicles, v)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) RemoveVehicle(ctx context.Context, clientID int, plate string) (*Client, error) {
	c, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i, v := range c.Vehicles {
		if v.SamePlate(plate) {
			c.Vehicles = append(c.Vehicles[:i], c.Vehicles[i+1:]...)
			if err := s.repo.Update(ctx, c); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	return nil, fmt.Errorf("vehicle with plate %s not found", plate)
}
