package serviceorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/milhoverde/oficina-backend/internal/modules/catalog"
	"github.com/milhoverde/oficina-backend/internal/modules/inventory"
	"github.com/milhoverde/oficina-backend/internal/storage"
)

// Service defines service order business logic.
type Service interface {
	OpenOrder(ctx context.Context, req OpenOrderRequest) (*ServiceOrder, error)

	// AddCatalogService copies a catalog entry onto the order at its
	// current price.
	AddCatalogService(ctx context.Context, orderID, serviceID int) (*ServiceOrder, error)

	// AddLabor records an ad hoc service line that has no catalog entry.
	AddLabor(ctx context.Context, orderID int, description string, value float64) (*ServiceOrder, error)

	// AddPart consumes one stock unit of the product and copies it onto
	// the order at its current sale price.
	AddPart(ctx context.Context, orderID, productID int) (*ServiceOrder, error)

	FinalizeOrder(ctx context.Context, orderID int) (*ServiceOrder, error)
	GetOrder(ctx context.Context, id int) (*ServiceOrder, error)
	ListOrders(ctx context.Context) ([]*ServiceOrder, error)

	// GetOpenByAppointment returns the appointment's open order, if any.
	GetOpenByAppointment(ctx context.Context, appointmentID int) (*ServiceOrder, error)
	GetByAppointment(ctx context.Context, appointmentID int) ([]*ServiceOrder, error)
}

// OpenOrderRequest carries the client and vehicle snapshot taken when
// service begins.
type OpenOrderRequest struct {
	AppointmentID int    `json:"appointment_id"`
	ClientName    string `json:"client_name"`
	VehicleModel  string `json:"vehicle_model"`
	VehiclePlate  string `json:"vehicle_plate"`
}

type service struct {
	repo         Repository
	catalogSvc   catalog.Service
	inventorySvc inventory.Service
}

// NewService creates a new service order service.
func NewService(repo Repository, catalogSvc catalog.Service, inventorySvc inventory.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc, inventorySvc: inventorySvc}
}

func generateReference() string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("OS-%s-%s", time.Now().Format("20060102"), suffix)
}

func (s *service) OpenOrder(ctx context.Context, req OpenOrderRequest) (*ServiceOrder, error) {
	if req.ClientName == "" || req.VehiclePlate == "" {
		return nil, fmt.Errorf("client name and vehicle plate are required")
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	o := &ServiceOrder{
		ID:            id,
		Reference:     generateReference(),
		AppointmentID: req.AppointmentID,
		ClientName:    req.ClientName,
		VehicleModel:  req.VehicleModel,
		VehiclePlate:  req.VehiclePlate,
		Status:        StatusOpen,
		OpenedAt:      storage.Now(),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) AddCatalogService(ctx context.Context, orderID, serviceID int) (*ServiceOrder, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	item, err := s.catalogSvc.GetServiceItem(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := o.AddService(*item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) AddLabor(ctx context.Context, orderID int, description string, value float64) (*ServiceOrder, error) {
	if description == "" {
		return nil, fmt.Errorf("labor description is required")
	}
	if value <= 0 {
		return nil, fmt.Errorf("labor value must be positive")
	}
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	line := catalog.ServiceItem{ID: catalog.AdHocID, Description: description, Price: value}
	if err := o.AddService(line); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) AddPart(ctx context.Context, orderID, productID int) (*ServiceOrder, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusOpen {
		return nil, fmt.Errorf("order %d is finalized and cannot be changed", o.ID)
	}
	p, err := s.inventorySvc.ConsumeUnit(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := o.AddPart(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) FinalizeOrder(ctx context.Context, orderID int) (*ServiceOrder, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Finalize()
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id int) (*ServiceOrder, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service order %d not found", id)
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*ServiceOrder, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOpenByAppointment(ctx context.Context, appointmentID int) (*ServiceOrder, error) {
	orders, err := s.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Status == StatusOpen {
			return o, nil
		}
	}
	return nil, fmt.Errorf("no open service order for appointment %d", appointmentID)
}

func (s *service) GetByAppointment(ctx context.Context, appointmentID int) ([]*ServiceOrder, error) {
	return s.repo.ListByAppointment(ctx, appointmentID)
}
