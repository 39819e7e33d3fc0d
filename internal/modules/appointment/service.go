package appointment

import (
	"context"
	"fmt"

	"github.com/milhoverde/oficina-backend/internal/modules/client"
	"github.com/milhoverde/oficina-backend/internal/modules/employee"
	"github.com/milhoverde/oficina-backend/internal/modules/lift"
	"github.com/milhoverde/oficina-backend/internal/modules/serviceorder"
	"github.com/milhoverde/oficina-backend/internal/storage"
)

// The cancellation fee retains a fixed share of the standard booking
// estimate.
const (
	bookingEstimate   = 100.0
	cancellationShare = 0.20
)

// Service defines appointment business logic.
type Service interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)
	GetAppointment(ctx context.Context, id int) (*Appointment, error)

	// ListAppointments returns appointments sorted per sortBy:
	// "date", "status", or any other value for insertion order.
	ListAppointments(ctx context.Context, sortBy string) ([]*Appointment, error)

	// StartService opens a service order for the appointment. When a
	// lift is requested the whole operation fails if none is free.
	StartService(ctx context.Context, id int, req StartServiceRequest) (*Appointment, error)

	// FinalizeService closes the open order, releases the lift, and
	// marks the vehicle ready for delivery.
	FinalizeService(ctx context.Context, id int) (*Appointment, error)

	// Deliver records handover of a vehicle that is ready for delivery.
	Deliver(ctx context.Context, id int) (*Appointment, error)

	// Cancel cancels a scheduled appointment and retains the fee.
	Cancel(ctx context.Context, id int) (*Appointment, error)

	AssignMechanic(ctx context.Context, id, employeeID int) (*Appointment, error)
}

// CreateAppointmentRequest books a client's vehicle, chosen by plate.
type CreateAppointmentRequest struct {
	ClientID           int    `json:"client_id"`
	VehiclePlate       string `json:"vehicle_plate"`
	Date               string `json:"date"`
	ProblemDescription string `json:"problem_description"`
}

// StartServiceRequest selects the lift requirement for the service.
type StartServiceRequest struct {
	NeedsLift bool   `json:"needs_lift"`
	LiftType  string `json:"lift_type"`
}

type service struct {
	repo        Repository
	clientSvc   client.Service
	liftSvc     lift.Service
	orderSvc    serviceorder.Service
	employeeSvc employee.Service
}

// NewService creates a new appointment service.
func NewService(repo Repository, clientSvc client.Service, liftSvc lift.Service,
	orderSvc serviceorder.Service, employeeSvc employee.Service) Service {
	return &service{
		repo:        repo,
		clientSvc:   clientSvc,
		liftSvc:     liftSvc,
		orderSvc:    orderSvc,
		employeeSvc: employeeSvc,
	}
}

func (s *service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	c, err := s.clientSvc.GetClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if len(c.Vehicles) == 0 {
		return nil, fmt.Errorf("client %d has no registered vehicles", c.ID)
	}
	v, ok := c.VehicleByPlate(req.VehiclePlate)
	if !ok {
		return nil, fmt.Errorf("client %d has no vehicle with plate %s", c.ID, req.VehiclePlate)
	}

	var date *storage.DateTime
	if req.Date != "" {
		dt, err := storage.ParseDateTime(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date, use %s: %w", storage.DateTimeLayout, err)
		}
		date = &dt
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	a := &Appointment{
		ID:                 id,
		ClientID:           c.ID,
		ClientName:         c.Name,
		Vehicle:            v,
		Date:               date,
		ProblemDescription: req.ProblemDescription,
		Status:             StatusScheduled,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetAppointment(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %d not found", id)
	}
	return a, nil
}

func (s *service) ListAppointments(ctx context.Context, sortBy string) ([]*Appointment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	switch sortBy {
	case "date":
		SortByDate(items)
	case "status":
		SortByStatus(items)
	}
	return items, nil
}

func (s *service) StartService(ctx context.Context, id int, req StartServiceRequest) (*Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusScheduled {
		return nil, fmt.Errorf("appointment %d is not scheduled", id)
	}

	status := StatusInServiceNoLift
	var allocated *lift.Lift
	if req.NeedsLift {
		// Nothing is mutated until the lift is secured.
		allocated, err = s.liftSvc.AllocateByType(ctx, req.LiftType)
		if err != nil {
			return nil, err
		}
		status = StatusInServiceLift
	}

	if _, err := s.orderSvc.OpenOrder(ctx, serviceorder.OpenOrderRequest{
		AppointmentID: a.ID,
		ClientName:    a.ClientName,
		VehicleModel:  a.Vehicle.Model,
		VehiclePlate:  a.Vehicle.Plate,
	}); err != nil {
		if allocated != nil {
			s.liftSvc.Release(ctx, allocated.Number)
		}
		return nil, err
	}

	a.Status = status
	if allocated != nil {
		// Keep a value copy so pool mutations do not reach through it.
		snapshot := *allocated
		a.AssignedLift = &snapshot
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) FinalizeService(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.InService() {
		return nil, fmt.Errorf("appointment %d is not in service", id)
	}

	o, err := s.orderSvc.GetOpenByAppointment(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("no open service order for appointment %d", a.ID)
	}
	if _, err := s.orderSvc.FinalizeOrder(ctx, o.ID); err != nil {
		return nil, err
	}

	if a.AssignedLift != nil {
		if err := s.liftSvc.Release(ctx, a.AssignedLift.Number); err != nil {
			return nil, err
		}
		a.AssignedLift = nil
	}

	a.Status = StatusReadyForDelivery
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Deliver(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusReadyForDelivery {
		return nil, fmt.Errorf("appointment %d is not ready for delivery", id)
	}
	orders, err := s.orderSvc.GetByAppointment(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no service order recorded for appointment %d", a.ID)
	}

	a.Status = StatusDelivered
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Cancel(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusScheduled {
		return nil, fmt.Errorf("only scheduled appointments can be cancelled")
	}
	a.Status = StatusCancelled
	a.CancellationFee = bookingEstimate * cancellationShare
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) AssignMechanic(ctx context.Context, id, employeeID int) (*Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := s.employeeSvc.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	a.MechanicID = e.ID
	a.MechanicName = e.Name
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
