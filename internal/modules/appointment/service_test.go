package appointment

import (
	"context"
	"testing"

	"github.com/milhoverde/oficina-backend/internal/modules/catalog"
	"github.com/milhoverde/oficina-backend/internal/modules/client"
	"github.com/milhoverde/oficina-backend/internal/modules/employee"
	"github.com/milhoverde/oficina-backend/internal/modules/inventory"
	"github.com/milhoverde/oficina-backend/internal/modules/lift"
	"github.com/milhoverde/oficina-backend/internal/modules/serviceorder"
	"github.com/milhoverde/oficina-backend/internal/modules/supplier"
)

type fixture struct {
	appointments Service
	clients      client.Service
	lifts        lift.Service
	orders       serviceorder.Service
	employees    employee.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	clientSvc := client.NewService(client.NewJSONRepository(dir))
	liftSvc := lift.NewService(lift.NewJSONRepository(dir))
	catalogSvc := catalog.NewService(catalog.NewJSONRepository(dir))
	supplierSvc := supplier.NewService(supplier.NewJSONRepository(dir))
	inventorySvc := inventory.NewService(inventory.NewJSONRepository(dir), supplierSvc)
	orderSvc := serviceorder.NewService(serviceorder.NewJSONRepository(dir), catalogSvc, inventorySvc)
	employeeSvc := employee.NewService(employee.NewJSONRepository(dir))
	return &fixture{
		appointments: NewService(NewJSONRepository(dir), clientSvc, liftSvc, orderSvc, employeeSvc),
		clients:      clientSvc,
		lifts:        liftSvc,
		orders:       orderSvc,
		employees:    employeeSvc,
	}
}

func (f *fixture) book(t *testing.T, date string) *Appointment {
	t.Helper()
	ctx := context.Background()
	c, err := f.clients.CreateClient(ctx, client.CreateClientRequest{
		Name: "Rita Campos", Document: "444.444.444-44",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if _, err := f.clients.AddVehicle(ctx, c.ID, client.Vehicle{
		Model: "Gol", Plate: "XYZ-9876", Color: "Silver", Year: 2018,
	}); err != nil {
		t.Fatalf("AddVehicle: %v", err)
	}
	a, err := f.appointments.CreateAppointment(ctx, CreateAppointmentRequest{
		ClientID:           c.ID,
		VehiclePlate:       "XYZ-9876",
		Date:               date,
		ProblemDescription: "Engine noise",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	return a
}

func TestCreateAppointmentRequiresKnownVehicle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.clients.CreateClient(ctx, client.CreateClientRequest{
		Name: "No Car", Document: "555.555.555-55",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if _, err := f.appointments.CreateAppointment(ctx, CreateAppointmentRequest{
		ClientID: c.ID, VehiclePlate: "AAA-0000",
	}); err == nil {
		t.Fatal("expected booking without vehicles to fail")
	}
}

func TestCancelOnlyFromScheduled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "10/05/2024 09:00")

	cancelled, err := f.appointments.Cancel(ctx, a.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %q, want %q", cancelled.Status, StatusCancelled)
	}
	if cancelled.CancellationFee != 20 {
		t.Errorf("fee = %.2f, want 20.00", cancelled.CancellationFee)
	}

	// Cancelling twice fails: the appointment is no longer scheduled.
	if _, err := f.appointments.Cancel(ctx, a.ID); err == nil {
		t.Fatal("expected second cancel to fail")
	}
}

func TestListAppointmentsSortByDateNullsLast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "01/05/2024 10:00")
	f.book(t, "")
	f.book(t, "01/03/2024 10:00")

	items, err := f.appointments.ListAppointments(ctx, "date")
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Date == nil || items[0].Date.String() != "01/03/2024 10:00" {
		t.Errorf("first = %v, want 01/03/2024 10:00", items[0].Date)
	}
	if items[1].Date == nil || items[1].Date.String() != "01/05/2024 10:00" {
		t.Errorf("second = %v, want 01/05/2024 10:00", items[1].Date)
	}
	if items[2].Date != nil {
		t.Errorf("dateless appointment not last: %v", items[2].Date)
	}
}

func TestStartServiceAllOrNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, "10/05/2024 09:00")
	second := f.book(t, "10/05/2024 10:00")

	// Only lift 1 matches "Alignment".
	if _, err := f.appointments.StartService(ctx, first.ID, StartServiceRequest{
		NeedsLift: true, LiftType: "Alignment",
	}); err != nil {
		t.Fatalf("StartService: %v", err)
	}

	// The second alignment request fails outright: no status change, no
	// order opened.
	if _, err := f.appointments.StartService(ctx, second.ID, StartServiceRequest{
		NeedsLift: true, LiftType: "Alignment",
	}); err == nil {
		t.Fatal("expected start to fail with the alignment lift taken")
	}
	got, _ := f.appointments.GetAppointment(ctx, second.ID)
	if got.Status != StatusScheduled {
		t.Errorf("status = %q, want %q", got.Status, StatusScheduled)
	}
	if orders, _ := f.orders.GetByAppointment(ctx, second.ID); len(orders) != 0 {
		t.Errorf("failed start left %d orders behind", len(orders))
	}
}

func TestServiceLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "10/05/2024 09:00")

	started, err := f.appointments.StartService(ctx, a.ID, StartServiceRequest{
		NeedsLift: true, LiftType: "General",
	})
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	if started.Status != StatusInServiceLift {
		t.Errorf("status = %q, want %q", started.Status, StatusInServiceLift)
	}
	if started.AssignedLift == nil || started.AssignedLift.Number != 2 {
		t.Fatalf("assigned lift = %+v, want lift 2", started.AssignedLift)
	}
	if !started.InService() {
		t.Error("InService() = false while in service")
	}

	// Delivery before finalize is refused.
	if _, err := f.appointments.Deliver(ctx, a.ID); err == nil {
		t.Fatal("expected deliver before finalize to fail")
	}

	done, err := f.appointments.FinalizeService(ctx, a.ID)
	if err != nil {
		t.Fatalf("FinalizeService: %v", err)
	}
	if done.Status != StatusReadyForDelivery {
		t.Errorf("status = %q, want %q", done.Status, StatusReadyForDelivery)
	}
	if done.AssignedLift != nil {
		t.Error("lift still assigned after finalize")
	}
	l, _ := f.lifts.GetLift(ctx, 2)
	if l.Occupied {
		t.Error("lift 2 not released by finalize")
	}
	orders, _ := f.orders.GetByAppointment(ctx, a.ID)
	if len(orders) != 1 || orders[0].Status != serviceorder.StatusFinalized {
		t.Fatalf("orders = %+v, want one finalized order", orders)
	}

	delivered, err := f.appointments.Deliver(ctx, a.ID)
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if delivered.Status != StatusDelivered {
		t.Errorf("status = %q, want %q", delivered.Status, StatusDelivered)
	}
}

func TestStartWithoutLift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "")

	started, err := f.appointments.StartService(ctx, a.ID, StartServiceRequest{NeedsLift: false})
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	if started.Status != StatusInServiceNoLift {
		t.Errorf("status = %q, want %q", started.Status, StatusInServiceNoLift)
	}
	if started.AssignedLift != nil {
		t.Error("lift assigned for a no-lift service")
	}

	// Restarting an in-service appointment is refused.
	if _, err := f.appointments.StartService(ctx, a.ID, StartServiceRequest{}); err == nil {
		t.Fatal("expected second start to fail")
	}

	// Finalizing a no-lift service leaves the pool untouched.
	if _, err := f.appointments.FinalizeService(ctx, a.ID); err != nil {
		t.Fatalf("FinalizeService: %v", err)
	}
	pool, _ := f.lifts.ListLifts(ctx)
	for _, l := range pool {
		if l.Occupied {
			t.Errorf("lift %d occupied after a no-lift service", l.Number)
		}
	}
}

func TestForceReleaseLeavesStaleSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "10/05/2024 09:00")

	started, err := f.appointments.StartService(ctx, a.ID, StartServiceRequest{
		NeedsLift: true, LiftType: "General",
	})
	if err != nil {
		t.Fatalf("StartService: %v", err)
	}
	number := started.AssignedLift.Number

	// Force release goes straight to the pool without touching the
	// appointment snapshot.
	if _, err := f.lifts.ForceRelease(ctx, number); err != nil {
		t.Fatalf("ForceRelease: %v", err)
	}
	got, _ := f.appointments.GetAppointment(ctx, a.ID)
	if got.AssignedLift == nil || !got.AssignedLift.Occupied {
		t.Error("appointment snapshot was reconciled; expected it stale")
	}
	pool, _ := f.lifts.GetLift(ctx, number)
	if pool.Occupied {
		t.Error("pool lift still occupied after force release")
	}

	// Finalize still succeeds: releasing a free lift is a no-op.
	if _, err := f.appointments.FinalizeService(ctx, a.ID); err != nil {
		t.Fatalf("FinalizeService after force release: %v", err)
	}
}

func TestAssignMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "")

	e, err := f.employees.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{
		Name: "Pedro Alves", Document: "666.666.666-66", Password: "pw",
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}
	got, err := f.appointments.AssignMechanic(ctx, a.ID, e.ID)
	if err != nil {
		t.Fatalf("AssignMechanic: %v", err)
	}
	if got.MechanicID != e.ID || got.MechanicName != "Pedro Alves" {
		t.Errorf("mechanic = %d %q", got.MechanicID, got.MechanicName)
	}
}
