package serviceorder

import (
	"context"
	"strings"
	"testing"

	"github.com/milhoverde/oficina-backend/internal/modules/catalog"
	"github.com/milhoverde/oficina-backend/internal/modules/inventory"
	"github.com/milhoverde/oficina-backend/internal/modules/supplier"
)

type fixture struct {
	orders    Service
	catalog   catalog.Service
	inventory inventory.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	catalogSvc := catalog.NewService(catalog.NewJSONRepository(dir))
	supplierSvc := supplier.NewService(supplier.NewJSONRepository(dir))
	inventorySvc := inventory.NewService(inventory.NewJSONRepository(dir), supplierSvc)
	return &fixture{
		orders:    NewService(NewJSONRepository(dir), catalogSvc, inventorySvc),
		catalog:   catalogSvc,
		inventory: inventorySvc,
	}
}

func (f *fixture) openOrder(t *testing.T) *ServiceOrder {
	t.Helper()
	o, err := f.orders.OpenOrder(context.Background(), OpenOrderRequest{
		AppointmentID: 1,
		ClientName:    "Joana Prado",
		VehicleModel:  "Fiat Uno",
		VehiclePlate:  "ABC-1234",
	})
	if err != nil {
		t.Fatalf("OpenOrder: %v", err)
	}
	return o
}

func TestOpenOrderReference(t *testing.T) {
	f := newFixture(t)
	o := f.openOrder(t)

	if o.Status != StatusOpen {
		t.Errorf("status = %q, want %q", o.Status, StatusOpen)
	}
	if !strings.HasPrefix(o.Reference, "OS-") {
		t.Errorf("reference %q missing OS- prefix", o.Reference)
	}
	parts := strings.Split(o.Reference, "-")
	if len(parts) != 3 || len(parts[1]) != 8 || len(parts[2]) != 4 {
		t.Errorf("reference %q does not match OS-YYYYMMDD-XXXX", o.Reference)
	}
	if o.IssuedAt != nil {
		t.Error("open order already carries an issue timestamp")
	}
	if o.OpenedAt.IsZero() {
		t.Error("open order missing opened_at")
	}
}

func TestOrderTotalAndFinalizeFreeze(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	item, err := f.catalog.CreateServiceItem(ctx, catalog.CreateServiceItemRequest{
		Description: "Oil change", Price: 80,
	})
	if err != nil {
		t.Fatalf("CreateServiceItem: %v", err)
	}
	if _, err := f.orders.AddCatalogService(ctx, o.ID, item.ID); err != nil {
		t.Fatalf("AddCatalogService: %v", err)
	}
	p, err := f.inventory.CreateProduct(ctx, inventory.CreateProductRequest{
		Name: "Air filter", SalePrice: 45, StockQty: 2,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if _, err := f.orders.AddPart(ctx, o.ID, p.ID); err != nil {
		t.Fatalf("AddPart: %v", err)
	}

	got, err := f.orders.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Total != 125 {
		t.Fatalf("total = %.2f, want 125.00", got.Total)
	}

	if _, err := f.orders.FinalizeOrder(ctx, o.ID); err != nil {
		t.Fatalf("FinalizeOrder: %v", err)
	}
	if _, err := f.orders.AddLabor(ctx, o.ID, "Extra", 10); err == nil {
		t.Fatal("expected append to finalized order to fail")
	}

	frozen, _ := f.orders.GetOrder(ctx, o.ID)
	if frozen.Total != 125 {
		t.Errorf("total changed after rejected append: %.2f", frozen.Total)
	}
	if frozen.Status != StatusFinalized || frozen.IssuedAt == nil {
		t.Errorf("finalized order status=%q issued=%v", frozen.Status, frozen.IssuedAt)
	}
}

func TestFinalizeRestampsIssuedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	first, err := f.orders.FinalizeOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("FinalizeOrder: %v", err)
	}
	if first.IssuedAt == nil {
		t.Fatal("missing issue timestamp")
	}
	firstStamp := first.IssuedAt.Time

	// A second call succeeds and stamps again.
	second, err := f.orders.FinalizeOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("second FinalizeOrder: %v", err)
	}
	if second.IssuedAt == nil || second.IssuedAt.Before(firstStamp) {
		t.Error("second finalize did not re-stamp the issue time")
	}
}

func TestAddPartConsumesStockAndSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	p, err := f.inventory.CreateProduct(ctx, inventory.CreateProductRequest{
		Name: "Oil filter", SalePrice: 30, StockQty: 1,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	got, err := f.orders.AddPart(ctx, o.ID, p.ID)
	if err != nil {
		t.Fatalf("AddPart: %v", err)
	}
	if got.Total != 30 {
		t.Errorf("total = %.2f, want 30.00", got.Total)
	}

	left, _ := f.inventory.GetProduct(ctx, p.ID)
	if left.StockQuantity != 0 {
		t.Errorf("stock = %d, want 0", left.StockQuantity)
	}

	// Stock exhausted: the next part add fails and the order is untouched.
	if _, err := f.orders.AddPart(ctx, o.ID, p.ID); err == nil {
		t.Fatal("expected AddPart to fail with zero stock")
	}
	after, _ := f.orders.GetOrder(ctx, o.ID)
	if len(after.Parts) != 1 || after.Total != 30 {
		t.Errorf("order changed by failed part add: parts=%d total=%.2f", len(after.Parts), after.Total)
	}
}

func TestPartLineIsASnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	p, err := f.inventory.CreateProduct(ctx, inventory.CreateProductRequest{
		Name: "Brake pad", SalePrice: 120, StockQty: 5,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if _, err := f.orders.AddPart(ctx, o.ID, p.ID); err != nil {
		t.Fatalf("AddPart: %v", err)
	}

	// Later stock movements do not change the order line.
	if _, err := f.inventory.AddStock(ctx, p.ID, 10); err != nil {
		t.Fatalf("AddStock: %v", err)
	}
	got, _ := f.orders.GetOrder(ctx, o.ID)
	if got.Parts[0].SalePrice != 120 {
		t.Errorf("part line price = %.2f, want the snapshot 120.00", got.Parts[0].SalePrice)
	}
	if got.Parts[0].StockQuantity != 4 {
		t.Errorf("part snapshot stock = %d, want 4 (state at consumption)", got.Parts[0].StockQuantity)
	}
}

func TestAddLaborValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	if _, err := f.orders.AddLabor(ctx, o.ID, "", 50); err == nil {
		t.Error("expected blank description to be rejected")
	}
	if _, err := f.orders.AddLabor(ctx, o.ID, "Diagnosis", 0); err == nil {
		t.Error("expected non-positive value to be rejected")
	}

	got, err := f.orders.AddLabor(ctx, o.ID, "Diagnosis", 40)
	if err != nil {
		t.Fatalf("AddLabor: %v", err)
	}
	if got.Services[0].ID != catalog.AdHocID {
		t.Errorf("labor line id = %d, want %d", got.Services[0].ID, catalog.AdHocID)
	}
}

func TestGetOpenByAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	found, err := f.orders.GetOpenByAppointment(ctx, 1)
	if err != nil {
		t.Fatalf("GetOpenByAppointment: %v", err)
	}
	if found.ID != o.ID {
		t.Errorf("found order %d, want %d", found.ID, o.ID)
	}

	if _, err := f.orders.FinalizeOrder(ctx, o.ID); err != nil {
		t.Fatalf("FinalizeOrder: %v", err)
	}
	if _, err := f.orders.GetOpenByAppointment(ctx, 1); err == nil {
		t.Error("expected no open order after finalize")
	}

	all, err := f.orders.GetByAppointment(ctx, 1)
	if err != nil {
		t.Fatalf("GetByAppointment: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("orders for appointment = %d, want 1", len(all))
	}
}

func TestRenderInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.openOrder(t)

	if _, err := f.orders.AddLabor(ctx, o.ID, "Suspension check", 99.5); err != nil {
		t.Fatalf("AddLabor: %v", err)
	}
	finalized, err := f.orders.FinalizeOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("FinalizeOrder: %v", err)
	}

	out := RenderInvoice(finalized)
	for _, want := range []string{
		"SERVICE INVOICE",
		"Invoice No: 000001",
		"Name: Joana Prado",
		"Plate: ABC-1234",
		"Suspension check",
		"R$ 99.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("invoice missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PARTS USED") {
		t.Error("invoice shows parts section for an order without parts")
	}
	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "R$ 99.50") {
		t.Error("invoice missing total line")
	}
}
