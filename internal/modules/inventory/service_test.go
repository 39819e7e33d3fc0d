package inventory

import (
	"context"
	"testing"

	"github.com/milhoverde/oficina-backend/internal/modules/supplier"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	dir := t.TempDir()
	supplierSvc := supplier.NewService(supplier.NewJSONRepository(dir))
	return NewService(NewJSONRepository(dir), supplierSvc)
}

func mustCreate(t *testing.T, svc Service, stock int) *Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:      "Oil filter",
		CostPrice: 20,
		SalePrice: 45,
		StockQty:  stock,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestAddStockIgnoresNonPositiveQuantity(t *testing.T) {
	svc := newTestService(t)
	p := mustCreate(t, svc, 3)

	got, err := svc.AddStock(context.Background(), p.ID, 0)
	if err != nil {
		t.Fatalf("add stock: %v", err)
	}
	if got.StockQuantity != 3 {
		t.Errorf("expected stock unchanged at 3, got %d", got.StockQuantity)
	}

	got, err = svc.AddStock(context.Background(), p.ID, 5)
	if err != nil {
		t.Fatalf("add stock: %v", err)
	}
	if got.StockQuantity != 8 {
		t.Errorf("expected stock 8, got %d", got.StockQuantity)
	}
}

func TestRemoveStockFailsWhenInsufficient(t *testing.T) {
	svc := newTestService(t)
	p := mustCreate(t, svc, 2)
	ctx := context.Background()

	if _, err := svc.RemoveStock(ctx, p.ID, 3); err == nil {
		t.Fatal("expected an error removing more than stocked")
	}
	got, _ := svc.GetProduct(ctx, p.ID)
	if got.StockQuantity != 2 {
		t.Errorf("failed removal must not change stock: got %d", got.StockQuantity)
	}

	if _, err := svc.RemoveStock(ctx, p.ID, 2); err != nil {
		t.Fatalf("remove stock: %v", err)
	}
	got, _ = svc.GetProduct(ctx, p.ID)
	if got.StockQuantity != 0 {
		t.Errorf("expected stock 0, got %d", got.StockQuantity)
	}
}

func TestConsumeUnit(t *testing.T) {
	svc := newTestService(t)
	p := mustCreate(t, svc, 1)
	ctx := context.Background()

	snapshot, err := svc.ConsumeUnit(ctx, p.ID)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if snapshot.SalePrice != 45 {
		t.Errorf("snapshot should carry the sale price, got %.2f", snapshot.SalePrice)
	}

	if _, err := svc.ConsumeUnit(ctx, p.ID); err == nil {
		t.Error("expected an error consuming from zero stock")
	}
}

func TestCreateProductSnapshotsSupplierName(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	supplierSvc := supplier.NewService(supplier.NewJSONRepository(dir))
	svc := NewService(NewJSONRepository(dir), supplierSvc)

	sup, err := supplierSvc.CreateSupplier(ctx, supplier.CreateSupplierRequest{TradeName: "AutoParts Ltda"})
	if err != nil {
		t.Fatal(err)
	}

	p, err := svc.CreateProduct(ctx, CreateProductRequest{Name: "Spark plug", SalePrice: 30, StockQty: 10, SupplierID: sup.ID})
	if err != nil {
		t.Fatal(err)
	}
	if p.SupplierName != "AutoParts Ltda" {
		t.Errorf("expected supplier name snapshot, got %q", p.SupplierName)
	}

	// Renaming the supplier later must not rewrite the snapshot.
	if _, err := supplierSvc.UpdateSupplier(ctx, sup.ID, supplier.CreateSupplierRequest{TradeName: "Renamed"}); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.GetProduct(ctx, p.ID)
	if got.SupplierName != "AutoParts Ltda" {
		t.Errorf("supplier snapshot must be stale by design, got %q", got.SupplierName)
	}
}
