package catalog

import (
	"context"
	"testing"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewJSONRepository(t.TempDir()))
}

func TestCreateServiceItemAssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateServiceItem(ctx, CreateServiceItemRequest{Description: "Oil change", Price: 80})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("expected first id 1, got %d", first.ID)
	}

	second, err := svc.CreateServiceItem(ctx, CreateServiceItemRequest{Description: "Brake check", Price: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("expected second id 2, got %d", second.ID)
	}
}

func TestNextIDSkipsGaps(t *testing.T) {
	repo := NewJSONRepository(t.TempDir())
	ctx := context.Background()
	for _, id := range []int{1, 3, 5} {
		if err := repo.Create(ctx, &ServiceItem{ID: id, Description: "x", Price: 1}); err != nil {
			t.Fatal(err)
		}
	}
	next, err := repo.NextID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next != 6 {
		t.Errorf("expected next id 6 for ids {1,3,5}, got %d", next)
	}
}

func TestCreateServiceItemValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateServiceItem(ctx, CreateServiceItemRequest{Price: 10}); err == nil {
		t.Error("expected an error for empty description")
	}
	if _, err := svc.CreateServiceItem(ctx, CreateServiceItemRequest{Description: "x", Price: 0}); err == nil {
		t.Error("expected an error for zero price")
	}
}

func TestCatalogSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc := NewService(NewJSONRepository(dir))
	if _, err := svc.CreateServiceItem(ctx, CreateServiceItemRequest{Description: "Alignment", Price: 120}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewService(NewJSONRepository(dir))
	item, err := reloaded.GetServiceItem(ctx, 1)
	if err != nil {
		t.Fatalf("expected item to survive reload: %v", err)
	}
	if item.Description != "Alignment" || item.Price != 120 {
		t.Errorf("unexpected item after reload: %+v", item)
	}
}
