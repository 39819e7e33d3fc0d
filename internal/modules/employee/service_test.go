package employee

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewJSONRepository(t.TempDir()))
}

func TestRegisterEmployeeHashesPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.RegisterEmployee(ctx, RegisterEmployeeRequest{
		Name:     "Carlos Pereira",
		Document: "123.456.789-00",
		Password: "s3cret",
		Role:     "MANAGER",
		Salary:   4500,
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("first employee id = %d, want 1", e.ID)
	}
	if e.Role != RoleManager {
		t.Errorf("role = %q, want %q", e.Role, RoleManager)
	}
	if e.PasswordHash == "s3cret" || e.PasswordHash == "" {
		t.Fatalf("password stored without hashing: %q", e.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify against original password: %v", err)
	}
}

func TestRegisterEmployeeDefaultsToMechanic(t *testing.T) {
	svc := newTestService(t)

	e, err := svc.RegisterEmployee(context.Background(), RegisterEmployeeRequest{
		Name:     "Ana Souza",
		Document: "222.222.222-22",
		Password: "pw",
		Role:     "JANITOR",
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}
	if e.Role != RoleMechanic {
		t.Errorf("unknown role mapped to %q, want %q", e.Role, RoleMechanic)
	}
}

func TestRegisterEmployeeRejectsDuplicateDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := RegisterEmployeeRequest{Name: "A", Document: "111.111.111-11", Password: "pw"}
	if _, err := svc.RegisterEmployee(ctx, req); err != nil {
		t.Fatalf("first RegisterEmployee: %v", err)
	}
	req.Name = "B"
	if _, err := svc.RegisterEmployee(ctx, req); err == nil {
		t.Fatal("expected duplicate document to be rejected")
	}
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.RegisterEmployee(ctx, RegisterEmployeeRequest{
		Name: "C", Document: "333.333.333-33", Password: "old",
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}

	if err := svc.ChangePassword(ctx, e.ID, "wrong", "new"); err == nil {
		t.Fatal("expected wrong current password to be rejected")
	}
	if err := svc.ChangePassword(ctx, e.ID, "old", ""); err == nil {
		t.Fatal("expected blank new password to be rejected")
	}
	if err := svc.ChangePassword(ctx, e.ID, "old", "new"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	updated, err := svc.GetEmployee(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEmployee: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
}

func TestSanitizedStripsHash(t *testing.T) {
	e := Employee{ID: 1, Name: "D", PasswordHash: "hash"}
	if got := e.Sanitized(); got.PasswordHash != "" {
		t.Errorf("Sanitized kept hash %q", got.PasswordHash)
	}
	if e.PasswordHash != "hash" {
		t.Error("Sanitized mutated the receiver")
	}
}
