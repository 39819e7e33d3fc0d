package auth

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"

	"github.com/milhoverde/oficina-backend/internal/modules/employee"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := employee.NewJSONRepository(t.TempDir())
	empSvc := employee.NewService(repo)

	registered, err := empSvc.RegisterEmployee(ctx, employee.RegisterEmployeeRequest{
		Name:     "Maria Lima",
		Document: "999.888.777-66",
		Password: "workshop",
		Role:     "MANAGER",
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}

	svc := NewService(repo)

	if _, err := svc.Login(ctx, "999.888.777-66", "wrong"); err == nil {
		t.Fatal("expected bad password to be rejected")
	}
	if _, err := svc.Login(ctx, "000.000.000-00", "workshop"); err == nil {
		t.Fatal("expected unknown document to be rejected")
	}

	token, err := svc.Login(ctx, "999.888.777-66", "workshop")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned an empty token")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not parse as valid: %v", err)
	}
	if claims.Subject != "1" {
		t.Errorf("token subject = %q, want %q", claims.Subject, "1")
	}
	if claims.Role != registered.Role {
		t.Errorf("token role = %q, want %q", claims.Role, registered.Role)
	}
}
