package auth

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/milhoverde/oficina-backend/internal/modules/employee"
)

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("oficina-dev-secret")
}

// Claims carries the employee role alongside the standard token fields.
type Claims struct {
	jwt.StandardClaims
	Role employee.Role `json:"role"`
}

type service struct {
	employeeRepo employee.Repository
}

// NewService creates a new auth service.
func NewService(employeeRepo employee.Repository) Service {
	return &service{employeeRepo: employeeRepo}
}

// Login authenticates an employee by document and returns a signed token
// good for 24 hours. Unknown documents and bad passwords report the same
// error so login attempts cannot probe for registered documents.
func (s *service) Login(ctx context.Context, document, password string) (string, error) {
	e, err := s.employeeRepo.GetByDocument(ctx, document)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(e.ID),
			ExpiresAt: expirationTime.Unix(),
		},
		Role: e.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
