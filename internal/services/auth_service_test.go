package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	gdb := newTestDB(t)

	hash, err := utils.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := models.User{Email: "admin@example.com", PasswordHash: hash, Role: models.RoleAdmin}
	if err := gdb.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	return NewAuthService(pgrepo.NewUserRepo(gdb), testSecret)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	u, token, err := svc.Login(context.Background(), "Admin@Example.com ", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Email != "admin@example.com" {
		t.Errorf("email = %q", u.Email)
	}

	claims := &AuthClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejections(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"unknown user", "ghost@example.com", "hunter22"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}
}
