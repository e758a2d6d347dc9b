package ports

import (
	"context"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FullName     string
	Email        string
	MobileNumber string
	Designation  string
	Password     string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Employee, string, error)
	Login(ctx context.Context, email, password string) (*domain.Employee, string, error)
}
