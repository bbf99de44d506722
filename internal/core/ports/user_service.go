package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// RegisterUserInput carries the data for a new account.
type RegisterUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UserService defines administrator operations on accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
