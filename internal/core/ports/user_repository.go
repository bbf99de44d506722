package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create stores a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the username is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) (*domain.User, error)
	// Delete removes a user. Returns domain.ErrUserOwnsShops while the user
	// still owns at least one shop.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
