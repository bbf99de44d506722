package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// ShopRepository persists shops. Deletion goes through UnitOfWork so that
// products are removed in the same transaction.
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	FindByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Shop, error)
	List(ctx context.Context) ([]*domain.Shop, error)
}
