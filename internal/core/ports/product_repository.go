package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// ProductRepository persists products.
type ProductRepository interface {
	// Create inserts a product. Returns domain.ErrShopNotFound when the parent
	// shop does not exist at insert time.
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error)
	// Update overwrites the mutable fields of an existing product. ShopID is
	// never written.
	Update(ctx context.Context, product *domain.Product) error
}
