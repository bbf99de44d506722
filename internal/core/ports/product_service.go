package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// ProductInput holds the mutable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}

// CreateProductInput adds a product to ShopID.
type CreateProductInput struct {
	ShopID         int64
	Product        ProductInput
	IdempotencyKey string
}

// ProductResult is returned by Add.
type ProductResult struct {
	Product        *domain.Product
	AlreadyExisted bool
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Add(ctx context.Context, actor domain.UserIdentity, input CreateProductInput) (*ProductResult, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error)
	Update(ctx context.Context, actor domain.UserIdentity, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.UserIdentity, id int64) error
	DeleteMany(ctx context.Context, actor domain.UserIdentity, ids []int64) error
}
