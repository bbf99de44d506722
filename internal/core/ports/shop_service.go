package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// CreateShopInput carries the data for a new shop. The owner is always the
// acting identity and is not part of the input.
type CreateShopInput struct {
	Name           string
	Address        string
	Phone          string
	Latitude       float64
	Longitude      float64
	OpenHours      string
	DeliveryOption domain.DeliveryOption
	IdempotencyKey string
}

// ShopResult is returned by Register.
type ShopResult struct {
	Shop *domain.Shop
	// AlreadyExisted is true when the Idempotency-Key matched an earlier request.
	AlreadyExisted bool
}

// ShopService defines use-case operations for shops.
type ShopService interface {
	Register(ctx context.Context, actor domain.UserIdentity, input CreateShopInput) (*ShopResult, error)
	Get(ctx context.Context, id int64) (*domain.Shop, error)
	ListMine(ctx context.Context, actor domain.UserIdentity) ([]*domain.Shop, error)
	ListAll(ctx context.Context) ([]*domain.Shop, error)
	Delete(ctx context.Context, actor domain.UserIdentity, id int64) error
	DeleteMany(ctx context.Context, actor domain.UserIdentity, ids []int64) error
}
