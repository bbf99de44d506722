package ports

import (
	"context"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// UnitOfWork runs fn inside one store transaction. If fn returns an error
// nothing it did is committed.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(tx MutationTx) error) error
}

// MutationTx is the set of reads and writes available inside a UnitOfWork.
// Reads lock the returned rows until the transaction ends.
type MutationTx interface {
	ShopsByIDs(ctx context.Context, ids []int64) ([]*domain.Shop, error)
	ProductOwnershipsByIDs(ctx context.Context, ids []int64) ([]domain.ProductOwnership, error)
	// DeleteShops removes the shops and every product that belongs to them.
	DeleteShops(ctx context.Context, ids []int64) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
