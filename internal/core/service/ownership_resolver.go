package service

import (
	"context"
	"fmt"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// OwnershipResolver walks the product -> shop -> owner chain. Nothing is
// cached; every call reads the store.
type OwnershipResolver struct {
	repo ports.OwnershipRepository
}

func NewOwnershipResolver(repo ports.OwnershipRepository) *OwnershipResolver {
	return &OwnershipResolver{repo: repo}
}

// OwnerOf returns the owner of shopID or domain.ErrShopNotFound.
func (r *OwnershipResolver) OwnerOf(ctx context.Context, shopID int64) (int64, error) {
	ownerID, found, err := r.repo.ShopOwner(ctx, shopID)
	if err != nil {
		return 0, fmt.Errorf("resolve shop owner: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: id %d", domain.ErrShopNotFound, shopID)
	}
	return ownerID, nil
}

// ProductOwnerOf returns the owner of the product's parent shop or
// domain.ErrProductNotFound.
func (r *OwnershipResolver) ProductOwnerOf(ctx context.Context, productID int64) (int64, error) {
	ownerID, found, err := r.repo.ProductOwner(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("resolve product owner: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
	}
	return ownerID, nil
}

// Exists reports whether shopID refers to a stored shop.
func (r *OwnershipResolver) Exists(ctx context.Context, shopID int64) (bool, error) {
	_, found, err := r.repo.ShopOwner(ctx, shopID)
	if err != nil {
		return false, fmt.Errorf("resolve shop: %w", err)
	}
	return found, nil
}

// IsOwner is true iff the shop exists and userID owns it. A missing shop is
// reported as false; call Exists or OwnerOf when the difference matters.
func (r *OwnershipResolver) IsOwner(ctx context.Context, shopID, userID int64) (bool, error) {
	ownerID, found, err := r.repo.ShopOwner(ctx, shopID)
	if err != nil {
		return false, fmt.Errorf("resolve shop owner: %w", err)
	}
	return found && ownerID == userID, nil
}

// IsProductOwner is true iff the product exists and userID owns its shop.
func (r *OwnershipResolver) IsProductOwner(ctx context.Context, productID, userID int64) (bool, error) {
	ownerID, found, err := r.repo.ProductOwner(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("resolve product owner: %w", err)
	}
	return found && ownerID == userID, nil
}
