package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// OwnershipRepository implements ports.OwnershipRepository. Both lookups are
// single queries against current rows.
type OwnershipRepository struct {
	db *gorm.DB
}

func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

func (r *OwnershipRepository) ShopOwner(ctx context.Context, shopID int64) (int64, bool, error) {
	var owners []int64
	err := r.db.WithContext(ctx).Model(&shopModel{}).
		Where("id = ?", shopID).
		Limit(1).
		Pluck("owner_id", &owners).Error
	if err != nil {
		return 0, false, fmt.Errorf("shop owner: %w", err)
	}
	if len(owners) == 0 {
		return 0, false, nil
	}
	return owners[0], true, nil
}

func (r *OwnershipRepository) ProductOwner(ctx context.Context, productID int64) (int64, bool, error) {
	var owners []int64
	err := r.db.WithContext(ctx).Table("products").
		Joins("JOIN shops ON shops.id = products.shop_id").
		Where("products.id = ?", productID).
		Limit(1).
		Pluck("shops.owner_id", &owners).Error
	if err != nil {
		return 0, false, fmt.Errorf("product owner: %w", err)
	}
	if len(owners) == 0 {
		return 0, false, nil
	}
	return owners[0], true, nil
}
