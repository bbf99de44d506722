package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// UnitOfWork implements ports.UnitOfWork with a gorm transaction.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(tx ports.MutationTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&mutationTx{tx: tx})
	})
}

// mutationTx must only ever touch tx; using the outer handle would escape
// the transaction.
type mutationTx struct {
	tx *gorm.DB
}

func (m *mutationTx) ShopsByIDs(ctx context.Context, ids []int64) ([]*domain.Shop, error) {
	var rows []shopModel
	if err := lockForUpdate(m.tx.WithContext(ctx)).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Shop, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (m *mutationTx) ProductOwnershipsByIDs(ctx context.Context, ids []int64) ([]domain.ProductOwnership, error) {
	var rows []ownershipRow
	err := lockForUpdate(m.tx.WithContext(ctx)).Table("products").
		Select("products.id AS product_id, products.shop_id AS shop_id, shops.owner_id AS owner_id").
		Joins("JOIN shops ON shops.id = products.shop_id").
		Where("products.id IN ?", ids).
		Order("products.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductOwnership, len(rows))
	for i, r := range rows {
		out[i] = domain.ProductOwnership{ProductID: r.ProductID, ShopID: r.ShopID, OwnerID: r.OwnerID}
	}
	return out, nil
}

// DeleteShops removes the products explicitly so the cascade does not depend
// on the foreign key action being present.
func (m *mutationTx) DeleteShops(ctx context.Context, ids []int64) error {
	db := m.tx.WithContext(ctx)
	if err := db.Where("shop_id IN ?", ids).Delete(&productModel{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&shopModel{}).Error
}

func (m *mutationTx) DeleteProducts(ctx context.Context, ids []int64) error {
	return m.tx.WithContext(ctx).Where("id IN ?", ids).Delete(&productModel{}).Error
}
