package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// ShopRepository implements ports.ShopRepository.
type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	m := shopFromDomain(shop)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner %d", domain.ErrUserNotFound, shop.OwnerID)
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	shop.ID = m.ID
	shop.CreatedAt, shop.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	var m shopModel
	err := r.db.WithContext(ctx).Take(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrShopNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find shop: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ShopRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Shop, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *ShopRepository) List(ctx context.Context) ([]*domain.Shop, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *ShopRepository) list(_ context.Context, q *gorm.DB) ([]*domain.Shop, error) {
	var rows []shopModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	out := make([]*domain.Shop, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}
