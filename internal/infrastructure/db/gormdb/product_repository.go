package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// ProductRepository implements ports.ProductRepository.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create holds a share lock on the parent shop so it cannot be deleted
// between the existence check and the insert.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m := productFromDomain(product)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop shopModel
		if err := lockForShare(tx).Select("id").Take(&shop, product.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrShopNotFound
			}
			return err
		}
		return tx.Omit(clause.Associations).Create(m).Error
	})
	switch {
	case errors.Is(err, domain.ErrShopNotFound), isForeignKeyViolation(err):
		return fmt.Errorf("%w: id %d", domain.ErrShopNotFound, product.ShopID)
	case err != nil:
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = m.ID
	product.CreatedAt, product.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).Take(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*domain.Product, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Update writes the mutable columns only; shop_id is never part of the SET.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", product.ID).Updates(map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"category":    product.Category,
		"updated_at":  product.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, product.ID)
	}
	return nil
}
