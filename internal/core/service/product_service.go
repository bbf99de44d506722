package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

type ProductService struct {
	products    ports.ProductRepository
	shops       ports.ShopRepository
	bulk        *BulkDeleter
	idempotency ports.IdempotencyStore
	log         zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	shops ports.ShopRepository,
	bulk *BulkDeleter,
	idempotency ports.IdempotencyStore,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{products: products, shops: shops, bulk: bulk, idempotency: idempotency, log: log}
}

// Add creates a product in input.ShopID. Ownership of the shop is enforced
// before this is called.
func (s *ProductService) Add(ctx context.Context, actor domain.UserIdentity, input ports.CreateProductInput) (*ports.ProductResult, error) {
	if err := validateProduct(input.Product); err != nil {
		return nil, err
	}

	key := scopedKey(fmt.Sprintf("product:%d", input.ShopID), actor.UserID, input.IdempotencyKey)
	product, replayed, err := idempotentCreate(ctx, s.idempotency, s.log, key,
		func() (*domain.Product, int64, error) {
			now := time.Now().UTC()
			product := &domain.Product{ShopID: input.ShopID, CreatedAt: now}
			applyProductInput(product, input.Product, now)
			if err := s.products.Create(ctx, product); err != nil {
				return nil, 0, fmt.Errorf("create product: %w", err)
			}
			return product, product.ID, nil
		},
		func(id int64) (*domain.Product, error) {
			return s.products.FindByID(ctx, id)
		},
	)
	if err != nil {
		s.log.Error().Err(err).Int64("shop_id", input.ShopID).Msg("failed to add product")
		return nil, err
	}

	if !replayed {
		s.log.Info().Int64("product_id", product.ID).Int64("shop_id", product.ShopID).Msg("product added")
	}
	return &ports.ProductResult{Product: product, AlreadyExisted: replayed}, nil
}

// ListByShop returns the products of a shop, or domain.ErrShopNotFound.
func (s *ProductService) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	if _, err := s.shops.FindByID(ctx, shopID); err != nil {
		return nil, err
	}
	return s.products.ListByShop(ctx, shopID)
}

// Update replaces the mutable fields of a product. The parent shop cannot be
// changed.
func (s *ProductService) Update(ctx context.Context, actor domain.UserIdentity, id int64, input ports.ProductInput) (*domain.Product, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input, time.Now().UTC())
	if err := s.products.Update(ctx, product); err != nil {
		s.log.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info().Int64("product_id", id).Int64("user_id", actor.UserID).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor domain.UserIdentity, id int64) error {
	return s.bulk.DeleteProducts(ctx, actor, []int64{id})
}

func (s *ProductService) DeleteMany(ctx context.Context, actor domain.UserIdentity, ids []int64) error {
	return s.bulk.DeleteProducts(ctx, actor, ids)
}

func validateProduct(in ports.ProductInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: product name is required", domain.ErrBadRequest)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price cannot be negative", domain.ErrBadRequest)
	case in.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrBadRequest)
	}
	return nil
}

func applyProductInput(p *domain.Product, in ports.ProductInput, now time.Time) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Category = in.Category
	p.UpdatedAt = now
}
