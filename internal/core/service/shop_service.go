package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

type ShopService struct {
	repo        ports.ShopRepository
	bulk        *BulkDeleter
	idempotency ports.IdempotencyStore
	log         zerolog.Logger
}

// NewShopService wires the shop use cases. idempotency may be nil.
func NewShopService(repo ports.ShopRepository, bulk *BulkDeleter, idempotency ports.IdempotencyStore, log zerolog.Logger) *ShopService {
	return &ShopService{repo: repo, bulk: bulk, idempotency: idempotency, log: log}
}

// Register creates a shop owned by actor. A repeated Idempotency-Key returns
// the shop created by the first request.
func (s *ShopService) Register(ctx context.Context, actor domain.UserIdentity, input ports.CreateShopInput) (*ports.ShopResult, error) {
	if _, err := domain.ParseDeliveryOption(string(input.DeliveryOption)); err != nil {
		return nil, err
	}

	key := scopedKey("shop", actor.UserID, input.IdempotencyKey)
	shop, replayed, err := idempotentCreate(ctx, s.idempotency, s.log, key,
		func() (*domain.Shop, int64, error) {
			now := time.Now().UTC()
			shop := &domain.Shop{
				OwnerID:        actor.UserID,
				Name:           input.Name,
				Address:        input.Address,
				Phone:          input.Phone,
				Location:       domain.Location{Lat: input.Latitude, Lng: input.Longitude},
				OpenHours:      input.OpenHours,
				DeliveryOption: input.DeliveryOption,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := s.repo.Create(ctx, shop); err != nil {
				return nil, 0, fmt.Errorf("create shop: %w", err)
			}
			return shop, shop.ID, nil
		},
		func(id int64) (*domain.Shop, error) {
			return s.repo.FindByID(ctx, id)
		},
	)
	if err != nil {
		s.log.Error().Err(err).Int64("owner_id", actor.UserID).Msg("failed to register shop")
		return nil, err
	}

	if !replayed {
		s.log.Info().Int64("shop_id", shop.ID).Int64("owner_id", shop.OwnerID).Msg("shop registered")
	}
	return &ports.ShopResult{Shop: shop, AlreadyExisted: replayed}, nil
}

func (s *ShopService) Get(ctx context.Context, id int64) (*domain.Shop, error) {
	return s.repo.FindByID(ctx, id)
}

// ListMine returns the shops owned by actor.
func (s *ShopService) ListMine(ctx context.Context, actor domain.UserIdentity) ([]*domain.Shop, error) {
	return s.repo.ListByOwner(ctx, actor.UserID)
}

func (s *ShopService) ListAll(ctx context.Context) ([]*domain.Shop, error) {
	return s.repo.List(ctx)
}

// Delete removes one shop and its products. It shares the batch path so the
// existence and ownership checks happen in the deleting transaction.
func (s *ShopService) Delete(ctx context.Context, actor domain.UserIdentity, id int64) error {
	return s.bulk.DeleteShops(ctx, actor, []int64{id})
}

func (s *ShopService) DeleteMany(ctx context.Context, actor domain.UserIdentity, ids []int64) error {
	return s.bulk.DeleteShops(ctx, actor, ids)
}
