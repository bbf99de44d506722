package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// BulkDeleter removes batches of shops or products all-or-nothing. Every id is
// resolved and ownership-checked inside the same transaction that deletes, so
// a batch either disappears completely or is left untouched.
type BulkDeleter struct {
	uow ports.UnitOfWork
	log zerolog.Logger
}

func NewBulkDeleter(uow ports.UnitOfWork, log zerolog.Logger) *BulkDeleter {
	return &BulkDeleter{uow: uow, log: log}
}

// DeleteShops deletes the shops and, with them, all of their products.
func (b *BulkDeleter) DeleteShops(ctx context.Context, actor domain.UserIdentity, ids []int64) error {
	set, err := requestedSet(ids)
	if err != nil {
		return err
	}

	err = b.uow.Within(ctx, func(tx ports.MutationTx) error {
		shops, err := tx.ShopsByIDs(ctx, set)
		if err != nil {
			return err
		}
		if len(shops) < len(set) {
			return fmt.Errorf("%w: %d of %d requested shops do not exist", domain.ErrShopNotFound, len(set)-len(shops), len(set))
		}

		owners := make([]int64, len(shops))
		for i, s := range shops {
			owners[i] = s.OwnerID
		}
		if err := requireOwnership(actor, owners); err != nil {
			return err
		}

		return tx.DeleteShops(ctx, set)
	})
	if err != nil {
		b.log.Info().Err(err).Int64("user_id", actor.UserID).Int("count", len(set)).Msg("shop batch rejected")
		return err
	}

	b.log.Info().Int64("user_id", actor.UserID).Ints64("shop_ids", set).Msg("shops deleted")
	return nil
}

// DeleteProducts deletes the products. Ownership is resolved through each
// product's parent shop.
func (b *BulkDeleter) DeleteProducts(ctx context.Context, actor domain.UserIdentity, ids []int64) error {
	set, err := requestedSet(ids)
	if err != nil {
		return err
	}

	err = b.uow.Within(ctx, func(tx ports.MutationTx) error {
		products, err := tx.ProductOwnershipsByIDs(ctx, set)
		if err != nil {
			return err
		}
		if len(products) < len(set) {
			return fmt.Errorf("%w: %d of %d requested products do not exist", domain.ErrProductNotFound, len(set)-len(products), len(set))
		}

		owners := make([]int64, len(products))
		for i, p := range products {
			owners[i] = p.OwnerID
		}
		if err := requireOwnership(actor, owners); err != nil {
			return err
		}

		return tx.DeleteProducts(ctx, set)
	})
	if err != nil {
		b.log.Info().Err(err).Int64("user_id", actor.UserID).Int("count", len(set)).Msg("product batch rejected")
		return err
	}

	b.log.Info().Int64("user_id", actor.UserID).Ints64("product_ids", set).Msg("products deleted")
	return nil
}

// requestedSet de-duplicates ids, keeping first-seen order.
func requestedSet(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	seen := make(map[int64]struct{}, len(ids))
	set := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set, nil
}

// requireOwnership passes administrators and shop owners who own every entry
// of owners.
func requireOwnership(actor domain.UserIdentity, owners []int64) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleShop:
		for _, ownerID := range owners {
			if ownerID != actor.UserID {
				return fmt.Errorf("%w: batch contains a resource owned by another user", domain.ErrNotOwner)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: role %q", domain.ErrInsufficientRole, actor.Role)
	}
}
