package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// idempotentCreate runs create once per key. A completed key replays the
// resource it produced instead of creating another one. A nil store or an
// empty key disables the mechanism.
func idempotentCreate[T any](
	ctx context.Context,
	store ports.IdempotencyStore,
	log zerolog.Logger,
	key string,
	create func() (T, int64, error),
	replay func(id int64) (T, error),
) (result T, replayed bool, err error) {
	if store == nil || key == "" {
		result, _, err = create()
		return result, false, err
	}

	existingID, reserved, err := store.Reserve(ctx, key)
	if err != nil {
		return result, false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if !reserved {
		log.Info().Str("idempotency_key", key).Int64("id", existingID).Msg("idempotent replay")
		result, err = replay(existingID)
		return result, true, err
	}

	result, id, err := create()
	if err != nil {
		if relErr := store.Release(ctx, key); relErr != nil {
			log.Warn().Err(relErr).Str("idempotency_key", key).Msg("failed to release idempotency key")
		}
		return result, false, err
	}
	if err := store.Complete(ctx, key, id); err != nil {
		log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to complete idempotency key")
	}
	return result, false, nil
}

func scopedKey(kind string, userID int64, key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d:%s", kind, userID, key)
}
