package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

const (
	DefaultIdempotencyTTL = 24 * time.Hour

	keyPrefix    = "idem:"
	pendingValue = "pending"
	// pendingTTL bounds how long a crashed request can block its key.
	pendingTTL = time.Minute
)

// IdempotencyStore implements ports.IdempotencyStore.
// Key format: idem:<kind>:<user_id>:<client key> -> "pending" | <resource id>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (int64, bool, error) {
	k := keyPrefix + key
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, k, pendingValue, pendingTTL).Result()
		if err != nil {
			return 0, false, fmt.Errorf("idempotency reserve: %w", err)
		}
		if ok {
			return 0, true, nil
		}

		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("idempotency lookup: %w", err)
		}
		if val == pendingValue {
			return 0, false, domain.ErrRequestInFlight
		}
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("idempotency value %q: %w", val, err)
		}
		return id, false, nil
	}
	return 0, false, domain.ErrRequestInFlight
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, id int64) error {
	return s.client.Set(ctx, keyPrefix+key, strconv.FormatInt(id, 10), s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
