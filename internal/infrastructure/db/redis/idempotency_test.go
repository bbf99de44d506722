package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, time.Hour), mr
}

func TestIdempotencyStore_Lifecycle(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "shop:1:abc")
	require.NoError(t, err)
	assert.True(t, reserved)

	_, _, err = store.Reserve(ctx, "shop:1:abc")
	assert.ErrorIs(t, err, domain.ErrRequestInFlight)

	require.NoError(t, store.Complete(ctx, "shop:1:abc", 42))
	assert.Equal(t, time.Hour, mr.TTL("idem:shop:1:abc"))

	id, reserved, err := store.Reserve(ctx, "shop:1:abc")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.EqualValues(t, 42, id)
}

func TestIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "k")
	require.NoError(t, err)
	require.True(t, reserved)
	require.NoError(t, store.Release(ctx, "k"))

	_, reserved, err = store.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyStore_PendingExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "k")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, reserved, err := store.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, reserved, "an abandoned reservation must not block the key forever")
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

