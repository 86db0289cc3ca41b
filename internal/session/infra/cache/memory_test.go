package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/internal/session/infra/cache"
	"github.com/placemarks-app/placemarks/pkg/clock"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore(clock.Fixed(now))
	ctx := t.Context()

	_, err := store.Get(ctx, "placemarks/auth-token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "placemarks/auth-token", []byte("value"), now.Add(time.Hour)))

	value, err := store.Get(ctx, "placemarks/auth-token")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, store.Delete(ctx, "placemarks/auth-token"))

	_, err = store.Get(ctx, "placemarks/auth-token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestMemoryStore_ExpiredEntriesAreInvisible(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore(clock.Fixed(now))
	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "placemarks/expired", []byte("old"), now.Add(-time.Minute)))
	require.NoError(t, store.Set(ctx, "placemarks/alive", []byte("new"), now.Add(time.Minute)))
	require.NoError(t, store.Set(ctx, "placemarks/forever", []byte("keep"), time.Time{}))

	_, err := store.Get(ctx, "placemarks/expired")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	keys, err := store.Keys(ctx, "placemarks/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"placemarks/alive", "placemarks/forever"}, keys)
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore(clock.Fixed(now))
	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "placemarks/auth-token", []byte("a"), now.Add(time.Hour)))
	require.NoError(t, store.Set(ctx, "placemarks/profile", []byte("b"), now.Add(time.Hour)))
	require.NoError(t, store.Set(ctx, "other/auth-token", []byte("c"), now.Add(time.Hour)))

	require.NoError(t, store.DeleteByPrefix(ctx, "placemarks/"))

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other/auth-token"}, keys)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore(clock.Fixed(now))
	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "placemarks/expired-1", []byte("a"), now.Add(-time.Hour)))
	require.NoError(t, store.Set(ctx, "placemarks/expired-2", []byte("b"), now.Add(-time.Minute)))
	require.NoError(t, store.Set(ctx, "placemarks/alive", []byte("c"), now.Add(time.Minute)))

	deleter, ok := store.(interface {
		DeleteExpired(ctx context.Context) (int, error)
	})
	require.True(t, ok)

	deleted, err := deleter.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	keys, err := store.Keys(ctx, "placemarks/")
	require.NoError(t, err)
	assert.Equal(t, []string{"placemarks/alive"}, keys)
}
