package cache_test

import (
	"context"
	"errors"
	"testing"

	"libraryhub/infras/otel/mocks"
	"libraryhub/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedBooking struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "booking:get:b-1", cachedBooking{ID: "b-1", Status: "confirmed"}, 60))

	var got cachedBooking
	require.NoError(t, store.Get(ctx, "booking:get:b-1", &got))
	assert.Equal(t, cachedBooking{ID: "b-1", Status: "confirmed"}, got)

	var count int
	require.NoError(t, store.Save(ctx, "limiter:ip", 3, 60))
	require.NoError(t, store.Get(ctx, "limiter:ip", &count))
	assert.Equal(t, 3, count)
}

func TestMemoryCache_MissIsNil(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	var got cachedBooking
	err := store.Get(context.Background(), "booking:get:missing", &got)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_ClearPrefix(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "booking:gets:a", "1", 0))
	require.NoError(t, store.Save(ctx, "booking:gets:b", "2", 0))
	require.NoError(t, store.Save(ctx, "booking:get:b-1", "3", 0))

	require.NoError(t, store.Clear(ctx, "booking:gets:*"))

	var value string
	assert.Error(t, store.Get(ctx, "booking:gets:a", &value))
	assert.Error(t, store.Get(ctx, "booking:gets:b", &value))
	require.NoError(t, store.Get(ctx, "booking:get:b-1", &value))
	assert.Equal(t, "3", value)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "booking:get:b-1", "x", 0))
	require.NoError(t, store.Delete(ctx, "booking:get:b-1"))

	var value string
	assert.ErrorIs(t, store.Get(ctx, "booking:get:b-1", &value), cache.Nil)
}

func TestMemoryCache_StringsStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "library:gets:page=1", `{"raw":true}`, 60))

	var raw string
	require.NoError(t, store.Get(ctx, "library:gets:page=1", &raw))
	assert.Equal(t, `{"raw":true}`, raw)

	var decoded map[string]bool
	require.NoError(t, store.Get(ctx, "library:gets:page=1", &decoded))
	assert.True(t, decoded["raw"])
}
