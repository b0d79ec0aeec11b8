package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libraryhub/infras/otel"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	memoryCleanupInterval = 5 * time.Minute
	memoryPatternWildcard = "*"
)

type memoryCache struct {
	store *goCache.Cache
	otel  otel.Otel
}

// NewMemoryCache keeps values in process memory. Useful for single-instance
// deployments and local development where Redis is not available.
func NewMemoryCache(ot otel.Otel) RedisCache {
	return &memoryCache{
		store: goCache.New(goCache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

// Clear implements RedisCache. The prefix follows the Redis SCAN match syntax
// used by the Redis driver, only a trailing wildcard is honoured.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	wildcard := strings.HasSuffix(prefix, memoryPatternWildcard)
	prefix = strings.TrimSuffix(prefix, memoryPatternWildcard)

	for key := range cache.store.Items() {
		if key == prefix || (wildcard && strings.HasPrefix(key, prefix)) {
			cache.store.Delete(key)
		}
	}

	return nil
}

// Delete implements RedisCache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.store.Delete(key)

	return nil
}

// Get implements RedisCache. A miss is reported as a wrapped Nil, matching the Redis driver.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, found := cache.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	data, _ := raw.([]byte)

	if err := decode(data, value); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

// Save implements RedisCache. A non-positive duration keeps the value until it is deleted.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return err
	}

	expiration := goCache.NoExpiration
	if duration > 0 {
		expiration = time.Duration(duration) * time.Second
	}

	cache.store.Set(key, data, expiration)

	return nil
}
