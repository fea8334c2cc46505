package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/viper"

	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// openCache builds the lookup cache selected by configuration. The default
// is no caching; a NATS-backed cache lets repeated lookups be shared across
// invocations and machines.
func openCache() (frontegg.Cache, error) {
	cacheType := frontegg.CacheType(viper.GetString("cache.type"))
	if cacheType == "" {
		cacheType = frontegg.CacheTypeNone
	}

	config := &frontegg.CacheConfig{
		Type:    cacheType,
		Options: frontegg.DefaultCacheOptions(),
	}

	switch cacheType {
	case frontegg.CacheTypeMemory:
		if maxSize := viper.GetInt("cache.max-size"); maxSize > 0 {
			config.Memory = &frontegg.MemoryCacheConfig{MaxSize: maxSize}
		}
	case frontegg.CacheTypeNATS:
		config.NATS = &frontegg.NATSKVConfig{
			URL:             viper.GetString("cache.nats.url"),
			Bucket:          viper.GetString("cache.nats.bucket"),
			CredentialsFile: viper.GetString("cache.nats.creds"),
			TTL:             viper.GetDuration("cache.ttl"),
		}
	case frontegg.CacheTypeNone:
	}

	return frontegg.NewCacheFromConfig(config)
}

// cachedLookup consults the cache for key and falls back to fetch on a miss,
// storing the fetched value for next time. Cache failures degrade to a plain
// fetch; only fetch errors are surfaced.
func cachedLookup[T any](ctx context.Context, cache frontegg.Cache, key string, ttl time.Duration, fetch func() (*T, error)) (*T, error) {
	if entry, err := cache.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal(entry.Data, &value); err == nil {
			return &value, nil
		}
	}

	value, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(value); err == nil {
		_ = cache.Set(ctx, key, &frontegg.CacheEntry{
			Data:      data,
			ExpiresAt: time.Now().Add(ttl),
		})
	}

	return value, nil
}
