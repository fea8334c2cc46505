package frontegg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryCache(10)

	entry := &CacheEntry{
		Data:      []byte(`{"name": "Acme"}`),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, cache.Set(ctx, "tenants/1", entry))

	got, err := cache.Get(ctx, "tenants/1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
	assert.True(t, cache.Has(ctx, "tenants/1"))

	_, err = cache.Get(ctx, "tenants/2")
	assert.ErrorIs(t, err, ErrCacheKeyNotFound)
	assert.False(t, cache.Has(ctx, "tenants/2"))
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "stale", &CacheEntry{
		Data:      []byte("old"),
		ExpiresAt: time.Now().Add(-time.Second),
	}))

	_, err := cache.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrCacheEntryExpired)

	// The expired entry is removed on access.
	_, err = cache.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrCacheKeyNotFound)
}

func TestMemoryCache_ZeroExpiryNeverExpires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "forever", &CacheEntry{Data: []byte("x")}))

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got.Data)
}

func TestMemoryCache_EvictsEarliestExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryCache(2)

	now := time.Now()
	require.NoError(t, cache.Set(ctx, "soon", &CacheEntry{Data: []byte("a"), ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, cache.Set(ctx, "later", &CacheEntry{Data: []byte("b"), ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, cache.Set(ctx, "new", &CacheEntry{Data: []byte("c"), ExpiresAt: now.Add(time.Hour)}))

	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "later"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "a", &CacheEntry{Data: []byte("1")}))
	require.NoError(t, cache.Set(ctx, "b", &CacheEntry{Data: []byte("2")}))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "a", &CacheEntry{Data: []byte("1")}))

	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "a"))

	assert.NoError(t, cache.Delete(ctx, "a"))
	assert.NoError(t, cache.Clear(ctx))
}

func TestCacheChain_BackfillsEarlierCaches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := NewMemoryCache(10)
	l2 := NewMemoryCache(10)
	chain := NewCacheChain(l1, l2)

	entry := &CacheEntry{Data: []byte("shared"), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, l2.Set(ctx, "key", entry))

	got, err := chain.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)

	// The hit in L2 was copied up into L1.
	assert.True(t, l1.Has(ctx, "key"))
}

func TestCacheChain_MissInAllCaches(t *testing.T) {
	t.Parallel()

	chain := NewCacheChain(NewMemoryCache(10), NewMemoryCache(10))

	_, err := chain.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFoundInAnyCache)
}

func TestCacheChain_SetAndDeleteFanOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := NewMemoryCache(10)
	l2 := NewMemoryCache(10)
	chain := NewCacheChain(l1, l2)

	require.NoError(t, chain.Set(ctx, "key", &CacheEntry{Data: []byte("v")}))
	assert.True(t, l1.Has(ctx, "key"))
	assert.True(t, l2.Has(ctx, "key"))

	require.NoError(t, chain.Delete(ctx, "key"))
	assert.False(t, l1.Has(ctx, "key"))
	assert.False(t, l2.Has(ctx, "key"))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   *CacheConfig
		expected any
		wantErr  error
	}{
		{
			name:     "nil config defaults to memory",
			config:   nil,
			expected: &MemoryCache{},
		},
		{
			name:     "memory",
			config:   &CacheConfig{Type: CacheTypeMemory},
			expected: &MemoryCache{},
		},
		{
			name:     "none",
			config:   &CacheConfig{Type: CacheTypeNone},
			expected: &NoOpCache{},
		},
		{
			name:    "nats without config",
			config:  &CacheConfig{Type: CacheTypeNATS},
			wantErr: ErrNATSConfigRequired,
		},
		{
			name:    "unsupported type",
			config:  &CacheConfig{Type: CacheType("redis")},
			wantErr: ErrUnsupportedCacheType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, err := NewCacheFromConfig(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.expected, cache)
		})
	}
}
