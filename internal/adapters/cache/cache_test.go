package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault/internal/adapters/cache"
	"notevault/internal/config"
	cachePorts "notevault/internal/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		PoolSize:       10,
		DefaultTTL:     15 * time.Minute,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok, "should implement Cache interface")

	assert.NoError(t, redisCache.Close())
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "127.0.0.1",
		Port:           1,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	assert.Nil(t, redisCache)
	assert.Error(t, err)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "identity:test@example.com", `{"id":"user-1"}`, time.Minute))

	value, err := redisCache.Get(ctx, "identity:test@example.com")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"user-1"}`, value)
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	value, err := redisCache.Get(ctx, "missing-key")

	require.NoError(t, err, "missing key is not an error")
	assert.Empty(t, value)
}

func TestRedisCache_ExpiredKey(t *testing.T) {
	server, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "short-lived", "value", time.Second))

	server.FastForward(2 * time.Second)

	value, err := redisCache.Get(ctx, "short-lived")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCache_ZeroTTLUsesDefault(t *testing.T) {
	server, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "defaulted", "value", 0))

	ttl := server.TTL("defaulted")
	assert.Equal(t, cfg.DefaultTTL, ttl)
}

func TestRedisCache_Delete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "to-delete", "value", time.Minute))
	require.NoError(t, redisCache.Delete(ctx, "to-delete"))

	value, err := redisCache.Get(ctx, "to-delete")
	require.NoError(t, err)
	assert.Empty(t, value)
}
