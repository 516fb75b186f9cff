package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/shamsi/internal/infrastructure/config"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute, "shamsi"), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	key := Key("Y/m/d", "1710892800", "UTC", "en")

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, "1403/01/01"))

	val, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1403/01/01", val)

	assert.True(t, mr.Exists("shamsi:"+key))
	assert.Equal(t, time.Minute, mr.TTL("shamsi:"+key))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "k", "v"))
	assert.Error(t, c.Ping(context.Background()))
}

func TestKey(t *testing.T) {
	a := Key("Y", "1", "UTC", "fa")
	assert.Equal(t, a, Key("Y", "1", "UTC", "fa"))
	assert.NotEqual(t, a, Key("Y", "1", "UTC", "en"))
	// separators cannot be forged by shifting characters between parts
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Len(t, a, len("fmt:")+36)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	var cfg config.CacheConfig
	cfg.Host = mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	cfg.Port = port

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache: ping")
}

func TestNopCache(t *testing.T) {
	var c RenderCache = NopCache{}
	require.NoError(t, c.Set(context.Background(), "k", "v"))
	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Ping(context.Background()))
}
