package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounter(t *testing.T) (*RedisCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCounter(client), mr
}

func TestRedisCounter_IncrByAndCount(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	c, err := counter.Count(ctx, "email:quota:2025-10-19")
	require.NoError(t, err)
	assert.Zero(t, c)

	n, err := counter.IncrBy(ctx, "email:quota:2025-10-19", 3, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = counter.IncrBy(ctx, "email:quota:2025-10-19", -1, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	c, err = counter.Count(ctx, "email:quota:2025-10-19")
	require.NoError(t, err)
	assert.Equal(t, int64(2), c)

	assert.Equal(t, 48*time.Hour, mr.TTL("email:quota:2025-10-19"))

	mr.FastForward(49 * time.Hour)
	c, err = counter.Count(ctx, "email:quota:2025-10-19")
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestRedisCounter_ServerDown(t *testing.T) {
	counter, mr := newTestCounter(t)
	mr.Close()

	_, err := counter.IncrBy(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
	_, err = counter.Count(context.Background(), "k")
	assert.Error(t, err)
}
