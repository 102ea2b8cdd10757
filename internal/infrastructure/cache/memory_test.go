package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	ms.Set("k", "v", time.Minute)
	v, ok := ms.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	ms.Delete("k")
	_, ok = ms.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	now := time.Now()
	ms.now = func() time.Time { return now }

	ms.Set("short", "v", time.Second)
	ms.Set("forever", "v", 0)

	now = now.Add(2 * time.Second)
	_, ok := ms.Get("short")
	assert.False(t, ok)
	_, ok = ms.Get("forever")
	assert.True(t, ok)
}

func TestMemoryStore_IncrBy(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	now := time.Now()
	ms.now = func() time.Time { return now }

	n, err := ms.IncrBy(ctx, "quota", 2, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = ms.IncrBy(ctx, "quota", 3, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = ms.IncrBy(ctx, "quota", -1, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	c, err := ms.Count(ctx, "quota")
	require.NoError(t, err)
	assert.Equal(t, int64(4), c)

	// ttl is set on creation only
	now = now.Add(61 * time.Minute)
	c, err = ms.Count(ctx, "quota")
	require.NoError(t, err)
	assert.Zero(t, c)

	n, err = ms.IncrBy(ctx, "quota", 1, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_CountMissing(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	c, err := ms.Count(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	ms := NewMemoryStore()
	ms.Close()
	ms.Close()
}
