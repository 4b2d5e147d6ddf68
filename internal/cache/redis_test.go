package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestRedis_SetGet(t *testing.T) {
	ctx := context.Background()
	_, c := newTestRedis(t)

	require.NoError(t, c.Ping(ctx))

	c.Set(ctx, "systems", []byte(`[]`), time.Minute)

	val, ok := c.Get(ctx, "systems")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)
}

func TestRedis_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestRedis(t)

	c.Set(ctx, "summary", []byte("x"), time.Minute)

	assert.True(t, mr.Exists("dnsaudit:summary"))
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestRedis(t)

	c.Set(ctx, "summary", []byte("x"), time.Second)
	mr.FastForward(2 * time.Second)

	_, ok := c.Get(ctx, "summary")
	assert.False(t, ok)
}

func TestRedis_Miss(t *testing.T) {
	_, c := newTestRedis(t)

	_, ok := c.Get(context.Background(), "nope")
	assert.False(t, ok)
}
