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

func newTestCache(t *testing.T) (*ListingCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewListingCache(rdb, time.Minute), mr
}

func TestListingCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type listing struct {
		Title string `json:"title"`
	}

	c.Set(ctx, "entries:public", []listing{{Title: "Hello"}})

	var got []listing
	require.True(t, c.Get(ctx, "entries:public", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Hello", got[0].Title)
}

func TestListingCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got []string
	assert.False(t, c.Get(context.Background(), "missing", &got))
}

func TestListingCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "entries:public", []string{"a"})
	c.Invalidate(ctx, "entries:public")

	var got []string
	assert.False(t, c.Get(ctx, "entries:public", &got))
}

func TestListingCacheTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewListingCache(rdb, time.Second)
	ctx := context.Background()

	c.Set(ctx, "entries:public", []string{"a"})
	mr.FastForward(2 * time.Second)

	var got []string
	assert.False(t, c.Get(ctx, "entries:public", &got))
}

func TestListingCacheNilClientDegrades(t *testing.T) {
	var c *ListingCache
	ctx := context.Background()

	// no panic on any operation
	c.Set(ctx, "k", "v")
	c.Invalidate(ctx, "k")

	var got string
	assert.False(t, c.Get(ctx, "k", &got))
}
