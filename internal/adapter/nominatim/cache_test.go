package nominatim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	calls   int
	address string
	err     error
}

func (c *countingGeocoder) Reverse(_ context.Context, _, _ float64) (string, error) {
	c.calls++
	return c.address, c.err
}

func TestCachedGeocoder(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup hits the cache", func(t *testing.T) {
		inner := &countingGeocoder{address: "Jl. Nusantara"}
		cached := NewCachedGeocoder(inner, 10, nil)

		first, err := cached.Reverse(ctx, -5.1477, 119.4328)
		require.NoError(t, err)
		second, err := cached.Reverse(ctx, -5.1477, 119.4328)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("distinct coordinates miss", func(t *testing.T) {
		inner := &countingGeocoder{address: "somewhere"}
		cached := NewCachedGeocoder(inner, 10, nil)

		_, err := cached.Reverse(ctx, -5.1477, 119.4328)
		require.NoError(t, err)
		_, err = cached.Reverse(ctx, -5.1500, 119.4400)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("empty results are not cached", func(t *testing.T) {
		inner := &countingGeocoder{address: ""}
		cached := NewCachedGeocoder(inner, 10, nil)

		_, err := cached.Reverse(ctx, -5.1477, 119.4328)
		require.NoError(t, err)
		_, err = cached.Reverse(ctx, -5.1477, 119.4328)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := &countingGeocoder{err: errors.New("rate limited")}
		cached := NewCachedGeocoder(inner, 10, nil)

		_, err := cached.Reverse(ctx, -5.1477, 119.4328)
		require.Error(t, err)
		_, err = cached.Reverse(ctx, -5.1477, 119.4328)
		require.Error(t, err)

		assert.Equal(t, 2, inner.calls)
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", "1")
	cache.put("b", "2")

	// Touch "a" so "b" becomes least recently used.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", "3")

	_, ok = cache.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = cache.get("a")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)
}
