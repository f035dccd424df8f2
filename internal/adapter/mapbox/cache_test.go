package mapbox

import (
	"context"
	"errors"
	"testing"

	"github.com/couchcryptid/crime-data-map/internal/domain"
	"github.com/couchcryptid/crime-data-map/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	calls  int
	result domain.GeocodingResult
	err    error
}

func (c *countingGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (domain.GeocodingResult, error) {
	c.calls++
	return c.result, c.err
}

func TestCachedGeocoder(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat lookup hits cache", func(t *testing.T) {
		inner := &countingGeocoder{result: domain.GeocodingResult{FormattedAddress: "Broadway, Cambridge"}}
		cached := NewCachedGeocoder(inner, 10, observability.NewMetrics())

		first, err := cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.NoError(t, err)
		second, err := cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("distinct coordinates are distinct keys", func(t *testing.T) {
		inner := &countingGeocoder{result: domain.GeocodingResult{FormattedAddress: "somewhere"}}
		cached := NewCachedGeocoder(inner, 10, observability.NewMetrics())

		_, err := cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.NoError(t, err)
		_, err = cached.ReverseGeocode(ctx, 42.3800, -71.1100)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("empty results are not cached", func(t *testing.T) {
		inner := &countingGeocoder{}
		cached := NewCachedGeocoder(inner, 10, observability.NewMetrics())

		_, err := cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.NoError(t, err)
		_, err = cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := &countingGeocoder{err: errors.New("boom")}
		cached := NewCachedGeocoder(inner, 10, observability.NewMetrics())

		_, err := cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.Error(t, err)
		_, err = cached.ReverseGeocode(ctx, 42.3736, -71.1097)
		require.Error(t, err)

		assert.Equal(t, 2, inner.calls)
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := newLRUCache(2)
	a := domain.GeocodingResult{FormattedAddress: "a"}
	b := domain.GeocodingResult{FormattedAddress: "b"}
	c := domain.GeocodingResult{FormattedAddress: "c"}

	cache.put("a", a)
	cache.put("b", b)

	// Touch "a" so "b" becomes least recently used.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", c)

	_, ok = cache.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	got, ok := cache.get("a")
	require.True(t, ok)
	assert.Equal(t, a, got)
	got, ok = cache.get("c")
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	cache := newLRUCache(2)
	cache.put("a", domain.GeocodingResult{FormattedAddress: "old"})
	cache.put("a", domain.GeocodingResult{FormattedAddress: "new"})

	got, ok := cache.get("a")
	require.True(t, ok)
	assert.Equal(t, "new", got.FormattedAddress)
}
