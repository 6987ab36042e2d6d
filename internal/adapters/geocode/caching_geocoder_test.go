package geocode

import (
	"context"
	"eld-log-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	m       map[string]domain.Coordinates
	putErr  error
	getErr  error
	putKeys []string
}

func newMemCache() *memCache {
	return &memCache{m: map[string]domain.Coordinates{}}
}

func (c *memCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := map[string]domain.Coordinates{}
	for _, a := range addresses {
		if v, ok := c.m[a]; ok {
			out[a] = v
		}
	}
	return out, nil
}

func (c *memCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	if c.putErr != nil {
		return c.putErr
	}
	for k, v := range results {
		c.putKeys = append(c.putKeys, k)
		c.m[k] = v
	}
	return nil
}

var (
	chicago = domain.Coordinates{Lat: 41.8781, Lon: -87.6298}
	detroit = domain.Coordinates{Lat: 42.3314, Lon: -83.0458}
)

func TestCachingGeocoderServesHitsAndFillsMisses(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	cache.m["Chicago, IL"] = chicago
	next := NewMockGeocoder(map[string]domain.Coordinates{"Detroit, MI": detroit})

	g := NewCachingGeocoder(cache, next)

	got, err := g.Geocode(ctx, []string{"Chicago, IL", "Detroit, MI", "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Coordinates{
		"Chicago, IL": chicago,
		"Detroit, MI": detroit,
	}, got)
	assert.Equal(t, []string{"Detroit, MI"}, cache.putKeys)
	assert.Equal(t, 1, next.Calls)

	// Second call is answered entirely from the cache.
	_, err = g.Geocode(ctx, []string{"Chicago, IL", "Detroit, MI"})
	require.NoError(t, err)
	assert.Equal(t, 1, next.Calls)
}

func TestCachingGeocoderCacheOnly(t *testing.T) {
	cache := newMemCache()
	cache.m["Chicago, IL"] = chicago

	g := NewCachingGeocoder(cache, nil)

	got, err := g.Geocode(context.Background(), []string{"Chicago, IL", "Detroit, MI"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Coordinates{"Chicago, IL": chicago}, got)
}

func TestCachingGeocoderIgnoresWriteFailure(t *testing.T) {
	cache := newMemCache()
	cache.putErr = errors.New("disk full")
	next := NewMockGeocoder(map[string]domain.Coordinates{"Detroit, MI": detroit})

	got, err := NewCachingGeocoder(cache, next).Geocode(context.Background(), []string{"Detroit, MI"})
	require.NoError(t, err)
	assert.Equal(t, detroit, got["Detroit, MI"])
}

func TestCachingGeocoderReadFailure(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("connection refused")

	_, err := NewCachingGeocoder(cache, NewMockGeocoder(nil)).Geocode(context.Background(), []string{"x"})
	assert.Error(t, err)

	_, err = (&CachingGeocoder{}).Geocode(context.Background(), []string{"x"})
	assert.Error(t, err)
}
