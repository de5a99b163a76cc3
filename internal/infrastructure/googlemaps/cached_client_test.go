package googlemaps

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aroundme-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	setErr   error
	setCalls int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// countingMaps считает обращения к провайдеру
type countingMaps struct {
	mu             sync.Mutex
	geocodeCalls   int
	directionCalls int
	placesCalls    int
	lastKey        string
	geocodeResp    *domain.GeocodeResponse
	err            error
}

func (f *countingMaps) Geocode(_ context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.geocodeCalls++
	f.lastKey = req.Params.Key
	if f.err != nil {
		return nil, f.err
	}
	return f.geocodeResp, nil
}

func (f *countingMaps) Directions(_ context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.directionCalls++
	f.lastKey = req.Params.Key
	return &domain.DirectionsResponse{
		Status: domain.MapsStatusOK,
		Routes: []domain.Route{{Legs: []domain.RouteLeg{{
			Distance: domain.ValueText{Value: 4024},
			Duration: domain.ValueText{Value: 3313},
		}}}},
	}, nil
}

func (f *countingMaps) PlacesNearby(_ context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placesCalls++
	f.lastKey = req.Params.Key
	return &domain.PlacesNearbyResponse{Status: domain.MapsStatusOK}, nil
}

func geocodeOK() *domain.GeocodeResponse {
	return &domain.GeocodeResponse{
		Status: domain.MapsStatusOK,
		Results: []domain.GeocodeResult{{
			FormattedAddress: "Stańczyka 5, 30-126 Kraków, Poland",
			Geometry:         domain.Geometry{Location: domain.LatLng{Lat: 50.0782512, Lng: 19.8941993}},
		}},
	}
}

func TestCacheKey(t *testing.T) {
	base := domain.GeocodeRequest{Params: domain.GeocodeParams{Address: "Stańczyka 5, Krakow, Poland", Language: "pl"}}

	t.Run("credential does not change key", func(t *testing.T) {
		withKey := base
		withKey.Params.Key = "secret-1"
		otherKey := base
		otherKey.Params.Key = "secret-2"

		k1, err := CacheKey(withKey)
		require.NoError(t, err)
		k2, err := CacheKey(otherKey)
		require.NoError(t, err)
		k3, err := CacheKey(base)
		require.NoError(t, err)

		assert.Equal(t, k1, k2)
		assert.Equal(t, k1, k3)
		assert.NotContains(t, k1, "secret")
	})

	t.Run("timeout does not change key", func(t *testing.T) {
		slow := base
		slow.Timeout = 2000

		k1, _ := CacheKey(base)
		k2, _ := CacheKey(slow)
		assert.Equal(t, k1, k2)
	})

	t.Run("other params change key", func(t *testing.T) {
		other := base
		other.Params.Address = "Stańczyka 6, Krakow, Poland"

		k1, _ := CacheKey(base)
		k2, _ := CacheKey(other)
		assert.NotEqual(t, k1, k2)
	})

	t.Run("only safe characters", func(t *testing.T) {
		key, err := CacheKey(domain.PlacesNearbyRequest{Params: domain.PlacesNearbyParams{
			Location: domain.LatLng{Lat: 50.06, Lng: 19.93},
			Radius:   1000,
			Keyword:  "szkoła podstawowa",
		}})
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9_]+$`, key)
	})

	t.Run("operations do not collide", func(t *testing.T) {
		k1, _ := CacheKey(domain.DirectionsRequest{})
		k2, _ := CacheKey(domain.PlacesNearbyRequest{})
		assert.NotEqual(t, k1, k2)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := CacheKey("geocode")
		assert.Error(t, err)
	})
}

func TestCachedClient_Geocode(t *testing.T) {
	ctx := context.Background()
	req := domain.GeocodeRequest{Params: domain.GeocodeParams{Address: "Stańczyka 5, Krakow, Poland"}}

	t.Run("second call is served from cache", func(t *testing.T) {
		upstream := &countingMaps{geocodeResp: geocodeOK()}
		c := NewCachedClient(upstream, newMemoryCache(), "secret", zap.NewNop())

		first, err := c.Geocode(ctx, req)
		require.NoError(t, err)
		second, err := c.Geocode(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 1, upstream.geocodeCalls)
		assert.Equal(t, "secret", upstream.lastKey)
		assert.Equal(t, first, second)
	})

	t.Run("zero results stay cached", func(t *testing.T) {
		upstream := &countingMaps{geocodeResp: &domain.GeocodeResponse{Status: domain.MapsStatusZeroResults}}
		c := NewCachedClient(upstream, newMemoryCache(), "secret", zap.NewNop())

		for i := 0; i < 3; i++ {
			resp, err := c.Geocode(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, domain.MapsStatusZeroResults, resp.Status)
		}
		assert.Equal(t, 1, upstream.geocodeCalls)
	})

	t.Run("upstream error propagates and is not cached", func(t *testing.T) {
		upstreamErr := &StatusError{Status: "OVER_QUERY_LIMIT"}
		upstream := &countingMaps{err: upstreamErr}
		cache := newMemoryCache()
		c := NewCachedClient(upstream, cache, "secret", zap.NewNop())

		_, err := c.Geocode(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, upstreamErr))
		assert.Equal(t, 0, cache.setCalls)
	})

	t.Run("cache write failure is swallowed", func(t *testing.T) {
		upstream := &countingMaps{geocodeResp: geocodeOK()}
		cache := newMemoryCache()
		cache.setErr = errors.New("disk full")
		c := NewCachedClient(upstream, cache, "secret", zap.NewNop())

		resp, err := c.Geocode(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Stańczyka 5, 30-126 Kraków, Poland", resp.Results[0].FormattedAddress)
		assert.Equal(t, 1, cache.setCalls)
	})

	t.Run("corrupt entry is refetched and overwritten", func(t *testing.T) {
		upstream := &countingMaps{geocodeResp: geocodeOK()}
		cache := newMemoryCache()
		key, err := CacheKey(req)
		require.NoError(t, err)
		cache.data[key] = []byte("{not json")

		c := NewCachedClient(upstream, cache, "secret", zap.NewNop())
		resp, err := c.Geocode(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.MapsStatusOK, resp.Status)
		assert.Equal(t, 1, upstream.geocodeCalls)
		assert.NotEqual(t, "{not json", string(cache.data[key]))
	})
}

func TestCachedClient_DirectionsAndPlaces(t *testing.T) {
	ctx := context.Background()
	upstream := &countingMaps{}
	c := NewCachedClient(upstream, newMemoryCache(), "secret", zap.NewNop())

	dirReq := domain.DirectionsRequest{Params: domain.DirectionsParams{
		Origin:      domain.LatLng{Lat: 50.0782512, Lng: 19.8941993},
		Destination: domain.LatLng{Lat: 50.0619474, Lng: 19.9368564},
		Mode:        domain.TravelModeWalking,
	}}
	for i := 0; i < 2; i++ {
		resp, err := c.Directions(ctx, dirReq)
		require.NoError(t, err)
		leg, ok := resp.FirstLeg()
		require.True(t, ok)
		assert.Equal(t, 3313, leg.Duration.Value)
	}
	assert.Equal(t, 1, upstream.directionCalls)

	transit := dirReq
	transit.Params.Mode = domain.TravelModeTransit
	_, err := c.Directions(ctx, transit)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.directionCalls)

	placesReq := domain.PlacesNearbyRequest{Params: domain.PlacesNearbyParams{Radius: 1000, Keyword: "gym"}}
	_, err = c.PlacesNearby(ctx, placesReq)
	require.NoError(t, err)
	_, err = c.PlacesNearby(ctx, placesReq)
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.placesCalls)
}
