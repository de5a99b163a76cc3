package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"go.uber.org/zap"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9]`)

type cachedClient struct {
	upstream repository.MapsRepository
	cache    repository.ResponseCache
	apiKey   string
	logger   *zap.Logger
}

// NewCachedClient оборачивает провайдера кешем ответов (cache-aside).
// Ключ API подставляется только в исходящий запрос и не попадает в ключ кеша.
func NewCachedClient(
	upstream repository.MapsRepository,
	cache repository.ResponseCache,
	apiKey string,
	logger *zap.Logger,
) repository.MapsRepository {
	return &cachedClient{
		upstream: upstream,
		cache:    cache,
		apiKey:   apiKey,
		logger:   logger,
	}
}

// CacheKey строит нормализованный ключ кеша для запроса к провайдеру.
// Поле key удаляется, все символы кроме [A-Za-z0-9] заменяются на '_'.
func CacheKey(req any) (string, error) {
	var op string
	switch r := req.(type) {
	case domain.GeocodeRequest:
		r.Params.Key = ""
		op, req = "geocode", r
	case domain.DirectionsRequest:
		r.Params.Key = ""
		op, req = "directions", r
	case domain.PlacesNearbyRequest:
		r.Params.Key = ""
		op, req = "placesNearby", r
	default:
		return "", fmt.Errorf("unsupported request type %T", req)
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	return op + "_" + unsafeKeyChars.ReplaceAllString(string(raw), "_"), nil
}

func (c *cachedClient) Geocode(ctx context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error) {
	return readThrough(ctx, c, req, func(ctx context.Context) (*domain.GeocodeResponse, error) {
		req.Params.Key = c.apiKey
		return c.upstream.Geocode(ctx, req)
	})
}

func (c *cachedClient) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	return readThrough(ctx, c, req, func(ctx context.Context) (*domain.DirectionsResponse, error) {
		req.Params.Key = c.apiKey
		return c.upstream.Directions(ctx, req)
	})
}

func (c *cachedClient) PlacesNearby(ctx context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error) {
	return readThrough(ctx, c, req, func(ctx context.Context) (*domain.PlacesNearbyResponse, error) {
		req.Params.Key = c.apiKey
		return c.upstream.PlacesNearby(ctx, req)
	})
}

func readThrough[T any](
	ctx context.Context,
	c *cachedClient,
	req any,
	fetch func(ctx context.Context) (*T, error),
) (*T, error) {
	key, err := CacheKey(req)
	if err != nil {
		return nil, err
	}

	cached, found, err := c.cache.Get(ctx, key)
	if err != nil {
		// недоступный кеш не должен ломать запрос
		c.logger.Warn("Failed to read from cache", zap.String("key", key), zap.Error(err))
	}
	if found {
		var resp T
		if err := json.Unmarshal(cached, &resp); err == nil {
			c.logger.Debug("Cache hit", zap.String("key", key))
			return &resp, nil
		}
		c.logger.Warn("Corrupt cache entry, refetching", zap.String("key", key))
	}

	c.logger.Debug("Cache miss", zap.String("key", key))

	resp, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error("Failed to marshal response for cache", zap.String("key", key), zap.Error(err))
		return resp, nil
	}

	if err := c.cache.Set(ctx, key, payload); err != nil {
		c.logger.Error("Failed to write to cache", zap.String("key", key), zap.Error(err))
	}

	return resp, nil
}
