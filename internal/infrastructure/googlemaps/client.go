package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	geocodePath      = "/maps/api/geocode/json"
	directionsPath   = "/maps/api/directions/json"
	placesNearbyPath = "/maps/api/place/nearbysearch/json"
)

// StatusError - провайдер ответил 200, но со статусом отличным от OK/ZERO_RESULTS
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("google maps API returned status: %s", e.Status)
	}
	return fmt.Sprintf("google maps API returned status: %s: %s", e.Status, e.Message)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент для Google Maps Web Services.
// Ключ API подставляется кешируемым слоем через параметры запроса.
func NewClient(cfg *config.MapsConfig, logger *zap.Logger) repository.MapsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Geocode возвращает результаты геокодирования строки адреса
func (c *client) Geocode(ctx context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error) {
	q := url.Values{}
	q.Set("address", req.Params.Address)
	setOptional(q, "language", req.Params.Language)
	setOptional(q, "key", req.Params.Key)

	var resp domain.GeocodeResponse
	if err := c.get(ctx, geocodePath, q, req.Timeout, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		c.logger.Error("Geocode returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("address", req.Params.Address))
		return nil, err
	}

	c.logger.Debug("Geocode call successful",
		zap.String("address", req.Params.Address),
		zap.Int("results", len(resp.Results)))

	return &resp, nil
}

// Directions возвращает маршруты между двумя точками
func (c *client) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	p := req.Params
	q := url.Values{}
	q.Set("origin", formatLatLng(p.Origin))
	q.Set("destination", formatLatLng(p.Destination))
	setOptional(q, "mode", string(p.Mode))
	q.Set("alternatives", strconv.FormatBool(p.Alternatives))
	setOptional(q, "units", p.Units)
	setOptional(q, "language", p.Language)
	setOptional(q, "key", p.Key)

	var resp domain.DirectionsResponse
	if err := c.get(ctx, directionsPath, q, req.Timeout, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		c.logger.Error("Directions returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("mode", string(p.Mode)))
		return nil, err
	}

	return &resp, nil
}

// PlacesNearby ищет места по ключевому слову в радиусе
func (c *client) PlacesNearby(ctx context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error) {
	p := req.Params
	q := url.Values{}
	q.Set("location", formatLatLng(p.Location))
	q.Set("radius", strconv.Itoa(p.Radius))
	q.Set("keyword", p.Keyword)
	setOptional(q, "language", p.Language)
	setOptional(q, "key", p.Key)

	var resp domain.PlacesNearbyResponse
	if err := c.get(ctx, placesNearbyPath, q, req.Timeout, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		c.logger.Error("Places nearby returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("keyword", p.Keyword))
		return nil, err
	}

	c.logger.Debug("Places nearby call successful",
		zap.String("keyword", p.Keyword),
		zap.Int("results", len(resp.Results)))

	return &resp, nil
}

func (c *client) get(ctx context.Context, path string, q url.Values, timeout time.Duration, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// ключ не должен попасть в лог
	c.logger.Debug("Calling Google Maps API", zap.String("path", path))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google Maps API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("google maps API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func checkStatus(status, message string) error {
	switch status {
	case domain.MapsStatusOK, domain.MapsStatusZeroResults:
		return nil
	default:
		return &StatusError{Status: status, Message: message}
	}
}

func formatLatLng(l domain.LatLng) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

func setOptional(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
