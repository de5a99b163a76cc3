package repository

import (
	"context"

	"github.com/aroundme-service/internal/domain"
)

// MapsRepository определяет операции провайдера карт
type MapsRepository interface {
	// Geocode ищет координаты и нормализованный адрес по строке
	Geocode(ctx context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error)

	// Directions строит маршрут между двумя точками для заданного режима
	Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error)

	// PlacesNearby ищет места по ключевому слову в радиусе от точки
	PlacesNearby(ctx context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error)
}
