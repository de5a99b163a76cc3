package dto

import "github.com/aroundme-service/internal/domain"

// HealthResponse - ответ health check
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// PoiCategoriesResponse - поддерживаемые категории
type PoiCategoriesResponse struct {
	Categories []domain.PointOfInterest `json:"categories"`
	Default    []domain.PointOfInterest `json:"default"`
}

// NearbyPoiResponse - места одной категории
type NearbyPoiResponse struct {
	PointOfInterest domain.PointOfInterest        `json:"pointOfInterest"`
	Places          []domain.DistanceFromLocation `json:"places"`
}

// LandmarkDistanceResponse - расстояния до ориентиров
type LandmarkDistanceResponse struct {
	Landmarks []domain.DistanceFromLandMark `json:"landMarksDistance"`
}

// CreateListingResponse - созданное объявление и ориентиры, которые к нему привязаны
type CreateListingResponse struct {
	Listing   *domain.Listing         `json:"listing"`
	Location  *domain.SavedLocation   `json:"location"`
	Landmarks []*domain.SavedLandMark `json:"landmarks"`
}
