package dto

import (
	"github.com/aroundme-service/internal/domain"
	"github.com/google/uuid"
)

// GeocodeRequest - геокодирование строки адреса
type GeocodeRequest struct {
	Address string `json:"address" validate:"required,min=2"`
}

// NearbyPoiRequest - поиск мест одной категории
type NearbyPoiRequest struct {
	Address         domain.Address         `json:"address" validate:"required"`
	PointOfInterest domain.PointOfInterest `json:"pointOfInterest" validate:"required,poi"`
	Radius          int                    `json:"radius" validate:"required,min=1,max=50000"` // meters
	Limit           int                    `json:"limit" validate:"omitempty,min=1,max=60"`
}

// NearbyAllRequest - поиск мест по нескольким категориям
type NearbyAllRequest struct {
	Address          domain.Address           `json:"address" validate:"required"`
	PointsOfInterest []domain.PointOfInterest `json:"pointsOfInterest" validate:"required,min=1,max=40,dive,poi"`
	Radius           int                      `json:"radius" validate:"required,min=1,max=50000"`
	Limit            int                      `json:"limit" validate:"omitempty,min=1,max=60"`
}

// LandmarkDistanceRequest - расстояния до ориентиров
type LandmarkDistanceRequest struct {
	Address   domain.Address    `json:"address" validate:"required"`
	Landmarks []domain.LandMark `json:"landmarks" validate:"required,min=1,max=50,dive"`
}

// ScoreRequest - оценка по уже сгруппированным местам; пустой config - таблица по умолчанию
type ScoreRequest struct {
	GroupedPOIs domain.GroupedPOIs   `json:"groupedPois" validate:"required"`
	Config      []domain.ScoreConfig `json:"config,omitempty" validate:"omitempty,dive"`
}

// CreateLocationRequest - адрес в формате "улица номер, город"
type CreateLocationRequest struct {
	Address string `json:"address" validate:"required"`
}

// CreateListingRequest - новое объявление
type CreateListingRequest struct {
	Name             string                   `json:"name,omitempty"`
	Address          string                   `json:"address" validate:"required"`
	PointsOfInterest []domain.PointOfInterest `json:"pois" validate:"required,min=1,dive,poi"`
	LandmarkIDs      []uuid.UUID              `json:"landmarks,omitempty"`
	// SuggestLandmarks - дополнить ориентиры города популярными местами
	SuggestLandmarks bool `json:"suggestLandmarks,omitempty"`
}
