package repository

import (
	"context"

	"github.com/aroundme-service/internal/domain"
	"github.com/google/uuid"
)

// LandMarkRepository хранит ориентиры городов
type LandMarkRepository interface {
	Create(ctx context.Context, landmark *domain.SavedLandMark) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLandMark, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SavedLandMark, error)
	GetByCityAndCountry(ctx context.Context, city, country string) ([]*domain.SavedLandMark, error)
	List(ctx context.Context) ([]*domain.SavedLandMark, error)
}

// PlacesSuggester предлагает популярные места города (внешний сервис)
type PlacesSuggester interface {
	FindPopularPlaces(ctx context.Context, city, country string) ([]domain.PopularPlace, error)
}
