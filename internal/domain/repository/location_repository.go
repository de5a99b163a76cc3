package repository

import (
	"context"

	"github.com/aroundme-service/internal/domain"
	"github.com/google/uuid"
)

// LocationRepository хранит геокодированные адреса
type LocationRepository interface {
	Create(ctx context.Context, location *domain.SavedLocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLocation, error)
	GetByName(ctx context.Context, name string) (*domain.SavedLocation, error)

	// FindOrCreate возвращает существующую локацию с тем же именем или создаёт новую
	FindOrCreate(ctx context.Context, location *domain.SavedLocation) (*domain.SavedLocation, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}
