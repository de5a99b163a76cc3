package repository

import (
	"context"

	"github.com/aroundme-service/internal/domain"
	"github.com/google/uuid"
)

// ListingRepository хранит объявления
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}
