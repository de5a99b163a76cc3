package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/aroundme-service/internal/domain"
)

// MockMapsRepository - мок провайдера карт
type MockMapsRepository struct {
	mock.Mock
}

func (m *MockMapsRepository) Geocode(ctx context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResponse), args.Error(1)
}

func (m *MockMapsRepository) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResponse), args.Error(1)
}

func (m *MockMapsRepository) PlacesNearby(ctx context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacesNearbyResponse), args.Error(1)
}

// MockLocationRepository - мок хранилища локаций
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *domain.SavedLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedLocation), args.Error(1)
}

func (m *MockLocationRepository) GetByName(ctx context.Context, name string) (*domain.SavedLocation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedLocation), args.Error(1)
}

func (m *MockLocationRepository) FindOrCreate(ctx context.Context, location *domain.SavedLocation) (*domain.SavedLocation, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedLocation), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockLandMarkRepository - мок хранилища ориентиров
type MockLandMarkRepository struct {
	mock.Mock
}

func (m *MockLandMarkRepository) Create(ctx context.Context, landmark *domain.SavedLandMark) error {
	args := m.Called(ctx, landmark)
	return args.Error(0)
}

func (m *MockLandMarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLandMark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedLandMark), args.Error(1)
}

func (m *MockLandMarkRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SavedLandMark, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SavedLandMark), args.Error(1)
}

func (m *MockLandMarkRepository) GetByCityAndCountry(ctx context.Context, city, country string) ([]*domain.SavedLandMark, error) {
	args := m.Called(ctx, city, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SavedLandMark), args.Error(1)
}

func (m *MockLandMarkRepository) List(ctx context.Context) ([]*domain.SavedLandMark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SavedLandMark), args.Error(1)
}

// MockPlacesSuggester - мок сервиса популярных мест
type MockPlacesSuggester struct {
	mock.Mock
}

func (m *MockPlacesSuggester) FindPopularPlaces(ctx context.Context, city, country string) ([]domain.PopularPlace, error) {
	args := m.Called(ctx, city, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularPlace), args.Error(1)
}

// MockListingRepository - мок хранилища объявлений
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}
