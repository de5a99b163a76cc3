package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/usecase"
	"github.com/aroundme-service/internal/usecase/dto"
)

type listingFixture struct {
	maps      *MockMapsRepository
	locations *MockLocationRepository
	landmarks *MockLandMarkRepository
	suggester *MockPlacesSuggester
	listings  *MockListingRepository
	uc        *usecase.ListingUseCase
}

func newListingFixture() *listingFixture {
	f := &listingFixture{
		maps:      &MockMapsRepository{},
		locations: &MockLocationRepository{},
		landmarks: &MockLandMarkRepository{},
		suggester: &MockPlacesSuggester{},
		listings:  &MockListingRepository{},
	}
	logger := zap.NewNop()
	aroundMe := usecase.NewAroundMeUseCase(f.maps, testMapsConfig(), logger)
	locationUC := usecase.NewLocationUseCase(aroundMe, f.locations, f.landmarks, 0, logger)
	landmarkUC := usecase.NewLandmarkUseCase(aroundMe, f.landmarks, f.suggester, logger)
	f.uc = usecase.NewListingUseCase(aroundMe, locationUC, landmarkUC, f.listings, f.locations, f.landmarks, 0, logger)
	return f
}

func TestListingUseCase_CreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit landmarks are attached", func(t *testing.T) {
		f := newListingFixture()
		location := savedStanczyka()
		wawel := &domain.SavedLandMark{ID: uuid.New(), Name: "Wawel"}

		f.maps.On("Geocode", mock.Anything, geocodeFor(stanczykaAddress)).Return(loadGeocodeFixture(t), nil)
		f.locations.On("FindOrCreate", mock.Anything, mock.Anything).Return(location, nil)
		f.landmarks.On("GetByIDs", mock.Anything, []uuid.UUID{wawel.ID}).Return([]*domain.SavedLandMark{wawel}, nil)
		f.listings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Listing")).Return(nil)

		resp, err := f.uc.CreateListing(ctx, dto.CreateListingRequest{
			Address:          stanczykaAddress,
			PointsOfInterest: []domain.PointOfInterest{domain.POIGym, domain.POITramStop},
			LandmarkIDs:      []uuid.UUID{wawel.ID},
		})
		require.NoError(t, err)

		assert.Equal(t, location.Name, resp.Listing.Name)
		assert.Equal(t, location.ID, resp.Listing.LocationID)
		assert.Equal(t, []uuid.UUID{wawel.ID}, resp.Listing.LandmarkIDs)
		assert.Equal(t, []domain.PointOfInterest{domain.POIGym, domain.POITramStop}, resp.Listing.POIs)
		f.landmarks.AssertNotCalled(t, "GetByCityAndCountry", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("city landmarks are attached by default", func(t *testing.T) {
		f := newListingFixture()
		location := savedStanczyka()
		stored := []*domain.SavedLandMark{{ID: uuid.New(), Name: "Wawel"}, {ID: uuid.New(), Name: "Rynek"}}

		f.maps.On("Geocode", mock.Anything, mock.Anything).Return(loadGeocodeFixture(t), nil)
		f.locations.On("FindOrCreate", mock.Anything, mock.Anything).Return(location, nil)
		f.landmarks.On("GetByCityAndCountry", mock.Anything, "Kraków", "Poland").Return(stored, nil)
		f.listings.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.uc.CreateListing(ctx, dto.CreateListingRequest{
			Name:             "Mieszkanie Bronowice",
			Address:          stanczykaAddress,
			PointsOfInterest: []domain.PointOfInterest{domain.POIGym},
		})
		require.NoError(t, err)

		assert.Equal(t, "Mieszkanie Bronowice", resp.Listing.Name)
		assert.Equal(t, []uuid.UUID{stored[0].ID, stored[1].ID}, resp.Listing.LandmarkIDs)
		assert.Len(t, resp.Landmarks, 2)
	})

	t.Run("unknown city does not look up landmarks", func(t *testing.T) {
		f := newListingFixture()
		location := &domain.SavedLocation{
			ID:      uuid.New(),
			Name:    "Pustynia Błędowska",
			City:    domain.UnknownAddressPart,
			Country: domain.UnknownAddressPart,
		}

		f.maps.On("Geocode", mock.Anything, mock.Anything).Return(geocodeAt(stanczyka), nil)
		f.locations.On("FindOrCreate", mock.Anything, mock.Anything).Return(location, nil)
		f.listings.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.uc.CreateListing(ctx, dto.CreateListingRequest{
			Address:          "Pustynia Błędowska, Klucze",
			PointsOfInterest: []domain.PointOfInterest{domain.POIPark},
		})
		require.NoError(t, err)

		assert.Empty(t, resp.Listing.LandmarkIDs)
		f.landmarks.AssertNotCalled(t, "GetByCityAndCountry", mock.Anything, mock.Anything, mock.Anything)
		f.suggester.AssertNotCalled(t, "FindPopularPlaces", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid address", func(t *testing.T) {
		f := newListingFixture()
		_, err := f.uc.CreateListing(ctx, dto.CreateListingRequest{
			Address:          "Stańczyka",
			PointsOfInterest: []domain.PointOfInterest{domain.POIGym},
		})
		assert.Equal(t, errors.ErrInvalidAddress, err)
		f.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListingUseCase_GetListingReport(t *testing.T) {
	ctx := context.Background()
	f := newListingFixture()
	location := savedStanczyka()
	wawel := &domain.SavedLandMark{ID: uuid.New(), Name: "Wawel", Latitude: rynek.Lat, Longitude: rynek.Lng}
	listing := &domain.Listing{
		ID:          uuid.New(),
		Name:        "Mieszkanie",
		LocationID:  location.ID,
		POIs:        []domain.PointOfInterest{domain.POITramStop},
		LandmarkIDs: []uuid.UUID{wawel.ID},
	}

	f.listings.On("GetByID", mock.Anything, listing.ID).Return(listing, nil)
	f.locations.On("GetByID", mock.Anything, location.ID).Return(location, nil)
	f.landmarks.On("GetByIDs", mock.Anything, listing.LandmarkIDs).Return([]*domain.SavedLandMark{wawel}, nil)
	f.maps.On("Geocode", mock.Anything, mock.Anything).Return(loadGeocodeFixture(t), nil)
	f.maps.On("PlacesNearby", mock.Anything, placesFor("tram stop")).Return(&domain.PlacesNearbyResponse{
		Status: domain.MapsStatusOK,
		Results: []domain.PlaceResult{
			place("Bronowice Małe", &rynek),
			place("Rondo Ofiar Katynia", &rynek),
		},
	}, nil)
	f.maps.On("Directions", mock.Anything, directionsTo(rynek, domain.TravelModeWalking)).Return(leg(400, 300), nil)
	f.maps.On("Directions", mock.Anything, directionsTo(rynek, domain.TravelModeTransit)).Return(leg(900, 420), nil)

	report, err := f.uc.GetListingReport(ctx, listing.ID)
	require.NoError(t, err)

	assert.Equal(t, listing, report.Listing)
	assert.Equal(t, location, report.Location)
	require.Len(t, report.POIs.Groups[domain.POITramStop], 2)
	require.Len(t, report.Landmarks, 1)
	assert.Equal(t, 300, report.Landmarks[0].WalkingDuration)
	assert.Equal(t, 7.5, report.Score.Score)
	f.landmarks.AssertNotCalled(t, "GetByCityAndCountry", mock.Anything, mock.Anything, mock.Anything)
}
