package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aroundme-service/internal/domain"
	apperrors "github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/validator"
	"github.com/aroundme-service/internal/usecase/dto"
)

func TestValidate(t *testing.T) {
	address := domain.Address{Address: "Stańczyka 5", City: "Krakow", Country: "Poland"}

	t.Run("valid request", func(t *testing.T) {
		err := validator.Validate(dto.NearbyAllRequest{
			Address:          address,
			PointsOfInterest: []domain.PointOfInterest{domain.POIRestaurant, domain.POIPrzedszkole},
			Radius:           1000,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown category is rejected by poi tag", func(t *testing.T) {
		err := validator.Validate(dto.NearbyPoiRequest{
			Address:         address,
			PointOfInterest: "casino",
			Radius:          1000,
		})
		require.Error(t, err)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)
		assert.Equal(t, "poi", appErr.Details["NearbyPoiRequest.PointOfInterest"])
	})

	t.Run("radius above provider limit", func(t *testing.T) {
		err := validator.Validate(dto.NearbyPoiRequest{
			Address:         address,
			PointOfInterest: domain.POIGym,
			Radius:          50001,
		})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "max", appErr.Details["NearbyPoiRequest.Radius"])
	})

	t.Run("landmarks are validated element-wise", func(t *testing.T) {
		err := validator.Validate(dto.LandmarkDistanceRequest{
			Address:   address,
			Landmarks: []domain.LandMark{{Name: "Wawel"}},
		})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "required", appErr.Details["LandmarkDistanceRequest.Landmarks[0].Address"])
	})
}
