package usecase

import (
	"context"
	"strings"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultReportRadius = 1000 // meters

type LocationUseCase struct {
	aroundMe     *AroundMeUseCase
	locationRepo repository.LocationRepository
	landmarkRepo repository.LandMarkRepository
	logger       *zap.Logger
	radius       int
}

func NewLocationUseCase(
	aroundMe *AroundMeUseCase,
	locationRepo repository.LocationRepository,
	landmarkRepo repository.LandMarkRepository,
	radius int,
	logger *zap.Logger,
) *LocationUseCase {
	if radius <= 0 {
		radius = defaultReportRadius
	}
	return &LocationUseCase{
		aroundMe:     aroundMe,
		locationRepo: locationRepo,
		landmarkRepo: landmarkRepo,
		logger:       logger,
		radius:       radius,
	}
}

// ValidateAddress - адрес должен содержать хотя бы улицу и город через запятую
func ValidateAddress(address string) error {
	if len(strings.TrimSpace(address)) == 0 || len(strings.Split(address, ",")) < 2 {
		return errors.ErrInvalidAddress
	}
	return nil
}

// CreateLocation геокодирует адрес и сохраняет локацию (повторный адрес не дублируется)
func (uc *LocationUseCase) CreateLocation(ctx context.Context, address string) (*domain.SavedLocation, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	geo, err := uc.aroundMe.GeoCode(ctx, address)
	if err != nil {
		return nil, err
	}

	return uc.saveGeocoded(ctx, geo)
}

func (uc *LocationUseCase) saveGeocoded(ctx context.Context, geo *domain.LocationAddress) (*domain.SavedLocation, error) {
	location, err := uc.locationRepo.FindOrCreate(ctx, &domain.SavedLocation{
		Name:      geo.FormattedAddress,
		City:      geo.City,
		Country:   geo.Country,
		Latitude:  geo.LatLng[0],
		Longitude: geo.LatLng[1],
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Location saved",
		zap.String("id", location.ID.String()),
		zap.String("name", location.Name))

	return location, nil
}

func (uc *LocationUseCase) GetLocation(ctx context.Context, id uuid.UUID) (*domain.SavedLocation, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

func (uc *LocationUseCase) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return uc.locationRepo.Delete(ctx, id)
}

// GetLocationReport строит отчёт по локации: места поблизости, ориентиры города и оценку.
// Пустой список категорий означает категории по умолчанию.
func (uc *LocationUseCase) GetLocationReport(
	ctx context.Context,
	id uuid.UUID,
	pois []domain.PointOfInterest,
) (*domain.Report, error) {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var landmarks []*domain.SavedLandMark
	if address := location.Address(); address.City != "" && address.Country != "" {
		landmarks, err = uc.landmarkRepo.GetByCityAndCountry(ctx, address.City, address.Country)
		if err != nil {
			return nil, err
		}
	}

	if len(pois) == 0 {
		pois = domain.DefaultReportPOIs
	}

	return buildReport(ctx, uc.aroundMe, location, pois, toLandMarks(landmarks), uc.radius)
}

// buildReport - общий расчёт отчёта для локации и объявления
func buildReport(
	ctx context.Context,
	aroundMe *AroundMeUseCase,
	location *domain.SavedLocation,
	pois []domain.PointOfInterest,
	landmarks []domain.LandMark,
	radius int,
) (*domain.Report, error) {
	address := location.Address()

	nearby, err := aroundMe.FindAllNearbyPois(ctx, address, pois, radius, 0)
	if err != nil {
		return nil, err
	}

	distances := []domain.DistanceFromLandMark{}
	if len(landmarks) > 0 {
		distances, err = aroundMe.DistanceFromLandmarks(ctx, address, landmarks)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Report{
		Location:  location,
		POIs:      nearby,
		Landmarks: distances,
		Score:     CalculateScore(nearby.Groups, DefaultScoreConfig),
	}, nil
}
