package usecase

import (
	"context"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListingUseCase struct {
	aroundMe     *AroundMeUseCase
	locations    *LocationUseCase
	landmarks    *LandmarkUseCase
	listingRepo  repository.ListingRepository
	locationRepo repository.LocationRepository
	landmarkRepo repository.LandMarkRepository
	logger       *zap.Logger
	radius       int
}

func NewListingUseCase(
	aroundMe *AroundMeUseCase,
	locations *LocationUseCase,
	landmarks *LandmarkUseCase,
	listingRepo repository.ListingRepository,
	locationRepo repository.LocationRepository,
	landmarkRepo repository.LandMarkRepository,
	radius int,
	logger *zap.Logger,
) *ListingUseCase {
	if radius <= 0 {
		radius = defaultReportRadius
	}
	return &ListingUseCase{
		aroundMe:     aroundMe,
		locations:    locations,
		landmarks:    landmarks,
		listingRepo:  listingRepo,
		locationRepo: locationRepo,
		landmarkRepo: landmarkRepo,
		logger:       logger,
		radius:       radius,
	}
}

// CreateListing геокодирует адрес, сохраняет локацию и объявление.
// Без явно выбранных ориентиров к объявлению привязываются ориентиры города.
func (uc *ListingUseCase) CreateListing(ctx context.Context, req dto.CreateListingRequest) (*dto.CreateListingResponse, error) {
	if err := ValidateAddress(req.Address); err != nil {
		return nil, err
	}

	geo, err := uc.aroundMe.GeoCode(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	location, err := uc.locations.saveGeocoded(ctx, geo)
	if err != nil {
		return nil, err
	}

	var landmarks []*domain.SavedLandMark
	address := location.Address()
	switch {
	case len(req.LandmarkIDs) > 0:
		landmarks, err = uc.landmarkRepo.GetByIDs(ctx, req.LandmarkIDs)
	case address.City != "" && address.Country != "":
		landmarks, err = uc.landmarks.FindOrCreateLandmarks(ctx, address.City, address.Country, req.SuggestLandmarks)
	default:
		uc.logger.Warn("City or country unknown, listing created without landmarks",
			zap.String("location", location.Name))
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(landmarks))
	for i, l := range landmarks {
		ids[i] = l.ID
	}

	name := req.Name
	if name == "" {
		name = location.Name
	}

	listing := &domain.Listing{
		Name:        name,
		LocationID:  location.ID,
		POIs:        req.PointsOfInterest,
		LandmarkIDs: ids,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	uc.logger.Info("Listing created",
		zap.String("id", listing.ID.String()),
		zap.String("location_id", location.ID.String()),
		zap.Int("pois", len(listing.POIs)),
		zap.Int("landmarks", len(ids)))

	return &dto.CreateListingResponse{
		Listing:   listing,
		Location:  location,
		Landmarks: landmarks,
	}, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	return uc.listingRepo.List(ctx)
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id uuid.UUID) error {
	return uc.listingRepo.Delete(ctx, id)
}

// GetListingReport строит отчёт по категориям и ориентирам объявления
func (uc *ListingUseCase) GetListingReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location, err := uc.locationRepo.GetByID(ctx, listing.LocationID)
	if err != nil {
		return nil, err
	}

	var landmarks []*domain.SavedLandMark
	if len(listing.LandmarkIDs) > 0 {
		landmarks, err = uc.landmarkRepo.GetByIDs(ctx, listing.LandmarkIDs)
		if err != nil {
			return nil, err
		}
	}

	report, err := buildReport(ctx, uc.aroundMe, location, listing.POIs, toLandMarks(landmarks), uc.radius)
	if err != nil {
		return nil, err
	}
	report.Listing = listing

	return report, nil
}
