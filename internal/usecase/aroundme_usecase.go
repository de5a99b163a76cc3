package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	unknownWalkingDuration = 60 * 60 // секунды; только для сортировки
	cityComponentType      = "administrative_area_level_2"
	countryComponentType   = "country"
)

// AroundMeUseCase - геокодирование адресов, поиск мест поблизости и расстояния до ориентиров
type AroundMeUseCase struct {
	maps              repository.MapsRepository
	logger            *zap.Logger
	language          string
	geocodeTimeout    time.Duration
	directionsTimeout time.Duration
	placesTimeout     time.Duration
	filterLowQuality  bool
}

func NewAroundMeUseCase(
	maps repository.MapsRepository,
	cfg *config.MapsConfig,
	logger *zap.Logger,
) *AroundMeUseCase {
	return &AroundMeUseCase{
		maps:              newLimitedMaps(maps, cfg.MaxConcurrency),
		logger:            logger,
		language:          cfg.Language,
		geocodeTimeout:    cfg.GeocodeTimeout,
		directionsTimeout: cfg.DirectionsTimeout,
		placesTimeout:     cfg.PlacesTimeout,
		filterLowQuality:  cfg.FilterLowQuality,
	}
}

// GeoCode геокодирует строку адреса.
// Отсутствие результатов возвращается как *domain.NoLocationsFoundError.
func (uc *AroundMeUseCase) GeoCode(ctx context.Context, address string) (*domain.LocationAddress, error) {
	result, err := uc.geocodeFirst(ctx, address)
	if err != nil {
		return nil, err
	}

	city := domain.UnknownAddressPart
	if c, ok := findComponent(result.AddressComponents, cityComponentType); ok {
		city = c.LongName
	}
	country := domain.UnknownAddressPart
	if c, ok := findComponent(result.AddressComponents, countryComponentType); ok && c.LongName != "" {
		country = c.LongName
	}

	loc := result.Geometry.Location
	return &domain.LocationAddress{
		InputAddress:      address,
		FormattedAddress:  result.FormattedAddress,
		LatLng:            [2]float64{loc.Lat, loc.Lng},
		City:              city,
		Country:           country,
		AddressComponents: result.AddressComponents,
	}, nil
}

// FindLocation возвращает только координаты структурированного адреса
func (uc *AroundMeUseCase) FindLocation(ctx context.Context, address domain.Address) (domain.Location, error) {
	result, err := uc.geocodeFirst(ctx, address.Query())
	if err != nil {
		return domain.Location{}, err
	}
	return result.Geometry.Location.ToLocation(), nil
}

func (uc *AroundMeUseCase) geocodeFirst(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	resp, err := uc.maps.Geocode(ctx, domain.GeocodeRequest{
		Params:  domain.GeocodeParams{Address: address},
		Timeout: uc.geocodeTimeout,
	})
	if err != nil {
		uc.logger.Error("Failed to geocode address", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("failed to geocode %q: %w", address, err)
	}

	if resp.Status == domain.MapsStatusZeroResults || len(resp.Results) == 0 {
		uc.logger.Debug("No locations found", zap.String("address", address))
		return nil, domain.NewNoLocationsFound(address)
	}

	return &resp.Results[0], nil
}

// FindNearbyPoi ищет места одной категории в радиусе от адреса.
// limit > 0 обрезает выдачу провайдера до первых limit мест.
func (uc *AroundMeUseCase) FindNearbyPoi(
	ctx context.Context,
	address domain.Address,
	poi domain.PointOfInterest,
	radius int,
	limit int,
) ([]domain.DistanceFromLocation, error) {
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	loc, err := uc.FindLocation(ctx, address)
	if err != nil {
		return nil, err
	}
	return uc.nearbyFrom(ctx, loc, poi, radius, limit)
}

// FindAllNearbyPois ищет места по всем категориям параллельно, группирует по категории
// и сортирует каждую группу по времени пешком. Ошибка категории не валит остальные.
func (uc *AroundMeUseCase) FindAllNearbyPois(
	ctx context.Context,
	address domain.Address,
	pois []domain.PointOfInterest,
	radius int,
	limit int,
) (*domain.NearbyPOIs, error) {
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	loc, err := uc.FindLocation(ctx, address)
	if err != nil {
		return nil, err
	}

	categories := uniquePOIs(pois)

	type categoryResult struct {
		places []domain.DistanceFromLocation
		err    error
	}
	results := make([]categoryResult, len(categories))

	forEach(len(categories), func(i int) {
		places, err := uc.nearbyFrom(ctx, loc, categories[i], radius, limit)
		results[i] = categoryResult{places: places, err: err}
	})

	nearby := &domain.NearbyPOIs{Groups: make(domain.GroupedPOIs)}
	for i, res := range results {
		if res.err != nil {
			uc.logger.Warn("Nearby search failed for category",
				zap.String("poi", string(categories[i])),
				zap.Error(res.err))
			nearby.Failures = append(nearby.Failures, domain.CategoryFailure{
				PointOfInterest: categories[i],
				Error:           res.err.Error(),
			})
			continue
		}
		for _, place := range res.places {
			nearby.Groups[place.PointOfInterest] = append(nearby.Groups[place.PointOfInterest], place)
		}
	}

	for _, group := range nearby.Groups {
		SortByWalkingDuration(group)
	}

	return nearby, nil
}

// SortByWalkingDuration сортирует места по времени пешком; без длительности - как час
func SortByWalkingDuration(places []domain.DistanceFromLocation) {
	duration := func(p domain.DistanceFromLocation) int {
		if p.WalkingDuration == nil || *p.WalkingDuration == 0 {
			return unknownWalkingDuration
		}
		return *p.WalkingDuration
	}
	sort.SliceStable(places, func(i, j int) bool {
		return duration(places[i]) < duration(places[j])
	})
}

func (uc *AroundMeUseCase) nearbyFrom(
	ctx context.Context,
	loc domain.Location,
	poi domain.PointOfInterest,
	radius int,
	limit int,
) ([]domain.DistanceFromLocation, error) {
	resp, err := uc.maps.PlacesNearby(ctx, domain.PlacesNearbyRequest{
		Params: domain.PlacesNearbyParams{
			Location: domain.LatLngFrom(loc),
			Radius:   radius,
			Keyword:  string(poi),
		},
		Timeout: uc.placesTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby %q: %w", poi, err)
	}

	hits := resp.Results
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	if uc.filterLowQuality {
		hits = filterLowQuality(hits)
	}

	reference := []float64{loc.Latitude, loc.Longitude}
	places := make([]domain.DistanceFromLocation, len(hits))

	forEach(len(hits), func(i int) {
		hit := hits[i]
		place := domain.DistanceFromLocation{
			PointOfInterest:      poi,
			Name:                 hit.Name,
			Address:              hit.Vicinity,
			ReferenceGeoLocation: reference,
			Status:               hit.BusinessStatus,
			Rating:               hit.Rating,
		}

		// без geometry место остаётся в выдаче без расстояний
		if hit.Geometry != nil {
			target := hit.Geometry.Location.ToLocation()
			distance := utils.DistanceInMeters(loc.Latitude, loc.Longitude, target.Latitude, target.Longitude)
			place.GeoLocation = []float64{target.Latitude, target.Longitude}
			place.Distance = &distance

			leg, err := uc.directions(ctx, loc, target, domain.TravelModeWalking)
			if err != nil {
				uc.logger.Warn("Failed to get walking directions",
					zap.String("poi", string(poi)),
					zap.String("name", hit.Name),
					zap.Error(err))
				place.Error = err.Error()
			} else {
				walkingDistance := leg.Distance.Value
				walkingDuration := leg.Duration.Value
				place.WalkingDistance = &walkingDistance
				place.WalkingDuration = &walkingDuration
				place.WalkingDurationInMinutes = utils.ToMinutes(&walkingDuration)
			}
		}

		places[i] = place
	})

	return places, nil
}

// DistanceFromLandmarks считает расстояния от адреса до ориентиров пешком и транспортом.
// Ошибка ориентира попадает в его запись; ошибкой всей операции считается
// только невозможность найти сам адрес.
func (uc *AroundMeUseCase) DistanceFromLandmarks(
	ctx context.Context,
	address domain.Address,
	landmarks []domain.LandMark,
) ([]domain.DistanceFromLandMark, error) {
	loc, err := uc.FindLocation(ctx, address)
	if err != nil {
		return nil, err
	}

	results := make([]domain.DistanceFromLandMark, len(landmarks))

	forEach(len(landmarks), func(i int) {
		result, err := uc.distanceFromLandmark(ctx, loc, address, landmarks[i])
		if err != nil {
			uc.logger.Warn("Failed to calculate landmark distance",
				zap.String("landmark", landmarks[i].Name),
				zap.Error(err))
			result = domain.DistanceFromLandMark{LandMark: landmarks[i], Error: err.Error()}
		}
		results[i] = result
	})

	return results, nil
}

func (uc *AroundMeUseCase) distanceFromLandmark(
	ctx context.Context,
	from domain.Location,
	address domain.Address,
	landmark domain.LandMark,
) (domain.DistanceFromLandMark, error) {
	var to domain.Location
	if landmark.Location != nil {
		if !utils.ValidateCoordinates(landmark.Location.Latitude, landmark.Location.Longitude) {
			return domain.DistanceFromLandMark{}, fmt.Errorf("invalid landmark coordinates %v,%v",
				landmark.Location.Latitude, landmark.Location.Longitude)
		}
		to = *landmark.Location
	} else {
		// адрес ориентира ищется в городе опорного адреса
		loc, err := uc.FindLocation(ctx, domain.Address{
			Address: landmark.Address,
			City:    address.City,
			Country: address.Country,
		})
		if err != nil {
			return domain.DistanceFromLandMark{}, err
		}
		to = loc
	}

	walking, err := uc.directions(ctx, from, to, domain.TravelModeWalking)
	if err != nil {
		return domain.DistanceFromLandMark{}, err
	}
	transit, err := uc.directions(ctx, from, to, domain.TravelModeTransit)
	if err != nil {
		return domain.DistanceFromLandMark{}, err
	}

	return domain.DistanceFromLandMark{
		LandMark:                 landmark,
		Distance:                 utils.DistanceInMeters(from.Latitude, from.Longitude, to.Latitude, to.Longitude),
		WalkingDistance:          walking.Distance.Value,
		WalkingDuration:          walking.Duration.Value,
		WalkingDurationInMinutes: utils.ToMinutes(&walking.Duration.Value),
		PublicTransportDistance:  transit.Distance.Value,
		PublicTransportDuration:  transit.Duration.Value,
		PublicDurationInMinutes:  utils.ToMinutes(&transit.Duration.Value),
	}, nil
}

func (uc *AroundMeUseCase) directions(
	ctx context.Context,
	from, to domain.Location,
	mode domain.TravelMode,
) (domain.RouteLeg, error) {
	resp, err := uc.maps.Directions(ctx, domain.DirectionsRequest{
		Params: domain.DirectionsParams{
			Origin:       domain.LatLngFrom(from),
			Destination:  domain.LatLngFrom(to),
			Mode:         mode,
			Alternatives: false,
			Units:        "metric",
			Language:     uc.language,
		},
		Timeout: uc.directionsTimeout,
	})
	if err != nil {
		return domain.RouteLeg{}, fmt.Errorf("failed to get %s directions: %w", mode, err)
	}

	leg, ok := resp.FirstLeg()
	if !ok {
		return domain.RouteLeg{}, fmt.Errorf("%s directions: %w", mode, domain.ErrNoRoute)
	}
	return leg, nil
}

// filterLowQuality отбрасывает места без рейтинга и места, у которых vicinity - только город
func filterLowQuality(hits []domain.PlaceResult) []domain.PlaceResult {
	filtered := make([]domain.PlaceResult, 0, len(hits))
	for _, h := range hits {
		if !strings.Contains(h.Vicinity, ",") {
			continue
		}
		if h.Rating == nil || *h.Rating <= 0 {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}

func findComponent(components []domain.AddressComponent, componentType string) (domain.AddressComponent, bool) {
	for _, c := range components {
		if c.HasType(componentType) {
			return c, true
		}
	}
	return domain.AddressComponent{}, false
}

func uniquePOIs(pois []domain.PointOfInterest) []domain.PointOfInterest {
	seen := make(map[domain.PointOfInterest]struct{}, len(pois))
	out := make([]domain.PointOfInterest, 0, len(pois))
	for _, p := range pois {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
