package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"go.uber.org/zap"
)

type LandmarkUseCase struct {
	aroundMe     *AroundMeUseCase
	landmarkRepo repository.LandMarkRepository
	suggester    repository.PlacesSuggester
	logger       *zap.Logger
}

func NewLandmarkUseCase(
	aroundMe *AroundMeUseCase,
	landmarkRepo repository.LandMarkRepository,
	suggester repository.PlacesSuggester,
	logger *zap.Logger,
) *LandmarkUseCase {
	return &LandmarkUseCase{
		aroundMe:     aroundMe,
		landmarkRepo: landmarkRepo,
		suggester:    suggester,
		logger:       logger,
	}
}

// FindOrCreateLandmarks возвращает ориентиры города из базы.
// Если их нет или запрошены подсказки, популярные места геокодируются и сохраняются;
// места, которые не удалось найти на карте, пропускаются. Подсказки с именем или адресом
// уже сохранённого ориентира не создаются повторно.
func (uc *LandmarkUseCase) FindOrCreateLandmarks(
	ctx context.Context,
	city, country string,
	suggest bool,
) ([]*domain.SavedLandMark, error) {
	existing, err := uc.landmarkRepo.GetByCityAndCountry(ctx, city, country)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && !suggest {
		return existing, nil
	}

	suggested, err := uc.suggester.FindPopularPlaces(ctx, city, country)
	if err != nil {
		uc.logger.Warn("Failed to get popular places, using stored landmarks",
			zap.String("city", city),
			zap.Error(err))
		return existing, nil
	}

	known := newKnownLandmarks(existing)
	fresh := make([]domain.PopularPlace, 0, len(suggested))
	for _, place := range suggested {
		if known.claimName(place.Name) {
			fresh = append(fresh, place)
		}
	}

	created := make([]*domain.SavedLandMark, len(fresh))
	forEach(len(fresh), func(i int) {
		created[i] = uc.createFromSuggestion(ctx, fresh[i], known)
	})

	result := existing
	for _, l := range created {
		if l != nil {
			result = append(result, l)
		}
	}

	uc.logger.Info("Landmarks resolved",
		zap.String("city", city),
		zap.String("country", country),
		zap.Int("stored", len(existing)),
		zap.Int("suggested", len(suggested)),
		zap.Int("new", len(result)-len(existing)),
		zap.Int("total", len(result)))

	return result, nil
}

func (uc *LandmarkUseCase) createFromSuggestion(
	ctx context.Context,
	place domain.PopularPlace,
	known *knownLandmarks,
) *domain.SavedLandMark {
	geo, err := uc.aroundMe.GeoCode(ctx, place.Location)
	if err != nil {
		if !errors.Is(err, domain.ErrNoLocationsFound) {
			uc.logger.Warn("Failed to geocode suggested place",
				zap.String("name", place.Name),
				zap.Error(err))
		}
		return nil
	}

	if !known.claimAddress(geo.FormattedAddress) {
		uc.logger.Debug("Suggested place already stored",
			zap.String("name", place.Name),
			zap.String("address", geo.FormattedAddress))
		return nil
	}

	landmark := &domain.SavedLandMark{
		Name:      place.Name,
		Address:   geo.FormattedAddress,
		City:      geo.City,
		Country:   geo.Country,
		Latitude:  geo.LatLng[0],
		Longitude: geo.LatLng[1],
	}
	if err := uc.landmarkRepo.Create(ctx, landmark); err != nil {
		uc.logger.Error("Failed to save landmark",
			zap.String("name", place.Name),
			zap.Error(err))
		return nil
	}
	return landmark
}

// ListLandmarks возвращает все сохранённые ориентиры
func (uc *LandmarkUseCase) ListLandmarks(ctx context.Context) ([]*domain.SavedLandMark, error) {
	landmarks, err := uc.landmarkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list landmarks: %w", err)
	}
	return landmarks, nil
}

// knownLandmarks - имена и адреса ориентиров города, уже сохранённых или созданных в этом вызове
type knownLandmarks struct {
	mu        sync.Mutex
	names     map[string]struct{}
	addresses map[string]struct{}
}

func newKnownLandmarks(existing []*domain.SavedLandMark) *knownLandmarks {
	k := &knownLandmarks{
		names:     make(map[string]struct{}, len(existing)),
		addresses: make(map[string]struct{}, len(existing)),
	}
	for _, l := range existing {
		k.names[normalizeLandmarkKey(l.Name)] = struct{}{}
		k.addresses[normalizeLandmarkKey(l.Address)] = struct{}{}
	}
	return k
}

// claimName возвращает false, если ориентир с таким именем уже есть
func (k *knownLandmarks) claimName(name string) bool {
	return k.claim(k.names, name)
}

// claimAddress возвращает false, если ориентир с таким адресом уже есть
func (k *knownLandmarks) claimAddress(address string) bool {
	return k.claim(k.addresses, address)
}

func (k *knownLandmarks) claim(set map[string]struct{}, value string) bool {
	key := normalizeLandmarkKey(value)
	if key == "" {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := set[key]; ok {
		return false
	}
	set[key] = struct{}{}
	return true
}

func normalizeLandmarkKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func toLandMarks(saved []*domain.SavedLandMark) []domain.LandMark {
	out := make([]domain.LandMark, len(saved))
	for i, l := range saved {
		out[i] = l.ToLandMark()
	}
	return out
}
