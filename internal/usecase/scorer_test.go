package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/usecase"
)

func withMinutes(minutes ...int) []domain.DistanceFromLocation {
	places := make([]domain.DistanceFromLocation, len(minutes))
	for i := range minutes {
		m := minutes[i]
		places[i] = domain.DistanceFromLocation{WalkingDurationInMinutes: &m}
	}
	return places
}

func TestCalculateScore_Thresholds(t *testing.T) {
	table := []domain.ScoreConfig{
		{PlaceType: domain.POIGym, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	}

	tests := []struct {
		name          string
		places        []domain.DistanceFromLocation
		expectedScore float64
		expectedCount int
	}{
		{"no qualifying hits", withMinutes(15, 20, 40), 0, 0},
		{"one qualifying hit", withMinutes(5, 15, 30), 4, 1},
		{"two qualifying hits", withMinutes(5, 14), 6, 2},
		{"many qualifying hits", withMinutes(1, 2, 3, 4, 5), 6, 5},
		{"zero minutes does not qualify", withMinutes(0, 0, 7), 4, 1},
		{"unknown duration does not qualify", []domain.DistanceFromLocation{{Name: "no route"}}, 0, 0},
		{"empty group", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := usecase.CalculateScore(domain.GroupedPOIs{domain.POIGym: tt.places}, table)

			assert.Equal(t, tt.expectedScore, score.Score)
			require.Len(t, score.ScoredPlaces, 1)
			assert.Equal(t, domain.POIGym, score.ScoredPlaces[0].PlaceType)
			assert.Equal(t, tt.expectedScore, score.ScoredPlaces[0].Score)
			assert.Equal(t, tt.expectedCount, score.ScoredPlaces[0].Count)
		})
	}
}

func TestCalculateScore_UnconfiguredCategory(t *testing.T) {
	table := []domain.ScoreConfig{
		{PlaceType: domain.POIGym, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	}

	score := usecase.CalculateScore(domain.GroupedPOIs{
		domain.POIPizza: withMinutes(1, 2, 3),
	}, table)

	assert.Equal(t, 0.0, score.Score)
	require.Len(t, score.ScoredPlaces, 1)
	assert.Equal(t, domain.POIPizza, score.ScoredPlaces[0].PlaceType)
	assert.Equal(t, 0.0, score.ScoredPlaces[0].Score)
	assert.Equal(t, 3, score.ScoredPlaces[0].Count)
}

func TestCalculateScore_DefaultTable(t *testing.T) {
	require.Len(t, usecase.DefaultScoreConfig, 12)

	groups := domain.GroupedPOIs{
		domain.POITramStop:   withMinutes(3, 8),       // 5 * 1.5
		domain.POIRestaurant: withMinutes(10),         // 2
		domain.POIBusStop:    withMinutes(20),         // 0
		domain.POICinema:     withMinutes(5, 6),       // public - по местам не считается
		domain.POIFood:       withMinutes(1, 1, 1, 1), // нет в таблице
	}

	score := usecase.CalculateScore(groups, nil)

	assert.Equal(t, 9.5, score.Score)
	require.Len(t, score.ScoredPlaces, 5)

	byType := make(map[domain.PointOfInterest]domain.ScoredPlace)
	for _, sp := range score.ScoredPlaces {
		byType[sp.PlaceType] = sp
	}
	assert.Equal(t, 7.5, byType[domain.POITramStop].Score)
	assert.Equal(t, 2, byType[domain.POITramStop].Count)
	assert.Equal(t, 2.0, byType[domain.POIRestaurant].Score)
	assert.Equal(t, 0.0, byType[domain.POIBusStop].Score)
	assert.Equal(t, 0, byType[domain.POICinema].Count)
	assert.Equal(t, 4, byType[domain.POIFood].Count)
}

func TestCalculateScore_DeterministicOrder(t *testing.T) {
	groups := domain.GroupedPOIs{
		domain.POITramStop:   withMinutes(3),
		domain.POIBusStop:    withMinutes(3),
		domain.POIRestaurant: withMinutes(3),
	}

	first := usecase.CalculateScore(groups, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, usecase.CalculateScore(groups, nil))
	}
	assert.Equal(t, domain.POIBusStop, first.ScoredPlaces[0].PlaceType)
}
