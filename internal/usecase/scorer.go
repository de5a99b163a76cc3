package usecase

import (
	"sort"

	"github.com/aroundme-service/internal/domain"
)

// DefaultScoreConfig - таблица весов категорий по умолчанию
var DefaultScoreConfig = []domain.ScoreConfig{
	{PlaceType: domain.POIRestaurant, Weight: 2, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POISchool, Weight: 2, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIPrimarySchool, Weight: 3, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIPrzedszkole, Weight: 3, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIOsrodekZdrowia, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POISzkolaPodstawowa, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIBusStop, Weight: 3, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POITramStop, Weight: 5, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIDiscount, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POIGym, Weight: 4, DistanceType: domain.DistanceWalking, ThresholdInMinutes: 15},
	{PlaceType: domain.POICinema, Weight: 4, DistanceType: domain.DistancePublic, ThresholdInMinutes: 25},
	{PlaceType: domain.POITheatre, Weight: 4, DistanceType: domain.DistancePublic, ThresholdInMinutes: 25},
}

// CalculateScore считает оценку района по сгруппированным местам.
// 0 мест в пределах порога - 0, одно - вес, два и больше - вес * 1.5.
// Категории без строки в таблице дают 0 с count = числу найденных мест.
func CalculateScore(groups domain.GroupedPOIs, table []domain.ScoreConfig) domain.Score {
	if table == nil {
		table = DefaultScoreConfig
	}

	byType := make(map[domain.PointOfInterest]domain.ScoreConfig, len(table))
	for _, row := range table {
		if _, ok := byType[row.PlaceType]; !ok {
			byType[row.PlaceType] = row
		}
	}

	keys := make([]domain.PointOfInterest, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	result := domain.Score{ScoredPlaces: make([]domain.ScoredPlace, 0, len(keys))}
	for _, placeType := range keys {
		places := groups[placeType]

		row, ok := byType[placeType]
		if !ok {
			result.ScoredPlaces = append(result.ScoredPlaces, domain.ScoredPlace{
				PlaceType: placeType,
				Count:     len(places),
			})
			continue
		}

		count := countWithinThreshold(places, row)
		var score float64
		switch {
		case count == 0:
		case count == 1:
			score = row.Weight
		default:
			score = row.Weight * 1.5
		}

		result.Score += score
		result.ScoredPlaces = append(result.ScoredPlaces, domain.ScoredPlace{
			PlaceType: placeType,
			Score:     score,
			Count:     count,
		})
	}

	return result
}

// countWithinThreshold - только walking: для остальных режимов данных по местам нет.
// 0 минут (пешком меньше 30 секунд) не засчитывается, как и неизвестная длительность.
func countWithinThreshold(places []domain.DistanceFromLocation, row domain.ScoreConfig) int {
	if row.DistanceType != domain.DistanceWalking {
		return 0
	}
	count := 0
	for _, p := range places {
		minutes := p.WalkingDurationInMinutes
		if minutes != nil && *minutes > 0 && *minutes < row.ThresholdInMinutes {
			count++
		}
	}
	return count
}
