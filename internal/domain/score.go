package domain

// DistanceType - способ передвижения, по которому считается порог
type DistanceType string

const (
	DistanceWalking DistanceType = "walking"
	DistanceDriving DistanceType = "driving"
	DistancePublic  DistanceType = "public"
)

// ScoreConfig - строка таблицы весов для категории
type ScoreConfig struct {
	PlaceType          PointOfInterest `json:"placeType"`
	Weight             float64         `json:"weight"`
	DistanceType       DistanceType    `json:"distanceType"`
	ThresholdInMinutes int             `json:"thresholdInMinutes"`
}

// ScoredPlace - вклад категории в итоговую оценку
type ScoredPlace struct {
	PlaceType PointOfInterest `json:"placeType"`
	Score     float64         `json:"score"`
	Count     int             `json:"count"`
}

// Score - итоговая оценка района с разбивкой по категориям
type Score struct {
	Score        float64       `json:"score"`
	ScoredPlaces []ScoredPlace `json:"scoredPlaces"`
}
