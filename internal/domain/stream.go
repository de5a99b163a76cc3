package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamListingScore  = "stream:listing:score"
	StreamListingScored = "stream:listing:scored"
)

// ListingScoreEvent - входящее событие на расчёт оценки объявления
type ListingScoreEvent struct {
	ListingID uuid.UUID `json:"listing_id"`
}

// ListingScoredEvent - результат расчёта оценки
type ListingScoredEvent struct {
	EventID      uuid.UUID     `json:"event_id"`
	ListingID    uuid.UUID     `json:"listing_id"`
	Score        float64       `json:"score"`
	ScoredPlaces []ScoredPlace `json:"scored_places,omitempty"`
	Failures     int           `json:"failures,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
