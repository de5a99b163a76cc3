package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedLocation - геокодированный адрес, сохранённый в базе
type SavedLocation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Address восстанавливает структурированный адрес: первая часть имени до запятой + город и страна.
// Если геокодер не вернул город или страну, они берутся из следующих частей имени;
// когда взять неоткуда, поле остаётся пустым и не попадает в запрос.
func (l *SavedLocation) Address() Address {
	parts := strings.Split(l.Name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	city := l.City
	if !IsKnownAddressPart(city) {
		city = ""
		if len(parts) > 1 {
			city = parts[1]
		}
	}
	country := l.Country
	if !IsKnownAddressPart(country) {
		country = ""
		if len(parts) > 2 {
			country = parts[len(parts)-1]
		}
	}

	return Address{
		Address: parts[0],
		City:    city,
		Country: country,
	}
}

// Listing - объявление: локация + выбранные категории и ориентиры
type Listing struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	LocationID  uuid.UUID         `json:"location_id" db:"location_id"`
	POIs        []PointOfInterest `json:"pois" db:"-"`
	LandmarkIDs []uuid.UUID       `json:"landmarks" db:"-"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// Report - сводка по локации: места поблизости, ориентиры и оценка
type Report struct {
	Location  *SavedLocation         `json:"location"`
	Listing   *Listing               `json:"listing,omitempty"`
	POIs      *NearbyPOIs            `json:"groupedPois"`
	Landmarks []DistanceFromLandMark `json:"landMarksDistance"`
	Score     Score                  `json:"score"`
}
