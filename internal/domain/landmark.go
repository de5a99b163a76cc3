package domain

import (
	"time"

	"github.com/google/uuid"
)

// LandMark - именованное место, расстояние до которого считается по запросу
type LandMark struct {
	Name     string    `json:"name" validate:"required"`
	Address  string    `json:"address" validate:"required"`
	Location *Location `json:"location,omitempty"`
}

// DistanceFromLandMark - расстояния от опорного адреса до ориентира пешком и общественным транспортом
type DistanceFromLandMark struct {
	LandMark                 LandMark `json:"landMark"`
	Distance                 float64  `json:"distance"`
	WalkingDistance          int      `json:"walkingDistance"`
	WalkingDuration          int      `json:"walkingDuration"`
	WalkingDurationInMinutes *int     `json:"walkingDurationInMinutes,omitempty"`
	PublicTransportDistance  int      `json:"publicTransportDistance"`
	PublicTransportDuration  int      `json:"publicTransportDuration"`
	PublicDurationInMinutes  *int     `json:"publicDurationInMinutes,omitempty"`
	// Error заполняется, если ориентир не удалось обсчитать; остальные поля тогда нулевые
	Error string `json:"error,omitempty"`
}

// SavedLandMark - ориентир, сохранённый в базе
type SavedLandMark struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ToLandMark конвертирует сохранённый ориентир в вход для расчёта расстояний
func (l *SavedLandMark) ToLandMark() LandMark {
	return LandMark{
		Name:     l.Name,
		Address:  l.Address,
		Location: &Location{Latitude: l.Latitude, Longitude: l.Longitude},
	}
}

// PopularPlace - место, предложенное внешним сервисом рекомендаций
type PopularPlace struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}
