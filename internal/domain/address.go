package domain

import (
	"errors"
	"strings"
)

// UnknownAddressPart - значение city/country, если геокодер не вернул нужный компонент
const UnknownAddressPart = "none"

// Address - адрес в свободной форме, как его ввёл пользователь
type Address struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Query склеивает адрес в одну строку для геокодера; пустые и неизвестные части пропускаются
func (a Address) Query() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Address, a.City, a.Country} {
		if IsKnownAddressPart(p) {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsKnownAddressPart - часть адреса заполнена и не является заглушкой UnknownAddressPart
func IsKnownAddressPart(part string) bool {
	part = strings.TrimSpace(part)
	return part != "" && part != UnknownAddressPart
}

// Location - координаты WGS84 в десятичных градусах
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng возвращает координаты парой [lat, lng]
func (l Location) LatLng() [2]float64 {
	return [2]float64{l.Latitude, l.Longitude}
}

// LocationAddress - результат геокодирования строки адреса
type LocationAddress struct {
	InputAddress      string             `json:"inputAddress"`
	FormattedAddress  string             `json:"formattedAddress"`
	LatLng            [2]float64         `json:"latLng"`
	City              string             `json:"city"`
	Country           string             `json:"country"`
	AddressComponents []AddressComponent `json:"addressComponents,omitempty"`
}

// Location возвращает координаты результата
func (la *LocationAddress) Location() Location {
	return Location{Latitude: la.LatLng[0], Longitude: la.LatLng[1]}
}

// ErrNoLocationsFound - геокодер не нашёл ни одного результата
var ErrNoLocationsFound = errors.New("no locations found")

// ErrNoRoute - directions не вернул ни одного маршрута
var ErrNoRoute = errors.New("no route found")

// NoLocationsFoundError - ожидаемый исход геокодирования без результатов.
// Вызывающий код различает его через errors.Is(err, ErrNoLocationsFound).
type NoLocationsFoundError struct {
	Input   string
	Message string
}

func (e *NoLocationsFoundError) Error() string {
	return e.Message
}

func (e *NoLocationsFoundError) Is(target error) bool {
	return target == ErrNoLocationsFound
}

// NewNoLocationsFound создает ошибку с сообщением по умолчанию
func NewNoLocationsFound(input string) *NoLocationsFoundError {
	return &NoLocationsFoundError{
		Input:   input,
		Message: "No results found",
	}
}
