package domain

import "time"

// Статусы ответов Google Maps
const (
	MapsStatusOK          = "OK"
	MapsStatusZeroResults = "ZERO_RESULTS"
)

// TravelMode - режим передвижения для directions
type TravelMode string

const (
	TravelModeWalking   TravelMode = "walking"
	TravelModeTransit   TravelMode = "transit"
	TravelModeDriving   TravelMode = "driving"
	TravelModeBicycling TravelMode = "bicycling"
)

// LatLng - координаты в формате провайдера
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToLocation конвертирует координаты провайдера в доменные
func (l LatLng) ToLocation() Location {
	return Location{Latitude: l.Lat, Longitude: l.Lng}
}

// LatLngFrom конвертирует доменные координаты в формат провайдера
func LatLngFrom(l Location) LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// GeocodeRequest - запрос к geocode API.
// Timeout не сериализуется и не участвует в ключе кеша.
type GeocodeRequest struct {
	Params  GeocodeParams `json:"params"`
	Timeout time.Duration `json:"-"`
}

type GeocodeParams struct {
	Address  string `json:"address"`
	Language string `json:"language,omitempty"`
	Key      string `json:"key,omitempty"`
}

// DirectionsRequest - запрос к directions API
type DirectionsRequest struct {
	Params  DirectionsParams `json:"params"`
	Timeout time.Duration    `json:"-"`
}

type DirectionsParams struct {
	Origin       LatLng     `json:"origin"`
	Destination  LatLng     `json:"destination"`
	Mode         TravelMode `json:"mode"`
	Alternatives bool       `json:"alternatives"`
	Units        string     `json:"units,omitempty"`
	Language     string     `json:"language,omitempty"`
	Key          string     `json:"key,omitempty"`
}

// PlacesNearbyRequest - запрос к places nearby search API
type PlacesNearbyRequest struct {
	Params  PlacesNearbyParams `json:"params"`
	Timeout time.Duration      `json:"-"`
}

type PlacesNearbyParams struct {
	Location LatLng `json:"location"`
	Radius   int    `json:"radius"`
	Keyword  string `json:"keyword"`
	Language string `json:"language,omitempty"`
	Key      string `json:"key,omitempty"`
}

// AddressComponent - компонент адреса из ответа geocode
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// HasType проверяет наличие тега у компонента
func (c AddressComponent) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

type Geometry struct {
	Location     LatLng `json:"location"`
	LocationType string `json:"location_type,omitempty"`
}

type GeocodeResult struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	PlaceID           string             `json:"place_id,omitempty"`
	Types             []string           `json:"types,omitempty"`
}

type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

// ValueText - числовое значение с текстовым представлением (distance, duration)
type ValueText struct {
	Value int    `json:"value"`
	Text  string `json:"text,omitempty"`
}

type RouteLeg struct {
	Distance      ValueText `json:"distance"`
	Duration      ValueText `json:"duration"`
	StartAddress  string    `json:"start_address,omitempty"`
	EndAddress    string    `json:"end_address,omitempty"`
	StartLocation LatLng    `json:"start_location"`
	EndLocation   LatLng    `json:"end_location"`
}

type Route struct {
	Summary string     `json:"summary,omitempty"`
	Legs    []RouteLeg `json:"legs"`
}

type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

// FirstLeg возвращает первый участок первого маршрута
func (r *DirectionsResponse) FirstLeg() (RouteLeg, bool) {
	if len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return RouteLeg{}, false
	}
	return r.Routes[0].Legs[0], true
}

// PlaceResult - одно место из ответа nearby search.
// Geometry может отсутствовать.
type PlaceResult struct {
	Name           string    `json:"name"`
	Vicinity       string    `json:"vicinity,omitempty"`
	Geometry       *Geometry `json:"geometry,omitempty"`
	Rating         *float64  `json:"rating,omitempty"`
	BusinessStatus string    `json:"business_status,omitempty"`
	PlaceID        string    `json:"place_id,omitempty"`
	Types          []string  `json:"types,omitempty"`
}

type PlacesNearbyResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	Results       []PlaceResult `json:"results"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}
