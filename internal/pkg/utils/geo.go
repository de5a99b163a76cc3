package utils

import "math"

// EarthRadiusMeters - радиус Земли для формулы Haversine
const EarthRadiusMeters = 6371e3

// ToRadians переводит градусы в радианы
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// DistanceInMeters вычисляет расстояние по большому кругу между двумя точками (Haversine).
// Это расстояние по прямой, а не по маршруту.
func DistanceInMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := ToRadians(lat1)
	phi2 := ToRadians(lat2)
	dLat := ToRadians(lat2 - lat1)
	dLon := ToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// ToMinutes округляет секунды до ближайшей минуты.
// nil или 0 означает "длительность неизвестна" и возвращает nil, а не 0.
func ToMinutes(seconds *int) *int {
	if seconds == nil || *seconds == 0 {
		return nil
	}
	minutes := int(math.Round(float64(*seconds) / 60))
	return &minutes
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет радиус поиска мест (places API принимает до 50 км)
func ValidateRadius(radiusMeters int) bool {
	return radiusMeters > 0 && radiusMeters <= 50000
}
