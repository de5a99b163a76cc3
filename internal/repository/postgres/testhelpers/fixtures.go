package testhelpers

import (
	"github.com/aroundme-service/internal/domain"
)

// Координаты из ответов Google Maps для Кракова
var (
	StanczykaLocation = domain.SavedLocation{
		Name:      "Stańczyka 5, 30-126 Kraków, Poland",
		City:      "Kraków",
		Country:   "Poland",
		Latitude:  50.0782512,
		Longitude: 19.8941993,
	}

	KrakowLandmarks = []domain.SavedLandMark{
		{Name: "Rynek Główny", Address: "Rynek Główny, 31-422 Kraków, Poland", City: "Kraków", Country: "Poland", Latitude: 50.0619474, Longitude: 19.9368564},
		{Name: "Wawel", Address: "Wawel 5, 31-001 Kraków, Poland", City: "Kraków", Country: "Poland", Latitude: 50.054, Longitude: 19.9355},
	}

	WarsawLandmark = domain.SavedLandMark{
		Name: "Pałac Kultury i Nauki", Address: "plac Defilad 1, 00-901 Warszawa, Poland", City: "Warszawa", Country: "Poland", Latitude: 52.2318, Longitude: 21.0060,
	}
)
