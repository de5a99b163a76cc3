package domain

// PointOfInterest - ключевое слово категории для поиска мест поблизости.
// Польские синонимы английских категорий заведены намеренно.
type PointOfInterest string

const (
	POIGroceries           PointOfInterest = "groceries"
	POISupermarket         PointOfInterest = "supermarket"
	POIDiscountSupermarket PointOfInterest = "discount supermarket"
	POIDiscount            PointOfInterest = "discount"
	POIBakery              PointOfInterest = "bakery"
	POIButcher             PointOfInterest = "butcher"
	POIConvenienceStore    PointOfInterest = "convenience store"
	POIGreengrocer         PointOfInterest = "greengrocer"
	POIShoppingMall        PointOfInterest = "shopping mall"

	POIPizza      PointOfInterest = "pizza"
	POIFood       PointOfInterest = "food"
	POIRestaurant PointOfInterest = "restaurant"
	POIBar        PointOfInterest = "bar"
	POICafe       PointOfInterest = "cafe"

	POIHospital     PointOfInterest = "hospital"
	POIHealthCenter PointOfInterest = "health center"
	POIPharmacy     PointOfInterest = "pharmacy"
	POIDentist      PointOfInterest = "dentist"
	POIDoctor       PointOfInterest = "doctor"
	POIVeterinarian PointOfInterest = "veterinarian"
	POIClinic       PointOfInterest = "clinic"

	POISchool        PointOfInterest = "school"
	POIPrimarySchool PointOfInterest = "primary school"
	POIHighSchool    PointOfInterest = "high school"
	POIKindergarten  PointOfInterest = "kindergarten"
	POICollege       PointOfInterest = "college"

	POIBusStop      PointOfInterest = "bus stop"
	POITramStop     PointOfInterest = "tram stop"
	POITrainStation PointOfInterest = "train station"
	POIAirport      PointOfInterest = "airport"

	POIPark    PointOfInterest = "park"
	POIGym     PointOfInterest = "gym"
	POICinema  PointOfInterest = "cinema"
	POIMuseum  PointOfInterest = "museum"
	POITheatre PointOfInterest = "theatre"
	POILibrary PointOfInterest = "library"

	POILandmark PointOfInterest = "landmark"

	POISzkolaPodstawowa PointOfInterest = "szkoła podstawowa"
	POIOsrodekZdrowia   PointOfInterest = "ośrodek zdrowia"
	POIPrzedszkole      PointOfInterest = "przedszkole"
)

// AllPointsOfInterest - закрытый список поддерживаемых категорий в порядке отображения
var AllPointsOfInterest = []PointOfInterest{
	POIGroceries, POISupermarket, POIDiscountSupermarket, POIDiscount, POIBakery, POIButcher,
	POIConvenienceStore, POIGreengrocer, POIShoppingMall,
	POIPizza, POIFood, POIRestaurant, POIBar, POICafe,
	POIHospital, POIHealthCenter, POIPharmacy, POIDentist, POIDoctor, POIVeterinarian, POIClinic,
	POISchool, POIPrimarySchool, POIHighSchool, POIKindergarten, POICollege,
	POIBusStop, POITramStop, POITrainStation, POIAirport,
	POIPark, POIGym, POICinema, POIMuseum, POITheatre, POILibrary,
	POILandmark,
	POISzkolaPodstawowa, POIOsrodekZdrowia, POIPrzedszkole,
}

// DefaultReportPOIs - категории отчёта по локации, если вызывающий их не передал
var DefaultReportPOIs = []PointOfInterest{
	POIRestaurant, POIBusStop, POITramStop, POIOsrodekZdrowia, POIPrzedszkole,
	POIDiscount, POISzkolaPodstawowa, POIFood, POIPizza, POIGym,
}

var validPOIs = func() map[PointOfInterest]struct{} {
	m := make(map[PointOfInterest]struct{}, len(AllPointsOfInterest))
	for _, p := range AllPointsOfInterest {
		m[p] = struct{}{}
	}
	return m
}()

// IsValidPointOfInterest проверяет, входит ли категория в закрытый список
func IsValidPointOfInterest(p string) bool {
	_, ok := validPOIs[PointOfInterest(p)]
	return ok
}

// DistanceFromLocation - одно найденное место с расстояниями от опорного адреса
type DistanceFromLocation struct {
	PointOfInterest          PointOfInterest `json:"pointOfInterest"`
	Name                     string          `json:"name"`
	Address                  string          `json:"address,omitempty"`
	GeoLocation              []float64       `json:"geoLocation,omitempty"`
	ReferenceGeoLocation     []float64       `json:"theReferenceGeoLoc"`
	Distance                 *float64        `json:"distance,omitempty"`
	WalkingDistance          *int            `json:"walkingDistance,omitempty"`
	WalkingDuration          *int            `json:"walkingDuration,omitempty"`
	WalkingDurationInMinutes *int            `json:"walkingDurationInMinutes,omitempty"`
	Status                   string          `json:"status,omitempty"`
	Rating                   *float64        `json:"rating,omitempty"`
	// Error заполняется, если directions для этого места не удалось получить
	Error string `json:"error,omitempty"`
}

// GroupedPOIs - найденные места по категориям, каждая группа отсортирована по времени пешком
type GroupedPOIs map[PointOfInterest][]DistanceFromLocation

// CategoryFailure - категория, поиск по которой завершился ошибкой
type CategoryFailure struct {
	PointOfInterest PointOfInterest `json:"pointOfInterest"`
	Error           string          `json:"error"`
}

// NearbyPOIs - результат поиска по нескольким категориям
type NearbyPOIs struct {
	Groups   GroupedPOIs       `json:"groups"`
	Failures []CategoryFailure `json:"failures,omitempty"`
}
