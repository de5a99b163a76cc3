package errors

import "net/http"

const CodeLocationNotFound = "LOCATION_NOT_FOUND"

var (
	ErrLocationNotFound = New(
		CodeLocationNotFound,
		"Location not found",
		http.StatusNotFound,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidAddress = New(
		"INVALID_ADDRESS",
		"location is required, format 'street name $number, $city'",
		http.StatusBadRequest,
	)

	ErrInvalidPointOfInterest = New(
		"INVALID_POI",
		"Unknown point of interest",
		http.StatusBadRequest,
	)

	ErrNoPointsOfInterest = New(
		"NO_POIS",
		"at least one POI is required",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrProviderError = New(
		"PROVIDER_ERROR",
		"Maps provider request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
