package errors

import "net/http"

var (
	ErrInvalidDayCount = New(
		"INVALID_DAY_COUNT",
		"Day count must be a positive integer",
		http.StatusBadRequest,
	)

	ErrEmptyCustomTags = New(
		"EMPTY_CUSTOM_TAGS",
		"Custom tour requires at least one tag",
		http.StatusBadRequest,
	)

	ErrUnknownTourType = New(
		"UNKNOWN_TOUR_TYPE",
		"Unknown tour type",
		http.StatusBadRequest,
	)

	ErrEmptyCatalog = New(
		"EMPTY_CATALOG",
		"Place catalog is empty",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUpstreamFetch = New(
		"UPSTREAM_FETCH_FAILED",
		"Failed to fetch data from upstream service",
		http.StatusBadGateway,
	)

	ErrSavedRouteNotFound = New(
		"SAVED_ROUTE_NOT_FOUND",
		"Saved route not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
