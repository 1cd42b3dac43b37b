package errors

import "net/http"

var (
	ErrDatasetNotFound = New(
		"DATASET_NOT_FOUND",
		"Dataset not found",
		http.StatusNotFound,
	)

	ErrInvalidDataset = New(
		"INVALID_DATASET",
		"Route and vibration sequences are misaligned",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidDatasetID = New(
		"INVALID_DATASET_ID",
		"Invalid dataset ID",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidSessionID = New(
		"INVALID_SESSION_ID",
		"Invalid chat session ID",
		http.StatusBadRequest,
	)

	ErrTextGeneration = New(
		"TEXT_GENERATION_FAILED",
		"Text generation request failed",
		http.StatusBadGateway,
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

	ErrStreamError = New(
		"STREAM_ERROR",
		"Failed to enqueue import",
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
