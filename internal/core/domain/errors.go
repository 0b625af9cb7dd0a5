package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingCriteria indicates a search request supplied none of the
	// parameters that could narrow the result set. Raised before any
	// backend call is made.
	ErrMissingCriteria = errors.New("missing search criteria")

	// ErrInvalidDate indicates a date parameter was not a valid ISO
	// calendar date (YYYY-MM-DD).
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidHouse indicates a house parameter was neither "Commons"
	// nor "Lords".
	ErrInvalidHouse = errors.New("invalid house")

	// ErrMissingQuery indicates an operation that requires a free-text
	// query was called without one.
	ErrMissingQuery = errors.New("missing query")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBackendUnavailable indicates the search backend is not configured.
	ErrBackendUnavailable = errors.New("search backend unavailable")

	// ErrEmbeddingUnavailable indicates the embedding provider is not
	// configured. Query-driven (semantic) search is disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
