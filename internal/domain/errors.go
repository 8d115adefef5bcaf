package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the movie catalog could not answer
	// (network failure, non-2xx status or malformed payload)
	ErrCatalogUnavailable = errors.New("movie catalog is unavailable")

	// ErrInvalidRating indicates a rating outside [1,10]
	ErrInvalidRating = errors.New("rating must be between 1 and 10")

	// ErrInvalidMovie indicates a catalog record without a usable title
	ErrInvalidMovie = errors.New("movie record has no title")

	// ErrNoHistory indicates there are no watched movies to derive preferences from
	ErrNoHistory = errors.New("no watched movies yet, no suggestions available")

	// ErrNoSavedState indicates the backend holds no watchlist yet
	ErrNoSavedState = errors.New("no saved watchlist")
)
