package domain

import (
	"context"
)

// Catalog provides access to the external movie catalog
type Catalog interface {
	// SearchByTitle returns candidates for a free-text title, best match first.
	// No match is an empty slice, not an error.
	SearchByTitle(ctx context.Context, query string) ([]Movie, error)

	// DiscoverByGenre returns movies matching all genreIDs, most voted first.
	// Empty genreIDs means unfiltered popular movies.
	DiscoverByGenre(ctx context.Context, genreIDs []int, page int) ([]Movie, error)

	// ListGenres returns the catalog's genre list
	ListGenres(ctx context.Context) (Genres, error)
}
