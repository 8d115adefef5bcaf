package tmdb

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// MapMovies converts a result page into domain movies, dropping records
// the domain rejects
func MapMovies(results []MovieResult, logger *slog.Logger) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		m, err := MapMovie(r)
		if err != nil {
			logger.Debug("skipping catalog record", "id", r.ID, "error", err)
			continue
		}
		movies = append(movies, m)
	}
	return movies
}

// MapMovie converts a single result. The original title is the watchlist
// key; the localized title is only a fallback.
func MapMovie(r MovieResult) (domain.Movie, error) {
	title := r.OriginalTitle
	if strings.TrimSpace(title) == "" {
		title = r.Title
	}
	m, err := domain.NewMovie(r.ID, title, r.ReleaseDate, r.GenreIDs)
	if err != nil {
		return domain.Movie{}, err
	}
	m.Popularity = r.Popularity
	m.VoteCount = r.VoteCount
	return m, nil
}

// MapGenres converts the genre list, dropping unnamed entries
func MapGenres(results []GenreResult) domain.Genres {
	genres := make(domain.Genres, 0, len(results))
	for _, g := range results {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			continue
		}
		genres = append(genres, domain.Genre{ID: g.ID, Name: name})
	}
	return genres
}
