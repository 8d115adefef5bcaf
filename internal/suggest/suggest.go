// Package suggest produces movie suggestions from the catalog, filtered
// against the user's watch history.
package suggest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/preference"
)

const (
	defaultLimit     = 5
	defaultTopGenres = 3

	// Suggestions always come from the first discover page
	discoverPage = 1
)

// WatchedView is the part of the watchlist suggestions depend on
type WatchedView interface {
	Watched() []domain.WatchEntry
	IsWatched(title string) bool
}

// Options tunes the service
type Options struct {
	Limit     int // max movies per list
	TopGenres int // genres considered in history mode
}

// Suggestions is one display list
type Suggestions struct {
	GenreNames []string // empty for popular movies
	Movies     []domain.Movie
	Err        error // catalog failure; Movies is empty
}

// Heading describes the list, e.g. "Popular movies in Action and Drama"
func (s Suggestions) Heading() string {
	n := len(s.GenreNames)
	switch n {
	case 0:
		return "Popular movies"
	case 1:
		return "Popular movies in " + s.GenreNames[0]
	default:
		return "Popular movies in " + strings.Join(s.GenreNames[:n-1], ", ") + " and " + s.GenreNames[n-1]
	}
}

// Titles returns the movie titles in display order
func (s Suggestions) Titles() []string {
	titles := make([]string, len(s.Movies))
	for i, m := range s.Movies {
		titles[i] = m.Title
	}
	return titles
}

// Service orchestrates catalog queries and watchlist filtering.
// It keeps no state between calls.
type Service struct {
	catalog domain.Catalog
	watched WatchedView
	opts    Options
	logger  *slog.Logger
}

// NewService creates a suggestion service
func NewService(catalog domain.Catalog, watched WatchedView, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.TopGenres <= 0 {
		opts.TopGenres = defaultTopGenres
	}
	return &Service{catalog: catalog, watched: watched, opts: opts, logger: logger}
}

// Genres fetches the catalog genre list for a suggestion session
func (s *Service) Genres(ctx context.Context) (domain.Genres, error) {
	genres, err := s.catalog.ListGenres(ctx)
	if err != nil {
		s.logger.Error("failed to fetch genres", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched genres", "count", len(genres))
	return genres, nil
}

// FromHistory suggests movies for the most watched genres: one list for
// all top genres together, plus one per genre when there is more than one.
// It returns domain.ErrNoHistory without querying when nothing is watched.
func (s *Service) FromHistory(ctx context.Context, genres domain.Genres) ([]Suggestions, error) {
	watched := s.watched.Watched()
	if len(watched) == 0 {
		return nil, domain.ErrNoHistory
	}

	top := preference.TopGenres(watched, s.opts.TopGenres)
	if len(top) == 0 {
		// Watched movies without any genre
		return nil, domain.ErrNoHistory
	}
	s.logger.Debug("top genres", "genres", top)

	lists := []Suggestions{s.discover(ctx, top, genres.Names(top), "")}
	if len(top) > 1 {
		for _, id := range top {
			lists = append(lists, s.discover(ctx, []int{id}, genres.Names([]int{id}), ""))
		}
	}
	return lists, nil
}

// FromMovie suggests movies sharing all of seed's genres, excluding seed.
// A seed without genres falls back to popular movies.
func (s *Service) FromMovie(ctx context.Context, seed domain.Movie, genres domain.Genres) Suggestions {
	if len(seed.GenreIDs) == 0 {
		return s.discover(ctx, nil, nil, seed.Title)
	}
	return s.discover(ctx, seed.GenreIDs, genres.Names(seed.GenreIDs), seed.Title)
}

// FromGenre suggests movies in a single genre
func (s *Service) FromGenre(ctx context.Context, genre domain.Genre) Suggestions {
	return s.discover(ctx, []int{genre.ID}, []string{genre.Name}, "")
}

// Popular suggests the most voted movies in the catalog
func (s *Service) Popular(ctx context.Context) Suggestions {
	return s.discover(ctx, nil, nil, "")
}

// discover queries the catalog and filters the result. Catalog failures
// are logged and reported in Suggestions.Err instead of failing the mode.
func (s *Service) discover(ctx context.Context, genreIDs []int, names []string, seed string) Suggestions {
	out := Suggestions{GenreNames: names}

	candidates, err := s.catalog.DiscoverByGenre(ctx, genreIDs, discoverPage)
	if err != nil {
		s.logger.Error("discover failed", "genres", genreIDs, "error", err)
		out.Err = err
		out.Movies = []domain.Movie{}
		return out
	}

	out.Movies = Filter(candidates, s.watched.IsWatched, seed, s.opts.Limit)
	s.logger.Debug("suggestions ready",
		"genres", genreIDs,
		"candidates", len(candidates),
		"kept", len(out.Movies))
	return out
}

// Filter drops watched titles and the seed title, keeps catalog order and
// returns at most limit movies
func Filter(candidates []domain.Movie, isWatched func(title string) bool, seed string, limit int) []domain.Movie {
	if limit <= 0 {
		return []domain.Movie{}
	}
	out := make([]domain.Movie, 0, min(limit, len(candidates)))
	for _, m := range candidates {
		if len(out) >= limit {
			break
		}
		if m.Title == seed && seed != "" {
			continue
		}
		if isWatched(m.Title) {
			continue
		}
		out = append(out, m)
	}
	return out
}
