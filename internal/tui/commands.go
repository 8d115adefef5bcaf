package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/suggest"
)

// Command factories for async catalog operations. Each call gets its own
// timeout so a stuck request cannot wedge the UI.

// SearchCmd looks up catalog candidates for a title
func SearchCmd(catalog domain.Catalog, query string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		movies, err := catalog.SearchByTitle(ctx, query)
		return SearchResultsMsg{Query: query, Movies: movies, Err: err}
	}
}

// LoadGenresCmd fetches the genre list for the given flow
func LoadGenresCmd(svc *suggest.Service, purpose flow, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		genres, err := svc.Genres(ctx)
		return GenresLoadedMsg{Genres: genres, Err: err, Purpose: purpose}
	}
}

// HistorySuggestionsCmd suggests movies from the watch history
func HistorySuggestionsCmd(svc *suggest.Service, genres domain.Genres, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		lists, err := svc.FromHistory(ctx, genres)
		return SuggestionsMsg{Lists: lists, Err: err}
	}
}

// MovieSuggestionsCmd suggests movies similar to seed
func MovieSuggestionsCmd(svc *suggest.Service, seed domain.Movie, genres domain.Genres, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return SuggestionsMsg{Lists: []suggest.Suggestions{svc.FromMovie(ctx, seed, genres)}}
	}
}

// GenreSuggestionsCmd suggests movies in one genre
func GenreSuggestionsCmd(svc *suggest.Service, genre domain.Genre, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return SuggestionsMsg{Lists: []suggest.Suggestions{svc.FromGenre(ctx, genre)}}
	}
}

// PopularSuggestionsCmd suggests the most popular movies
func PopularSuggestionsCmd(svc *suggest.Service, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return SuggestionsMsg{Lists: []suggest.Suggestions{svc.Popular(ctx)}}
	}
}
