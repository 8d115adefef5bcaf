package tui

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/suggest"
)

// Message types for the TUI

// SearchResultsMsg carries catalog candidates for a title query
type SearchResultsMsg struct {
	Query  string
	Movies []domain.Movie
	Err    error
}

// GenresLoadedMsg carries the catalog genre list. Purpose is the flow that
// asked for it.
type GenresLoadedMsg struct {
	Genres  domain.Genres
	Err     error
	Purpose flow
}

// SuggestionsMsg carries finished suggestion lists
type SuggestionsMsg struct {
	Lists []suggest.Suggestions
	Err   error // mode-level failure such as domain.ErrNoHistory
}
