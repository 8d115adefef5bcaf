package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Movie is a catalog record. Build it with NewMovie; treat it as read-only.
type Movie struct {
	ID          int     // Catalog identifier
	Title       string  // Natural key in the watchlist
	ReleaseDate string  // "YYYY-MM-DD" or empty when unknown
	GenreIDs    []int   // Catalog genre ids, in catalog order
	Popularity  float64 // Catalog popularity score
	VoteCount   int     // Number of catalog votes
}

// NewMovie validates and copies a catalog record.
func NewMovie(id int, title, releaseDate string, genreIDs []int) (Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Movie{}, ErrInvalidMovie
	}
	return Movie{
		ID:          id,
		Title:       title,
		ReleaseDate: strings.TrimSpace(releaseDate),
		GenreIDs:    slices.Clone(genreIDs),
	}, nil
}

// GetTitle returns the movie title
func (m Movie) GetTitle() string { return m.Title }

// Year returns the release year, or "" if the release date is unknown
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// DisplayTitle returns "Title (YYYY)" for pickers
func (m Movie) DisplayTitle() string {
	if y := m.Year(); y != "" {
		return fmt.Sprintf("%s (%s)", m.Title, y)
	}
	return m.Title
}

// PlanEntry is a movie the user intends to watch
type PlanEntry struct {
	Title    string
	GenreIDs []int
}

// GetTitle returns the entry title
func (e PlanEntry) GetTitle() string { return e.Title }

// NewPlanEntry captures the parts of a movie the watchlist keeps
func NewPlanEntry(m Movie) PlanEntry {
	return PlanEntry{Title: m.Title, GenreIDs: slices.Clone(m.GenreIDs)}
}

// WatchEntry is a watched movie with the user's rating.
// Genre ids are carried so preferences can be computed without the catalog.
type WatchEntry struct {
	Title    string
	GenreIDs []int
	Rating   Rating
}

// GetTitle returns the entry title
func (e WatchEntry) GetTitle() string { return e.Title }

// NewWatchEntry builds a watched entry. The rating must be valid.
func NewWatchEntry(title string, genreIDs []int, r Rating) (WatchEntry, error) {
	if strings.TrimSpace(title) == "" {
		return WatchEntry{}, ErrInvalidMovie
	}
	if err := r.Validate(); err != nil {
		return WatchEntry{}, err
	}
	return WatchEntry{Title: title, GenreIDs: slices.Clone(genreIDs), Rating: r}, nil
}

// Genre is a catalog genre
type Genre struct {
	ID   int
	Name string
}

// UnknownGenre is shown for genre ids the catalog list does not contain
const UnknownGenre = "Unknown"

// Genres is the catalog genre list in catalog order
type Genres []Genre

// Name returns the genre name for id, or UnknownGenre
func (g Genres) Name(id int) string {
	for _, genre := range g {
		if genre.ID == id {
			return genre.Name
		}
	}
	return UnknownGenre
}

// Names maps ids to names, preserving order
func (g Genres) Names(ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.Name(id)
	}
	return names
}

// Labels returns the genre names in list order (for pickers)
func (g Genres) Labels() []string {
	labels := make([]string, len(g))
	for i, genre := range g {
		labels[i] = genre.Name
	}
	return labels
}
