// Package watchlist holds the planned and watched lists for a session.
package watchlist

import (
	"errors"
	"log/slog"

	"github.com/mmcdole/reel/internal/domain"
)

// Store owns the in-memory watchlist and its durable backend.
// It is used from a single goroutine and is not safe for concurrent use.
type Store struct {
	backend domain.StateBackend
	state   *domain.State
	logger  *slog.Logger
}

// New creates a store with an empty watchlist
func New(backend domain.StateBackend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, state: domain.NewState(), logger: logger}
}

// Load replaces the watchlist with the saved one. It never fails: a
// missing, unreadable or corrupt document leaves an empty watchlist.
func (s *Store) Load() {
	st, err := s.backend.Load()
	switch {
	case err == nil:
		s.state = st
		s.logger.Info("loaded watchlist",
			"location", s.backend.Location(),
			"watched", st.Watched.Len(),
			"planned", st.Planned.Len())
	case errors.Is(err, domain.ErrNoSavedState):
		s.state = domain.NewState()
		s.logger.Debug("no saved watchlist", "location", s.backend.Location())
	default:
		// The unreadable document will be overwritten on the next save
		s.state = domain.NewState()
		s.logger.Warn("discarding unreadable watchlist", "location", s.backend.Location(), "error", err)
	}
}

// Save writes the whole watchlist to the backend
func (s *Store) Save() error {
	if err := s.backend.Save(s.state); err != nil {
		s.logger.Error("failed to save watchlist", "location", s.backend.Location(), "error", err)
		return err
	}
	s.logger.Info("saved watchlist",
		"location", s.backend.Location(),
		"watched", s.state.Watched.Len(),
		"planned", s.state.Planned.Len())
	return nil
}

// Location describes where the watchlist is saved
func (s *Store) Location() string { return s.backend.Location() }

// AddPlanned adds a movie to the planned list. It is a no-op when the
// title is already planned or already watched.
func (s *Store) AddPlanned(m domain.Movie) bool {
	if s.state.Planned.Has(m.Title) || s.state.Watched.Has(m.Title) {
		s.logger.Debug("add planned skipped", "title", m.Title)
		return false
	}
	s.state.Planned.Put(domain.NewPlanEntry(m))
	s.logger.Debug("added planned", "title", m.Title)
	return true
}

// RemovePlanned removes title from the planned list
func (s *Store) RemovePlanned(title string) bool {
	return s.state.Planned.Delete(title)
}

// RemoveWatched removes title from the watched list
func (s *Store) RemoveWatched(title string) bool {
	return s.state.Watched.Delete(title)
}

// MoveToWatched moves a planned title to the watched list with rating.
// An invalid rating fails before anything changes; an absent title is a no-op.
func (s *Store) MoveToWatched(title string, r domain.Rating) (bool, error) {
	planned, ok := s.state.Planned.Get(title)
	if !ok {
		return false, nil
	}

	entry, err := domain.NewWatchEntry(planned.Title, planned.GenreIDs, r)
	if err != nil {
		return false, err
	}

	s.state.Watched.Put(entry)
	s.state.Planned.Delete(title)
	s.logger.Debug("moved to watched", "title", title, "rating", float64(r))
	return true, nil
}

// AddWatchedDirect records a movie as watched without planning it first.
// A planned entry for the same title is removed; a watched one is re-rated.
func (s *Store) AddWatchedDirect(m domain.Movie, r domain.Rating) (bool, error) {
	entry, err := domain.NewWatchEntry(m.Title, m.GenreIDs, r)
	if err != nil {
		return false, err
	}

	s.state.Watched.Put(entry)
	s.state.Planned.Delete(m.Title)
	s.logger.Debug("added watched", "title", m.Title, "rating", float64(r))
	return true, nil
}

// Watched returns watched entries in the order they were added
func (s *Store) Watched() []domain.WatchEntry { return s.state.Watched.Values() }

// Planned returns planned entries in the order they were added
func (s *Store) Planned() []domain.PlanEntry { return s.state.Planned.Values() }

// WatchedTitles returns watched titles in the order they were added
func (s *Store) WatchedTitles() []string { return s.state.Watched.Titles() }

// PlannedTitles returns planned titles in the order they were added
func (s *Store) PlannedTitles() []string { return s.state.Planned.Titles() }

// IsWatched reports whether title is on the watched list
func (s *Store) IsWatched(title string) bool { return s.state.Watched.Has(title) }

// Snapshot returns a deep copy of the watchlist
func (s *Store) Snapshot() *domain.State { return s.state.Clone() }
