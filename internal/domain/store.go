package domain

// StateBackend persists the whole watchlist as one document.
// Each call acquires and releases the underlying file.
type StateBackend interface {
	// Load returns the saved state, or an error wrapping ErrNoSavedState
	// when nothing has been saved yet
	Load() (*State, error)

	// Save overwrites the saved state
	Save(state *State) error

	// Location describes where the state lives (for messages)
	Location() string
}
