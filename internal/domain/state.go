package domain

import "slices"

// Titled is implemented by every watchlist entry
type Titled interface {
	GetTitle() string
}

// TitleMap is a title-keyed map that remembers insertion order.
// Replacing an existing title keeps its original position.
type TitleMap[E Titled] struct {
	order []string
	items map[string]E
}

// NewTitleMap creates an empty map
func NewTitleMap[E Titled]() *TitleMap[E] {
	return &TitleMap[E]{items: make(map[string]E)}
}

// Len returns the number of entries
func (m *TitleMap[E]) Len() int { return len(m.order) }

// Has reports whether title is present
func (m *TitleMap[E]) Has(title string) bool {
	_, ok := m.items[title]
	return ok
}

// Get returns the entry for title
func (m *TitleMap[E]) Get(title string) (E, bool) {
	e, ok := m.items[title]
	return e, ok
}

// Put inserts or replaces the entry keyed by its title
func (m *TitleMap[E]) Put(e E) {
	title := e.GetTitle()
	if _, ok := m.items[title]; !ok {
		m.order = append(m.order, title)
	}
	m.items[title] = e
}

// Delete removes title, returning false if it was absent
func (m *TitleMap[E]) Delete(title string) bool {
	if _, ok := m.items[title]; !ok {
		return false
	}
	delete(m.items, title)
	if i := slices.Index(m.order, title); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return true
}

// Titles returns the keys in insertion order
func (m *TitleMap[E]) Titles() []string {
	return slices.Clone(m.order)
}

// Values returns the entries in insertion order
func (m *TitleMap[E]) Values() []E {
	out := make([]E, len(m.order))
	for i, title := range m.order {
		out[i] = m.items[title]
	}
	return out
}

// State is the complete watchlist: a title lives in Watched or Planned, never both.
type State struct {
	Watched *TitleMap[WatchEntry]
	Planned *TitleMap[PlanEntry]
}

// NewState returns an empty watchlist
func NewState() *State {
	return &State{
		Watched: NewTitleMap[WatchEntry](),
		Planned: NewTitleMap[PlanEntry](),
	}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := NewState()
	for _, e := range s.Watched.Values() {
		e.GenreIDs = slices.Clone(e.GenreIDs)
		c.Watched.Put(e)
	}
	for _, e := range s.Planned.Values() {
		e.GenreIDs = slices.Clone(e.GenreIDs)
		c.Planned.Put(e)
	}
	return c
}
