// Package tui is the interactive shell: menus, prompts and result pages
// on top of the watchlist and suggestion services.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/suggest"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/tui/styles"
	"github.com/mmcdole/reel/internal/watchlist"
)

const defaultTimeout = 30 * time.Second

// Mode is what currently owns the keyboard
type Mode int

const (
	ModeMenu Mode = iota
	ModePrompt
	ModePicker
	ModePage
	ModeLoading
)

// flow is the multi-step operation a prompt or picker belongs to
type flow int

const (
	flowNone flow = iota
	flowAddPlanned
	flowMoveToWatched
	flowRemovePlanned
	flowAddWatched
	flowRemoveWatched
	flowViewLists
	flowSuggestSession
	flowSeedMovie
	flowByGenre
)

// step is what the visible prompt or picker is asking for
type step int

const (
	stepNone step = iota
	stepTitle
	stepCandidate
	stepRating
	stepListTitle
	stepGenre
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	Store       *watchlist.Store
	Suggestions *suggest.Service
	Catalog     domain.Catalog
	Timeout     time.Duration
	logger      *slog.Logger

	// UI state
	mode    Mode
	menu    menuID
	flow    flow
	step    step
	Width   int
	Height  int
	spinner spinner.Model

	// UI components
	Picker components.Picker
	Prompt components.InputModal

	// Flow data
	candidates []domain.Movie
	listTitles []string
	chosen     domain.Movie
	genres     domain.Genres // fetched per suggestion session

	// Full-screen text page (lists, suggestion results)
	pageTitle string
	pageBody  string

	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(store *watchlist.Store, suggestions *suggest.Service, catalog domain.Catalog, timeout time.Duration, logger *slog.Logger) Model {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		Store:       store,
		Suggestions: suggestions,
		Catalog:     catalog,
		Timeout:     timeout,
		logger:      logger,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.SpinnerStyle)),
		Picker:      components.NewPicker(),
		Prompt:      components.NewInputModal(),
	}
	m.showMenu(menuMain)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns what currently owns the keyboard
func (m Model) Mode() Mode { return m.mode }

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Picker.SetMaxRows(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.mode != ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SearchResultsMsg:
		next := m.handleSearchResults(msg)
		return m, next

	case GenresLoadedMsg:
		next := m.handleGenresLoaded(msg)
		return m, next

	case SuggestionsMsg:
		m.handleSuggestions(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeLoading:
		// Input is blocked until the catalog answers
		return m, nil

	case ModePage:
		if key.Matches(msg, keys.Close) {
			next := m.showMenu(m.menu)
			return m, next
		}
		return m, nil

	case ModePrompt:
		var cmd tea.Cmd
		var result components.InputResult
		m.Prompt, cmd, result = m.Prompt.Update(msg)
		switch result {
		case components.InputSubmitted:
			next := m.submitPrompt(m.Prompt.Value())
			return m, next
		case components.InputCanceled:
			next := m.showMenu(m.menu)
			return m, next
		}
		return m, cmd

	case ModePicker, ModeMenu:
		var cmd tea.Cmd
		var result components.PickerResult
		m.Picker, cmd, result = m.Picker.Update(msg)
		switch {
		case result.Selected && m.mode == ModeMenu:
			m.clearStatus()
			next := m.runMenuChoice(result.Index)
			return m, next
		case result.Selected:
			next := m.submitPick(result.Index)
			return m, next
		case result.Canceled && m.mode == ModeMenu:
			if m.menu != menuMain {
				next := m.showMenu(menuMain)
				return m, next
			}
		case result.Canceled:
			next := m.showMenu(m.menu)
			return m, next
		}
		return m, cmd
	}
	return m, nil
}

// showMenu displays a menu and ends any flow in progress
func (m *Model) showMenu(id menuID) tea.Cmd {
	m.mode = ModeMenu
	m.menu = id
	m.flow = flowNone
	m.step = stepNone
	m.candidates = nil
	m.listTitles = nil
	m.chosen = domain.Movie{}
	m.Prompt.Hide()
	m.Picker.Show(menuTitle(id), menuLabels(id), true)
	return nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.StatusMsg = ""
	m.StatusIsErr = false
}

// startLoading blocks input until cmd's message arrives
func (m *Model) startLoading(cmd tea.Cmd) tea.Cmd {
	m.mode = ModeLoading
	m.Picker.Hide()
	m.Prompt.Hide()
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) showPage(title, body string) {
	m.mode = ModePage
	m.pageTitle = title
	m.pageBody = body
	m.Picker.Hide()
	m.Prompt.Hide()
}

// Prompts

func (m *Model) askTitle(f flow) tea.Cmd {
	m.flow = f
	m.step = stepTitle
	m.mode = ModePrompt
	m.Picker.Hide()
	m.Prompt.Show("Movie title", "e.g. Inception")
	return nil
}

func (m *Model) askRating() tea.Cmd {
	m.step = stepRating
	m.mode = ModePrompt
	m.Picker.Hide()
	m.Prompt.Show(fmt.Sprintf("Rate %s (1-10)", m.chosen.Title), "7")
	return nil
}

func (m *Model) submitPrompt(value string) tea.Cmd {
	switch m.step {
	case stepTitle:
		query := strings.TrimSpace(value)
		if query == "" {
			m.Prompt.Reject("Please enter a title")
			return nil
		}
		return m.startLoading(SearchCmd(m.Catalog, query, m.Timeout))

	case stepRating:
		r, err := domain.ParseRating(value)
		if err != nil {
			m.Prompt.Reject("Please enter a number between 1 and 10")
			return nil
		}
		return m.applyRating(r)
	}
	return nil
}

// Pickers

func (m *Model) pickListTitle(f flow) tea.Cmd {
	var titles []string
	var title, empty string
	switch f {
	case flowMoveToWatched, flowRemovePlanned:
		titles = m.Store.PlannedTitles()
		title, empty = "Plan to watch", "Your plan to watch list is empty"
	case flowRemoveWatched:
		titles = m.Store.WatchedTitles()
		title, empty = "Watched", "Your watched list is empty"
	}
	if len(titles) == 0 {
		m.setStatus(empty, true)
		return nil
	}

	m.flow = f
	m.step = stepListTitle
	m.listTitles = titles
	m.mode = ModePicker
	m.Picker.Show(title, titles, false)
	return nil
}

func (m *Model) pickCandidate() {
	labels := make([]string, len(m.candidates))
	for i, c := range m.candidates {
		labels[i] = c.DisplayTitle()
	}
	m.step = stepCandidate
	m.mode = ModePicker
	m.Prompt.Hide()
	m.Picker.Show("Which movie?", labels, false)
}

func (m *Model) pickGenre() tea.Cmd {
	if len(m.genres) == 0 {
		m.setStatus("No genres available, the movie catalog could not be reached", true)
		return nil
	}
	m.flow = flowByGenre
	m.step = stepGenre
	m.mode = ModePicker
	m.Picker.Show("Genre", m.genres.Labels(), false)
	return nil
}

func (m *Model) submitPick(idx int) tea.Cmd {
	switch m.step {
	case stepCandidate:
		if idx < len(m.candidates) {
			return m.onMovieChosen(m.candidates[idx])
		}
	case stepListTitle:
		if idx < len(m.listTitles) {
			return m.onTitleChosen(m.listTitles[idx])
		}
	case stepGenre:
		if idx < len(m.genres) {
			return m.startLoading(GenreSuggestionsCmd(m.Suggestions, m.genres[idx], m.Timeout))
		}
	}
	return nil
}

// Flow steps

func (m *Model) onMovieChosen(movie domain.Movie) tea.Cmd {
	m.chosen = movie
	switch m.flow {
	case flowAddPlanned:
		if m.Store.AddPlanned(movie) {
			m.showMenu(menuWatchlist)
			m.setStatus(fmt.Sprintf("Added %s to plan to watch", movie.Title), false)
		} else {
			m.showMenu(menuWatchlist)
			m.setStatus(fmt.Sprintf("%s is already on your lists", movie.Title), false)
		}
		return nil
	case flowAddWatched:
		return m.askRating()
	case flowSeedMovie:
		return m.startLoading(MovieSuggestionsCmd(m.Suggestions, movie, m.genres, m.Timeout))
	}
	return m.showMenu(m.menu)
}

func (m *Model) onTitleChosen(title string) tea.Cmd {
	switch m.flow {
	case flowMoveToWatched:
		m.chosen = domain.Movie{Title: title}
		return m.askRating()
	case flowRemovePlanned:
		m.Store.RemovePlanned(title)
		m.showMenu(menuWatchlist)
		m.setStatus(fmt.Sprintf("Removed %s from plan to watch", title), false)
	case flowRemoveWatched:
		m.Store.RemoveWatched(title)
		m.showMenu(menuWatchlist)
		m.setStatus(fmt.Sprintf("Removed %s from watched", title), false)
	}
	return nil
}

func (m *Model) applyRating(r domain.Rating) tea.Cmd {
	var (
		ok  bool
		err error
	)
	title := m.chosen.Title
	switch m.flow {
	case flowMoveToWatched:
		ok, err = m.Store.MoveToWatched(title, r)
	case flowAddWatched:
		ok, err = m.Store.AddWatchedDirect(m.chosen, r)
	}

	m.showMenu(menuWatchlist)
	switch {
	case err != nil:
		m.logger.Warn("rating rejected", "title", title, "error", err)
		m.setStatus(err.Error(), true)
	case ok:
		m.setStatus(fmt.Sprintf("Marked %s as watched (%s)", title, r), false)
	default:
		m.setStatus(fmt.Sprintf("%s is not on your plan to watch list", title), true)
	}
	return nil
}

func (m *Model) handleSearchResults(msg SearchResultsMsg) tea.Cmd {
	if m.mode != ModeLoading || m.step != stepTitle {
		return nil
	}

	m.mode = ModePrompt
	m.Prompt.Show("Movie title", "e.g. Inception")
	switch {
	case msg.Err != nil:
		m.logger.Warn("title search failed", "query", msg.Query, "error", msg.Err)
		m.Prompt.Reject("Could not reach the movie catalog, try again")
		return nil
	case len(msg.Movies) == 0:
		m.Prompt.Reject(fmt.Sprintf("No movies found for %q", msg.Query))
		return nil
	}

	m.candidates = msg.Movies
	m.pickCandidate()
	return nil
}

// Suggestion session

func (m *Model) startSuggestSession() tea.Cmd {
	m.flow = flowSuggestSession
	return m.startLoading(LoadGenresCmd(m.Suggestions, flowSuggestSession, m.Timeout))
}

func (m *Model) startViewLists() tea.Cmd {
	m.flow = flowViewLists
	return m.startLoading(LoadGenresCmd(m.Suggestions, flowViewLists, m.Timeout))
}

func (m *Model) handleGenresLoaded(msg GenresLoadedMsg) tea.Cmd {
	if m.mode != ModeLoading || m.flow != msg.Purpose {
		return nil
	}

	genres := msg.Genres
	if msg.Err != nil {
		genres = nil
	}

	switch msg.Purpose {
	case flowViewLists:
		m.showPage("Your lists", renderLists(m.Store, genres))
		m.menu = menuWatchlist
	case flowSuggestSession:
		m.genres = genres
		m.showMenu(menuSuggest)
		if msg.Err != nil {
			m.setStatus("Could not load genres from the movie catalog", true)
		}
	}
	return nil
}

func (m *Model) suggestFromHistory() tea.Cmd {
	return m.startLoading(HistorySuggestionsCmd(m.Suggestions, m.genres, m.Timeout))
}

func (m *Model) suggestPopular() tea.Cmd {
	return m.startLoading(PopularSuggestionsCmd(m.Suggestions, m.Timeout))
}

func (m *Model) handleSuggestions(msg SuggestionsMsg) {
	if m.mode != ModeLoading {
		return
	}
	if msg.Err != nil {
		m.showMenu(menuSuggest)
		if errors.Is(msg.Err, domain.ErrNoHistory) {
			m.setStatus("You haven't watched any movies yet, so there's nothing to base suggestions on", true)
		} else {
			m.setStatus(msg.Err.Error(), true)
		}
		return
	}
	m.showPage("Suggestions", renderSuggestions(msg.Lists))
	m.menu = menuSuggest
}
