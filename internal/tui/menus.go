package tui

import tea "github.com/charmbracelet/bubbletea"

// menuID identifies one of the three menus
type menuID int

const (
	menuMain menuID = iota
	menuWatchlist
	menuSuggest
)

// MainCommand is a main menu choice
type MainCommand int

const (
	MainReviewWatchlist MainCommand = iota
	MainSuggest
	MainExit
)

// WatchlistCommand is a watchlist menu choice
type WatchlistCommand int

const (
	WatchlistView WatchlistCommand = iota
	WatchlistAddPlanned
	WatchlistMoveToWatched
	WatchlistRemovePlanned
	WatchlistAddWatched
	WatchlistRemoveWatched
	WatchlistBack
)

// SuggestCommand is a suggestion menu choice
type SuggestCommand int

const (
	SuggestFromHistory SuggestCommand = iota
	SuggestFromMovie
	SuggestByGenre
	SuggestPopular
	SuggestBack
)

type action func(m *Model) tea.Cmd

// Menus in display order
var (
	mainCommands = []MainCommand{
		MainReviewWatchlist,
		MainSuggest,
		MainExit,
	}
	watchlistCommands = []WatchlistCommand{
		WatchlistView,
		WatchlistAddPlanned,
		WatchlistMoveToWatched,
		WatchlistRemovePlanned,
		WatchlistAddWatched,
		WatchlistRemoveWatched,
		WatchlistBack,
	}
	suggestCommands = []SuggestCommand{
		SuggestFromHistory,
		SuggestFromMovie,
		SuggestByGenre,
		SuggestPopular,
		SuggestBack,
	}
)

var mainLabels = map[MainCommand]string{
	MainReviewWatchlist: "Review watchlist",
	MainSuggest:         "Generate suggestions",
	MainExit:            "Exit",
}

var watchlistLabels = map[WatchlistCommand]string{
	WatchlistView:          "View lists",
	WatchlistAddPlanned:    "Add movie to plan to watch",
	WatchlistMoveToWatched: "Move planned movie to watched",
	WatchlistRemovePlanned: "Remove movie from plan to watch",
	WatchlistAddWatched:    "Add movie to watched",
	WatchlistRemoveWatched: "Remove movie from watched",
	WatchlistBack:          "Back",
}

var suggestLabels = map[SuggestCommand]string{
	SuggestFromHistory: "From my watchlist",
	SuggestFromMovie:   "From a movie",
	SuggestByGenre:     "By genre",
	SuggestPopular:     "Popular movies",
	SuggestBack:        "Back",
}

// Dispatch tables
var mainActions = map[MainCommand]action{
	MainReviewWatchlist: func(m *Model) tea.Cmd { return m.showMenu(menuWatchlist) },
	MainSuggest:         (*Model).startSuggestSession,
	MainExit:            func(*Model) tea.Cmd { return tea.Quit },
}

var watchlistActions = map[WatchlistCommand]action{
	WatchlistView:          (*Model).startViewLists,
	WatchlistAddPlanned:    func(m *Model) tea.Cmd { return m.askTitle(flowAddPlanned) },
	WatchlistMoveToWatched: func(m *Model) tea.Cmd { return m.pickListTitle(flowMoveToWatched) },
	WatchlistRemovePlanned: func(m *Model) tea.Cmd { return m.pickListTitle(flowRemovePlanned) },
	WatchlistAddWatched:    func(m *Model) tea.Cmd { return m.askTitle(flowAddWatched) },
	WatchlistRemoveWatched: func(m *Model) tea.Cmd { return m.pickListTitle(flowRemoveWatched) },
	WatchlistBack:          func(m *Model) tea.Cmd { return m.showMenu(menuMain) },
}

var suggestActions = map[SuggestCommand]action{
	SuggestFromHistory: (*Model).suggestFromHistory,
	SuggestFromMovie:   func(m *Model) tea.Cmd { return m.askTitle(flowSeedMovie) },
	SuggestByGenre:     (*Model).pickGenre,
	SuggestPopular:     (*Model).suggestPopular,
	SuggestBack:        func(m *Model) tea.Cmd { return m.showMenu(menuMain) },
}

func labelsFor[C comparable](commands []C, labels map[C]string) []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = labels[c]
	}
	return out
}

func dispatch[C comparable](m *Model, commands []C, actions map[C]action, idx int) tea.Cmd {
	if idx < 0 || idx >= len(commands) {
		return nil
	}
	return actions[commands[idx]](m)
}

// menuTitle and menuLabels describe a menu for display
func menuTitle(id menuID) string {
	switch id {
	case menuWatchlist:
		return "Watchlist"
	case menuSuggest:
		return "Suggestions"
	default:
		return "Main menu"
	}
}

func menuLabels(id menuID) []string {
	switch id {
	case menuWatchlist:
		return labelsFor(watchlistCommands, watchlistLabels)
	case menuSuggest:
		return labelsFor(suggestCommands, suggestLabels)
	default:
		return labelsFor(mainCommands, mainLabels)
	}
}

// runMenuChoice dispatches the idx-th entry of the current menu
func (m *Model) runMenuChoice(idx int) tea.Cmd {
	switch m.menu {
	case menuWatchlist:
		return dispatch(m, watchlistCommands, watchlistActions, idx)
	case menuSuggest:
		return dispatch(m, suggestCommands, suggestActions, idx)
	default:
		return dispatch(m, mainCommands, mainActions, idx)
	}
}
