package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines application-wide key bindings
type KeyMap struct {
	Quit  key.Binding
	Close key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "esc", "q"),
			key.WithHelp("enter/esc", "back"),
		),
	}
}

var keys = DefaultKeyMap()
