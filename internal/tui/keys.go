package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the clock view's key bindings.
type KeyMap struct {
	Quit         key.Binding
	ToggleLayout key.Binding
	ToggleStroke key.Binding
}

func newKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle layout"),
		),
		ToggleStroke: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle outline"),
		),
	}
}
