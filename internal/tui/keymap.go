package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the dashboard.
type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Select         key.Binding
	Back           key.Binding
	FilterAll      key.Binding
	FilterPlayed   key.Binding
	FilterUnplayed key.Binding
	ToggleHelp     key.Binding
	Quit           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open team"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all"),
		),
		FilterPlayed: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "played"),
		),
		FilterUnplayed: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unplayed"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings grouped.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.FilterAll, k.FilterPlayed, k.FilterUnplayed},
		{k.ToggleHelp, k.Quit},
	}
}
