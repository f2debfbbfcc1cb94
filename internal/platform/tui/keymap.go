package tui

import "github.com/charmbracelet/bubbles/key"

// RoundKeyMap defines the key bindings for a round screen.
type RoundKeyMap struct {
	Guess  key.Binding
	Shop   key.Binding
	Status key.Binding
	Hotbar key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Shop, k.Status, k.Hotbar, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.Shop},
		{k.Status, k.Hotbar, k.Quit},
	}
}

// DefaultRoundKeyMap returns default key bindings.
func DefaultRoundKeyMap() RoundKeyMap {
	return RoundKeyMap{
		Guess: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "guess a letter"),
		),
		Shop: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "shop"),
		),
		Status: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "status"),
		),
		Hotbar: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "use item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
