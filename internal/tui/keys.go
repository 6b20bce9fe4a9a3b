package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewDeck key.Binding
	Draw    key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	k := keyMap{
		NewDeck: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new deck"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "draw"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	// Drawing stays disabled until a deck exists.
	k.Draw.SetEnabled(false)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewDeck, k.Draw, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewDeck, k.Draw},
		{k.Up, k.Down, k.Quit},
	}
}
