package home

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Weeks key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Start: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Start")),
		Weeks: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "Weeks")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	}
}
