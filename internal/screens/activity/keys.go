package activity

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Skip  key.Binding
	Back  key.Binding
	Retry key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("Esc", "back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
	}
}
