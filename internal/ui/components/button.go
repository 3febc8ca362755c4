package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillstars/internal/ui/theme"
)

// Button is a styled button bound to a key.
type Button struct {
	Label   string
	Active  bool
	Binding key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a new button triggered by binding.
func NewButton(label string, binding key.Binding, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  true,
		Binding: binding,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, b.Binding) {
		return b, b.OnPress()
	}

	return b, nil
}

// View renders the button with its key hint.
func (b Button) View() string {
	label := "▸ " + b.Label
	if k := b.Binding.Help().Key; k != "" {
		label += " (" + k + ")"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
