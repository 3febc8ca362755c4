package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/ui/theme"
)

// MultiChoice is a numbered multiple-choice selector. Pressing a number or
// Enter on the highlighted option chooses it; correctness is judged by the
// caller.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

// ChoiceMsg reports the option the learner picked.
type ChoiceMsg struct {
	Index int
	Text  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.choose(m.Selected)
	default:
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(m.Options) {
			m.Selected = int(k[0] - '1')
			return m, m.choose(m.Selected)
		}
	}

	return m, nil
}

func (m MultiChoice) choose(i int) tea.Cmd {
	msg := ChoiceMsg{Index: i, Text: m.Options[i]}
	return func() tea.Msg { return msg }
}

// View renders the question and its numbered options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d.  %s", prefix, i+1, opt)
		if i == m.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
