package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all board sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for board border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// BoardFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func BoardFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int, highlight bool) string {
	border := theme.Border
	if highlight {
		border = theme.Star
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Chips renders labels as a row of pill chips. The chip at active is
// highlighted; pass -1 for none.
func Chips(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			parts = append(parts, theme.ActiveChip.Render(l))
		} else {
			parts = append(parts, theme.Chip.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(parts)...)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
