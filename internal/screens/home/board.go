package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/ui/components"
	"github.com/abhisek/skillstars/internal/ui/theme"
)

// renderTitle returns the board heading.
func renderTitle(cw int, compact bool) string {
	title := "★  C L A S S R O O M   S K I L L S  ★"
	if compact {
		title = "★ Classroom Skills ★"
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Star).
		Bold(true).
		Render(title) + "\n" +
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Pick a skill to practice")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v))
}

// renderCard renders one activity card: number, title, weekly stars and why.
func renderCard(i int, a catalog.Activity, earned int, selected bool, width int) string {
	titleStyle := theme.Unselected
	marker := "  "
	if selected {
		titleStyle = theme.Selected
		marker = "▸ "
	}

	head := titleStyle.Render(fmt.Sprintf("%s%d. %s", marker, i+1, a.Title))
	badge := components.StarBadge(earned)
	gap := max(width-8-lipgloss.Width(head)-lipgloss.Width(badge), 1)

	why := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 6).
		MaxHeight(1).
		Render("  " + a.Why)

	return components.Card(head+strings.Repeat(" ", gap)+badge+"\n"+why, width, selected)
}

// renderGrid lays activity cards out in rows of columns.
func renderGrid(acts []catalog.Activity, l progress.Ledger, week string, selected, cw int) string {
	cardWidth := cw / columns

	var rows []string
	for start := 0; start < len(acts); start += columns {
		var cards []string
		for i := start; i < min(start+columns, len(acts)); i++ {
			earned := progress.ForSkill(l, week, acts[i].Key)
			cards = append(cards, renderCard(i, acts[i], earned, i == selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// renderList renders one line per activity for small terminals.
func renderList(acts []catalog.Activity, l progress.Ledger, week string, selected, cw int) string {
	lines := make([]string, 0, len(acts))
	for i, a := range acts {
		style := theme.Unselected
		marker := "  "
		if i == selected {
			style = theme.Selected
			marker = "▸ "
		}
		label := style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, a.Title))
		badge := components.StarBadge(progress.ForSkill(l, week, a.Key))
		gap := max(cw/2-lipgloss.Width(label), 1)
		lines = append(lines, label+strings.Repeat(" ", gap)+badge)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// renderDetail shows the selected activity's steps as chips.
func renderDetail(a catalog.Activity, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	return center.Render(theme.Hint.Render("First "+a.Title+", Then Reward")) + "\n" +
		center.Render(components.Chips(a.Steps, -1))
}
