package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/router"
	"github.com/abhisek/skillstars/internal/screen"
	"github.com/abhisek/skillstars/internal/ui/layout"
	"github.com/abhisek/skillstars/internal/ui/theme"
	"github.com/abhisek/skillstars/internal/weekkey"
)

// LedgerSource is the part of the flow engine the history screen reads.
type LedgerSource interface {
	Ledger() progress.Ledger
	WeekKey() string
	Catalog() *catalog.Catalog
}

type historyLoadedMsg struct {
	Ledger progress.Ledger
	Weeks  []string
}

// HistoryScreen lists every recorded week with its star total. Enter expands a
// week into per-skill totals.
type HistoryScreen struct {
	source   LedgerSource
	ledger   progress.Ledger
	weeks    []string
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source LedgerSource) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	ledger := s.source.Ledger()
	return func() tea.Msg {
		return historyLoadedMsg{Ledger: ledger, Weeks: progress.Weeks(ledger)}
	}
}

func (s *HistoryScreen) Title() string {
	return "Star History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.ledger = msg.Ledger
		s.weeks = msg.Weeks
		s.loaded = true
		// Open the current week by default.
		for i, w := range s.weeks {
			if w == s.source.WeekKey() {
				s.selected = i
				s.expanded[i] = true
			}
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "b":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.weeks)-1 {
				s.selected++
			}
		case "enter", "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stars...")
	}
	if len(s.weeks) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No stars yet. Pick a skill to practice!")
	}

	current := s.source.WeekKey()
	acts := s.source.Catalog().All()

	var b strings.Builder
	b.WriteString("\n")

	for i, week := range s.weeks {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		label := week + "  " + weekOf(week)
		if week == current {
			label += " (this week)"
		}
		line := fmt.Sprintf("%s%-36s ★ %d", prefix, label, progress.TotalForWeek(s.ledger, week))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if !s.expanded[i] {
			continue
		}
		for _, a := range acts {
			n := progress.ForSkill(s.ledger, week, a.Key)
			if n == 0 {
				continue
			}
			detail := fmt.Sprintf("    %-20s ★ %d", a.Title, n)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Star).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// weekOf labels a week key by its Monday, e.g. "week of Mar 4".
func weekOf(week string) string {
	year, w, err := weekkey.Parse(week)
	if err != nil {
		return ""
	}
	return "week of " + weekkey.Monday(year, w).Format("Jan 2")
}
