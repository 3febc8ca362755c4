package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotWaiting MascotVariant = iota // No stars yet this week
	MascotProud                        // Some stars this week
	MascotStarry                       // A big week
)

// starryThreshold is the weekly total at which the mascot gets star eyes.
const starryThreshold = 20

const mascotWaiting = `┌─────┐
│ ◉ ◉ │
│  ‿  │
└─┬─┬─┘`

const mascotProud = `┌─────┐
│ ◠ ◠ │
│  ▽  │
└─┬─┬─┘`

const mascotStarry = `  \ /
┌─────┐
│ ★ ★ │
│  ▽  │
└─┬─┬─┘`

// mascotFor picks the variant for a weekly star total.
func mascotFor(weekTotal int) MascotVariant {
	switch {
	case weekTotal >= starryThreshold:
		return MascotStarry
	case weekTotal > 0:
		return MascotProud
	default:
		return MascotWaiting
	}
}

// RenderMascot returns the styled mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	switch v {
	case MascotStarry:
		return lipgloss.NewStyle().Foreground(theme.Star).Render(mascotStarry)
	case MascotProud:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(mascotProud)
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotWaiting)
	}
}
