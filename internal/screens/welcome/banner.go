package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗  ██╗██╗██╗     ██╗         ███████╗████████╗ █████╗ ██████╗ ███████╗
 ██╔════╝██║ ██╔╝██║██║     ██║         ██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝
 ███████╗█████╔╝ ██║██║     ██║         ███████╗   ██║   ███████║██████╔╝███████╗
 ╚════██║██╔═██╗ ██║██║     ██║         ╚════██║   ██║   ██╔══██║██╔══██╗╚════██║
 ███████║██║  ██╗██║███████╗███████╗    ███████║   ██║   ██║  ██║██║  ██║███████║
 ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝    ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "S K I L L   S T A R S"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 84

// RenderBanner returns the title banner, falling back to spaced letters on
// narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
