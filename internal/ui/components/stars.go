package components

import (
	"strconv"
	"strings"

	"github.com/abhisek/skillstars/internal/stars"
	"github.com/abhisek/skillstars/internal/ui/theme"
)

// StarSlots renders stars.Max slots with the first earned ones lit.
func StarSlots(earned int) string {
	earned = min(max(earned, 0), stars.Max)
	return theme.Lit.Render(strings.Repeat("★ ", earned)) +
		theme.Unlit.Render(strings.Repeat("☆ ", stars.Max-earned))
}

// StarBadge renders a compact "★ n" badge for a weekly total.
func StarBadge(n int) string {
	if n == 0 {
		return theme.Hint.Render("★ 0")
	}
	return theme.Lit.Render("★ " + strconv.Itoa(n))
}
