package home

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/router"
	"github.com/abhisek/skillstars/internal/screen"
	"github.com/abhisek/skillstars/internal/screens/activity"
	"github.com/abhisek/skillstars/internal/screens/history"
	"github.com/abhisek/skillstars/internal/ui/components"
	"github.com/abhisek/skillstars/internal/ui/layout"
)

// columns is how many activity cards share a row.
const columns = 2

// HomeScreen lists the activities with this week's stars.
type HomeScreen struct {
	engine   *flow.Engine
	caption  *announce.Caption
	keys     keyMap
	selected int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. caption may be nil.
func New(engine *flow.Engine, caption *announce.Caption) *HomeScreen {
	return &HomeScreen{
		engine:  engine,
		caption: caption,
		keys:    defaultKeys(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Choose"},
		{Key: "1-6", Description: "Pick"},
		{Key: "Enter", Description: "Start"},
		{Key: "w", Description: "Weeks"},
		{Key: "m", Description: "Sound"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) activities() []catalog.Activity {
	return h.engine.Catalog().All()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	n := len(h.activities())
	switch {
	case key.Matches(kmsg, h.keys.Quit):
		return h, tea.Quit
	case key.Matches(kmsg, h.keys.Start):
		return h, h.start(h.selected)
	case key.Matches(kmsg, h.keys.Weeks):
		next := history.New(h.engine)
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	case key.Matches(kmsg, h.keys.Up):
		if h.selected-columns >= 0 {
			h.selected -= columns
		}
	case key.Matches(kmsg, h.keys.Down):
		if h.selected+columns < n {
			h.selected += columns
		}
	case key.Matches(kmsg, h.keys.Left):
		if h.selected > 0 {
			h.selected--
		}
	case key.Matches(kmsg, h.keys.Right):
		if h.selected < n-1 {
			h.selected++
		}
	default:
		if k := kmsg.String(); len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < n {
			h.selected = int(k[0] - '1')
			return h, h.start(h.selected)
		}
	}
	return h, nil
}

// start selects activity i on the engine and opens the activity screen.
func (h *HomeScreen) start(i int) tea.Cmd {
	acts := h.activities()
	if i < 0 || i >= len(acts) {
		return nil
	}
	if err := h.engine.Select(acts[i].Key); err != nil {
		return nil
	}
	next := activity.New(h.engine, h.caption)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	week := h.engine.WeekKey()
	ledger := h.engine.Ledger()
	acts := h.activities()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if compact {
		sections = append(sections, renderList(acts, ledger, week, h.selected, cw))
	} else {
		sections = append(sections, renderMascotBox(mascotFor(progress.TotalForWeek(ledger, week)), cw))
		sections = append(sections, renderGrid(acts, ledger, week, h.selected, cw))
	}
	if h.selected < len(acts) {
		sections = append(sections, renderDetail(acts[h.selected], cw))
	}

	return components.BoardFrame(strings.Join(sections, "\n\n"), width, height)
}
