package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/router"
	"github.com/abhisek/skillstars/internal/screen"
	"github.com/abhisek/skillstars/internal/screens/home"
	"github.com/abhisek/skillstars/internal/screens/welcome"
	"github.com/abhisek/skillstars/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Engine  *flow.Engine
	Caption *announce.Caption

	// Splash shows the welcome animation before the home screen.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *flow.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the home screen, or at the
// welcome splash when opts.Splash is set.
func newAppModel(opts Options) AppModel {
	var root screen.Screen = home.New(opts.Engine, opts.Caption)
	if opts.Splash {
		homeScreen := root
		root = welcome.New(func() screen.Screen { return homeScreen })
	}
	return AppModel{
		router: router.New(root),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "m":
			m.engine.ToggleSound()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	week := m.engine.WeekKey()
	header := layout.RenderHeader(title, layout.HeaderInfo{
		WeekKey:   week,
		WeekTotal: progress.TotalForWeek(m.engine.Ledger(), week),
		SoundOn:   m.engine.State().Sound,
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "m", Description: "Sound"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
