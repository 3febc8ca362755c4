// Package activity is the screen that runs one learning loop: tutorial,
// practice, quiz and reward.
package activity

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/router"
	"github.com/abhisek/skillstars/internal/screen"
	"github.com/abhisek/skillstars/internal/ui/components"
	"github.com/abhisek/skillstars/internal/ui/layout"
)

// tickMsg carries the ID of the engine timer it was scheduled for.
type tickMsg struct {
	ID uint64
}

// ActivityScreen renders the engine's current phase and feeds it key
// presses and timer ticks.
type ActivityScreen struct {
	engine  *flow.Engine
	caption *announce.Caption
	keys    keyMap

	// pending is the timer ID with a tick in flight, 0 if none.
	pending uint64
	phase   flow.Phase

	skip   components.Button
	choice components.MultiChoice
	reward components.Menu
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates the screen for an engine that has already left home.
// caption may be nil.
func New(engine *flow.Engine, caption *announce.Caption) *ActivityScreen {
	s := &ActivityScreen{
		engine:  engine,
		caption: caption,
		keys:    defaultKeys(),
		phase:   flow.PhaseHome,
	}
	s.skip = components.NewButton("Skip", s.keys.Skip, s.onSkip)
	s.refresh()
	return s
}

func (s *ActivityScreen) Init() tea.Cmd {
	return s.syncTimer()
}

func (s *ActivityScreen) Title() string {
	if a := s.engine.State().Activity; a != nil {
		return a.Title
	}
	return "Activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	switch s.engine.State().Phase {
	case flow.PhaseTutorial, flow.PhasePractice:
		hints = append(hints, hint(s.keys.Skip))
	case flow.PhaseQuiz:
		hints = append(hints,
			layout.KeyHint{Key: "1-4", Description: "Answer"},
			layout.KeyHint{Key: "↑↓ Enter", Description: "Pick"},
			hint(s.keys.Skip),
		)
	case flow.PhaseReward:
		hints = append(hints,
			layout.KeyHint{Key: "←→ Enter", Description: "Choose"},
			hint(s.keys.Retry),
		)
	}
	return append(hints,
		hint(s.keys.Back),
		layout.KeyHint{Key: "m", Description: "Sound"},
	)
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.ID == s.pending {
			s.pending = 0
		}
		s.engine.Fire(msg.ID)
		return s, s.after()

	case components.ChoiceMsg:
		_ = s.engine.Answer(msg.Text)
		return s, s.after()

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *ActivityScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, s.keys.Back) {
		_ = s.engine.Back()
		return s.after()
	}

	var cmd tea.Cmd
	switch s.engine.State().Phase {
	case flow.PhaseTutorial, flow.PhasePractice:
		s.skip, cmd = s.skip.Update(msg)
		if cmd == nil && msg.String() == "enter" {
			cmd = s.onSkip()
		}
	case flow.PhaseQuiz:
		if key.Matches(msg, s.keys.Skip) {
			return s.onSkip()
		}
		s.choice, cmd = s.choice.Update(msg)
	case flow.PhaseReward:
		if key.Matches(msg, s.keys.Retry) {
			return s.onRetry()
		}
		s.reward, cmd = s.reward.Update(msg)
	}
	return cmd
}

func (s *ActivityScreen) onSkip() tea.Cmd {
	_ = s.engine.Skip()
	return s.after()
}

func (s *ActivityScreen) onRetry() tea.Cmd {
	_ = s.engine.Retry()
	return s.after()
}

func (s *ActivityScreen) onHome() tea.Cmd {
	_ = s.engine.Back()
	return s.after()
}

// after rebuilds phase widgets, then either leaves the screen or keeps the
// engine's timer ticking.
func (s *ActivityScreen) after() tea.Cmd {
	s.refresh()
	if s.engine.State().Phase == flow.PhaseHome {
		// Don't carry this loop's last line into the next activity.
		if s.caption != nil {
			s.caption.Clear()
		}
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s.syncTimer()
}

// refresh rebuilds the per-phase widgets when the phase changed.
func (s *ActivityScreen) refresh() {
	st := s.engine.State()
	if st.Phase == s.phase {
		return
	}
	s.phase = st.Phase

	switch st.Phase {
	case flow.PhaseTutorial:
		s.skip.Label = "Start practice"
	case flow.PhasePractice:
		s.skip.Label = "Done early"
	case flow.PhaseQuiz:
		s.choice = components.NewMultiChoice(quizQuestion(st), st.Quiz.Choices)
	case flow.PhaseReward:
		s.reward = components.NewMenu([]components.MenuItem{
			{Label: "Try Again", Action: s.onRetry},
			{Label: "Back Home", Action: s.onHome},
		})
	}
}

// syncTimer schedules a tick for the engine's live timer unless one is
// already in flight for it. Ticks for replaced timers still arrive but the
// engine drops them.
func (s *ActivityScreen) syncTimer() tea.Cmd {
	tm, ok := s.engine.Timer()
	if !ok || tm.ID == s.pending {
		return nil
	}
	s.pending = tm.ID
	id := tm.ID
	return tea.Tick(tm.Every, func(time.Time) tea.Msg {
		return tickMsg{ID: id}
	})
}

func (s *ActivityScreen) View(width, height int) string {
	return components.BoardFrame(s.render(components.ContentWidth(width)), width, height)
}
