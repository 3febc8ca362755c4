package activity

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/quiz"
	"github.com/abhisek/skillstars/internal/router"
	"github.com/abhisek/skillstars/internal/screen"
	"github.com/abhisek/skillstars/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*ActivityScreen, *flow.Engine) {
	t.Helper()
	caption := &announce.Caption{}
	e := flow.New(context.Background(), flow.Options{
		Repo:      progress.NewRepo(store.NewMemoryBlobs()),
		Announcer: caption,
		Quiz:      quiz.NewSeeded(7),
		Clock:     func() time.Time { return time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC) },
		TimeUnit:  time.Millisecond,
		Logger:    zerolog.Nop(),
	})
	if err := e.Select(catalog.RaiseHand); err != nil {
		t.Fatalf("Select: %v", err)
	}
	return New(e, caption), e
}

func update(t *testing.T, s *ActivityScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	scr, cmd := s.Update(msg)
	if scr != screen.Screen(s) {
		t.Fatal("Update returned a different screen")
	}
	return cmd
}

func liveTick(t *testing.T, e *flow.Engine) tickMsg {
	t.Helper()
	tm, ok := e.Timer()
	if !ok {
		t.Fatalf("no live timer in %s", e.State().Phase)
	}
	return tickMsg{ID: tm.ID}
}

func TestInit_SchedulesTick(t *testing.T) {
	s, e := testScreen(t)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should schedule the tutorial tick")
	}
	tm, _ := e.Timer()
	if s.pending != tm.ID {
		t.Errorf("pending = %d, want %d", s.pending, tm.ID)
	}
	if msg, ok := cmd().(tickMsg); !ok || msg.ID != tm.ID {
		t.Errorf("tick = %#v, want tickMsg{%d}", msg, tm.ID)
	}

	if s.Init() != nil {
		t.Error("a second tick was scheduled for the same timer")
	}
}

func TestTicks_DriveTutorialIntoPractice(t *testing.T) {
	s, e := testScreen(t)
	s.Init()

	for i := 0; i < catalog.StepCount; i++ {
		cmd := update(t, s, liveTick(t, e))
		if cmd == nil {
			t.Fatalf("tick %d did not reschedule", i)
		}
	}
	if e.State().Phase != flow.PhasePractice {
		t.Fatalf("phase = %s, want practice", e.State().Phase)
	}
	tm, _ := e.Timer()
	if s.pending != tm.ID {
		t.Errorf("pending = %d, want practice timer %d", s.pending, tm.ID)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	s, e := testScreen(t)
	s.Init()
	stale := liveTick(t, e)

	update(t, s, keyPress('s'))
	if e.State().Phase != flow.PhasePractice {
		t.Fatalf("phase = %s, want practice", e.State().Phase)
	}
	remaining := e.State().Remaining

	if cmd := update(t, s, stale); cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if e.State().Remaining != remaining {
		t.Error("stale tick changed the countdown")
	}
}

func TestFullLoop(t *testing.T) {
	s, e := testScreen(t)
	s.Init()

	update(t, s, keyPress('s'))
	update(t, s, keyPress('s'))
	if e.State().Phase != flow.PhaseQuiz {
		t.Fatalf("phase = %s, want quiz", e.State().Phase)
	}
	view := ansi.Strip(s.View(80, 24))
	want := "Tap the correct step " + string(rune('0'+e.State().QuizPrompt()))
	if !strings.Contains(view, want) {
		t.Errorf("quiz view missing %q:\n%s", want, view)
	}

	cmd := update(t, s, keyPress('1'))
	if cmd == nil {
		t.Fatal("expected a choice command")
	}
	update(t, s, cmd())

	if e.State().Phase != flow.PhaseReward {
		t.Fatalf("phase = %s, want reward", e.State().Phase)
	}
	view = ansi.Strip(s.View(80, 24))
	if !strings.Contains(view, "You earned") || !strings.Contains(view, "Try Again") {
		t.Errorf("reward view:\n%s", view)
	}
	if !strings.Contains(view, "Great job. You earned") {
		t.Errorf("caption missing from reward view:\n%s", view)
	}

	update(t, s, keyPress('r'))
	if e.State().Phase != flow.PhaseTutorial || e.State().Cursor != 0 {
		t.Errorf("after retry: phase=%s cursor=%d", e.State().Phase, e.State().Cursor)
	}
}

func TestQuizSkip(t *testing.T) {
	s, e := testScreen(t)
	update(t, s, keyPress('s'))
	update(t, s, keyPress('s'))
	update(t, s, keyPress('s'))

	if st := e.State(); st.Phase != flow.PhaseReward || st.Stars != 3 {
		t.Errorf("got phase=%s stars=%d, want reward/3", st.Phase, st.Stars)
	}
}

func TestRewardMenu_BackHome(t *testing.T) {
	s, e := testScreen(t)
	update(t, s, keyPress('s'))
	update(t, s, keyPress('s'))
	update(t, s, keyPress('s'))

	update(t, s, specialKey(tea.KeyRight))
	cmd := update(t, s, specialKey(tea.KeyEnter))
	if e.State().Phase != flow.PhaseHome {
		t.Fatalf("phase = %s, want home", e.State().Phase)
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after Back Home")
	}
}

func TestEscGoesHome(t *testing.T) {
	s, e := testScreen(t)
	s.Init()

	if s.caption.Last() == "" {
		t.Fatal("expected the tutorial caption before leaving")
	}
	cmd := update(t, s, specialKey(tea.KeyEscape))
	if e.State().Phase != flow.PhaseHome {
		t.Fatalf("phase = %s, want home", e.State().Phase)
	}
	if got := s.caption.Last(); got != "" {
		t.Errorf("caption = %q after going home, want cleared", got)
	}
	if _, ok := e.Timer(); ok {
		t.Error("timer still live")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViews(t *testing.T) {
	s, e := testScreen(t)

	view := ansi.Strip(s.View(80, 24))
	for _, want := range []string{"First Raise Hand", "Then Reward", "Step 1 of 4", "Look at teacher"} {
		if !strings.Contains(view, want) {
			t.Errorf("tutorial view missing %q", want)
		}
	}

	update(t, s, keyPress('s'))
	view = ansi.Strip(s.View(80, 24))
	if !strings.Contains(view, "0:45") || !strings.Contains(view, "Practice Raise Hand") {
		t.Errorf("practice view:\n%s", view)
	}

	e.ToggleSound()
	if strings.Contains(ansi.Strip(s.View(80, 24)), "♪ ") {
		t.Error("caption shown while muted")
	}
}

func TestKeyHints(t *testing.T) {
	s, _ := testScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
	if s.Title() != "Raise Hand" {
		t.Errorf("Title = %q", s.Title())
	}
}
