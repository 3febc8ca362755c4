// Package flow runs the tutorial, practice, quiz and reward loop for one
// learner and records earned stars into the weekly ledger.
//
// The engine is synchronous and not safe for concurrent use. Callers feed it
// one stimulus at a time: a user action or a Fire for the live timer.
package flow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/quiz"
	"github.com/abhisek/skillstars/internal/stars"
	"github.com/abhisek/skillstars/internal/weekkey"
)

// ErrInvalidAction is returned for an action the current phase does not
// accept. State is left untouched.
var ErrInvalidAction = errors.New("action not valid in current phase")

// DefaultTimeUnit is one second of wall time.
const DefaultTimeUnit = time.Second

// DefaultSaveTimeout bounds a ledger write so a stalled store cannot hold up
// the reward transition.
const DefaultSaveTimeout = 250 * time.Millisecond

// Options configures an Engine. Zero values fall back to production
// defaults.
type Options struct {
	Catalog   *catalog.Catalog
	Repo      *progress.Repo
	Announcer announce.Announcer
	Quiz      *quiz.Generator
	Clock     func() time.Time
	TimeUnit  time.Duration
	Muted     bool
	Logger    zerolog.Logger

	// SaveTimeout bounds each ledger write. Zero means DefaultSaveTimeout.
	SaveTimeout time.Duration
}

// Engine is the activity flow state machine.
type Engine struct {
	catalog *catalog.Catalog
	repo    *progress.Repo
	gate    *announce.Gate
	quiz    *quiz.Generator
	clock   func() time.Time
	unit    time.Duration
	saveTTL time.Duration
	logger  zerolog.Logger
	state   State
	ledger  progress.Ledger
	timer   Timer
	nextID  uint64
	runID   string
}

// New creates an engine in the home phase and loads the ledger. Load
// failures leave an empty ledger.
func New(ctx context.Context, opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Repo == nil {
		opts.Repo = progress.NewRepo(nil)
	}
	if opts.Announcer == nil {
		opts.Announcer = announce.Nop{}
	}
	if opts.Quiz == nil {
		opts.Quiz = quiz.NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TimeUnit <= 0 {
		opts.TimeUnit = DefaultTimeUnit
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultSaveTimeout
	}

	runID := uuid.New().String()
	e := &Engine{
		catalog: opts.Catalog,
		repo:    opts.Repo,
		gate:    announce.NewGate(opts.Announcer, !opts.Muted),
		quiz:    opts.Quiz,
		clock:   opts.Clock,
		unit:    opts.TimeUnit,
		saveTTL: opts.SaveTimeout,
		logger:  opts.Logger.With().Str("component", "flow").Str("run_id", runID).Logger(),
		state:   State{Phase: PhaseHome, Remaining: PracticeSeconds, Sound: !opts.Muted},
		runID:   runID,
	}

	ledger, err := e.repo.Load(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("starting with empty progress")
	}
	e.ledger = ledger
	return e
}

// State returns the current session snapshot.
func (e *Engine) State() State { return e.state }

// Ledger returns the current progress ledger. Callers must not modify it.
func (e *Engine) Ledger() progress.Ledger { return e.ledger }

// WeekKey returns the ISO week key for the engine clock's current date.
func (e *Engine) WeekKey() string { return weekkey.Of(e.clock()) }

// RunID identifies this engine in logs.
func (e *Engine) RunID() string { return e.runID }

// Catalog returns the activities the engine can run.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Timer returns the live timer, or false when none is running.
func (e *Engine) Timer() (Timer, bool) {
	return e.timer, e.timer.ID != 0
}

// Select starts the tutorial for the given skill. Only valid at home.
func (e *Engine) Select(key catalog.SkillKey) error {
	if e.state.Phase != PhaseHome {
		return e.reject("select")
	}
	a, err := e.catalog.Get(key)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	next := e.state
	next.Activity = &a
	e.enterTutorial(next)
	return nil
}

// Skip leaves the tutorial or practice early, or skips the quiz question.
func (e *Engine) Skip() error {
	switch e.state.Phase {
	case PhaseTutorial:
		e.enterPractice(e.state)
		return nil
	case PhasePractice:
		next := e.state
		next.Expired = false
		e.enterQuiz(next)
		return nil
	case PhaseQuiz:
		return e.Answer(quiz.Skip)
	default:
		return e.reject("skip")
	}
}

// Answer submits a quiz choice, awards stars and shows the reward.
func (e *Engine) Answer(choice string) error {
	if e.state.Phase != PhaseQuiz || e.state.Activity == nil {
		return e.reject("answer")
	}

	next := e.state
	next.Correct = quiz.IsCorrect(*next.Activity, next.Quiz, choice)
	next.Stars = stars.Score(next.Expired, next.Correct)
	next.Phase = PhaseReward
	e.clearTimer()
	e.award(next.Activity.Key, next.Stars)
	e.commit(next)
	e.say(fmt.Sprintf("Great job. You earned %d stars", next.Stars))
	return nil
}

// Retry re-runs the whole loop for the same activity.
func (e *Engine) Retry() error {
	if e.state.Phase != PhaseReward {
		return e.reject("retry")
	}
	e.enterTutorial(e.state)
	return nil
}

// Back returns home from any other phase, dropping the live timer.
func (e *Engine) Back() error {
	if e.state.Phase == PhaseHome {
		return e.reject("back")
	}

	next := e.state
	next.Phase = PhaseHome
	next.Activity = nil
	next.Cursor = 0
	next.Remaining = PracticeSeconds
	next.Expired = false
	next.Correct = false
	next.Stars = 0
	next.Quiz = quiz.Quiz{}
	e.clearTimer()
	e.commit(next)
	return nil
}

// ToggleSound flips announcements on or off and returns the new setting.
func (e *Engine) ToggleSound() bool {
	next := e.state
	next.Sound = !e.gate.Enabled()
	e.gate.SetEnabled(next.Sound)
	e.state = next
	e.logger.Debug().Bool("sound", next.Sound).Msg("sound toggled")
	return next.Sound
}

// Fire delivers a tick for timer id. Ticks for any timer other than the live
// one are dropped and Fire reports false.
func (e *Engine) Fire(id uint64) bool {
	if id == 0 || id != e.timer.ID {
		return false
	}

	switch e.state.Phase {
	case PhaseTutorial:
		e.advanceTutorial()
	case PhasePractice:
		e.countDown()
	default:
		e.clearTimer()
		return false
	}
	return true
}

func (e *Engine) advanceTutorial() {
	if e.state.Cursor >= catalog.StepCount-1 {
		e.enterPractice(e.state)
		return
	}

	next := e.state
	next.Cursor++
	e.state = next
	e.say(fmt.Sprintf("Step %d. %s", next.Cursor+1, next.TutorialStep()))
}

func (e *Engine) countDown() {
	next := e.state
	next.Remaining--
	if next.Remaining <= 0 {
		next.Remaining = 0
		next.Expired = true
		e.enterQuiz(next)
		return
	}
	e.state = next
	if checkpoints[next.Remaining] {
		e.say(fmt.Sprintf("%d seconds", next.Remaining))
	}
}

func (e *Engine) enterTutorial(next State) {
	next.Phase = PhaseTutorial
	next.Cursor = 0
	next.Remaining = PracticeSeconds
	next.Expired = false
	next.Correct = false
	next.Stars = 0
	next.Quiz = quiz.Quiz{}
	e.arm(TutorialUnits)
	e.commit(next)
	e.say(fmt.Sprintf("%s. Step 1. %s", next.Activity.Title, next.Activity.Step(0)))
}

func (e *Engine) enterPractice(next State) {
	next.Phase = PhasePractice
	next.Cursor = catalog.StepCount - 1
	next.Remaining = PracticeSeconds
	next.Expired = false
	e.arm(PracticeUnits)
	e.commit(next)
	e.say(fmt.Sprintf("Practice %s for forty five seconds", next.Activity.Title))
}

func (e *Engine) enterQuiz(next State) {
	next.Phase = PhaseQuiz
	next.Quiz = e.quiz.Generate(*next.Activity)
	e.clearTimer()
	e.commit(next)
	e.say("Quiz. Tap the correct step")
}

func (e *Engine) award(skill catalog.SkillKey, n int) {
	week := e.WeekKey()
	e.ledger = progress.Award(e.ledger, week, skill, n)
	e.logger.Info().
		Str("week", week).
		Str("skill", string(skill)).
		Int("stars", n).
		Int("week_total", progress.TotalForWeek(e.ledger, week)).
		Msg("stars awarded")

	// Persistence must not alter or stall the transition.
	ctx, cancel := context.WithTimeout(context.Background(), e.saveTTL)
	defer cancel()
	if err := e.repo.Save(ctx, e.ledger); err != nil {
		e.logger.Warn().Err(err).Msg("progress not saved")
	}
}

// arm replaces the live timer with a fresh one.
func (e *Engine) arm(units int) {
	e.nextID++
	e.timer = Timer{ID: e.nextID, Every: time.Duration(units) * e.unit}
}

func (e *Engine) clearTimer() { e.timer = Timer{} }

func (e *Engine) commit(next State) {
	prev := e.state.Phase
	e.state = next
	if prev != next.Phase {
		ev := e.logger.Debug().Str("from", prev.String()).Str("to", next.Phase.String())
		if next.Activity != nil {
			ev = ev.Str("skill", string(next.Activity.Key))
		}
		ev.Msg("phase change")
	}
}

func (e *Engine) say(text string) {
	e.gate.Announce(text)
}

func (e *Engine) reject(action string) error {
	e.logger.Debug().Str("action", action).Str("phase", e.state.Phase.String()).Msg("rejected action")
	return ErrInvalidAction
}
