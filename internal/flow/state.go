package flow

import (
	"time"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/quiz"
)

// Phase is a step of the learning loop.
type Phase int

const (
	PhaseHome     Phase = iota // Picking an activity
	PhaseTutorial              // Walking through the four steps
	PhasePractice              // Timed practice countdown
	PhaseQuiz                  // Which one is step N?
	PhaseReward                // Stars earned
)

var phaseNames = [...]string{"home", "tutorial", "practice", "quiz", "reward"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

const (
	// PracticeSeconds is where the practice countdown starts.
	PracticeSeconds = 45

	// TutorialUnits is how many time units each tutorial step stays up.
	TutorialUnits = 5

	// PracticeUnits is how many time units each countdown tick takes.
	PracticeUnits = 1
)

// checkpoints are the remaining-second values that get spoken.
var checkpoints = map[int]bool{30: true, 15: true, 5: true}

// Timer is the single live timer the engine wants. The driver delivers
// Fire(ID) every Every until the engine swaps or clears the timer.
type Timer struct {
	ID    uint64
	Every time.Duration
}

// State is a snapshot of the session. The engine replaces it whole on every
// stimulus, so a State handed out is never modified afterwards.
type State struct {
	// Phase is the current loop phase.
	Phase Phase

	// Activity is the selected activity; nil exactly when Phase is home.
	Activity *catalog.Activity

	// Cursor is the tutorial step on screen, 0..3.
	Cursor int

	// Remaining is the practice countdown in seconds.
	Remaining int

	// Expired records that the countdown reached 0 on its own.
	Expired bool

	// Quiz is the question generated on quiz entry.
	Quiz quiz.Quiz

	// Correct records the last quiz answer's outcome.
	Correct bool

	// Stars is the last earned star count, 1..5 in reward and 0 before.
	Stars int

	// Sound is the announcement toggle.
	Sound bool
}

// TutorialStep returns the text of the step under the cursor.
func (s State) TutorialStep() string {
	if s.Activity == nil {
		return ""
	}
	return s.Activity.Step(s.Cursor)
}

// Elapsed returns how much of the practice countdown is used, in [0, 1].
func (s State) Elapsed() float64 {
	return float64(PracticeSeconds-s.Remaining) / PracticeSeconds
}

// QuizPrompt returns the 1-based step number the quiz asks for.
func (s State) QuizPrompt() int {
	return s.Quiz.TargetIndex + 1
}
