package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/skillstars/internal/catalog"
)

// Skip is the answer submitted when the learner skips the quiz. Catalog steps
// are never blank, so it never matches.
const Skip = ""

// Quiz is one multiple-choice question: "which one is step TargetIndex+1?".
type Quiz struct {
	// TargetIndex is the step the learner must find, in [0, StepCount).
	TargetIndex int

	// Choices holds every step of the activity in presentation order.
	Choices []string
}

// Generator builds quizzes from an injected random source so tests can
// reproduce a sequence by seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator with a PCG source for the given seed.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate picks a uniform target step and a fresh shuffle of all steps.
func (g *Generator) Generate(a catalog.Activity) Quiz {
	choices := make([]string, len(a.Steps))
	copy(choices, a.Steps)
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	target := 0
	if len(a.Steps) > 0 {
		target = g.rng.IntN(len(a.Steps))
	}
	return Quiz{TargetIndex: target, Choices: choices}
}

// Answer returns the correct step text for q.
func (q Quiz) Answer(a catalog.Activity) string {
	return a.Step(q.TargetIndex)
}

// IsCorrect reports whether choice matches the target step by value, not by
// its shuffled position. Duplicate step texts are therefore all accepted.
func IsCorrect(a catalog.Activity, q Quiz, choice string) bool {
	answer := q.Answer(a)
	return answer != "" && choice == answer
}
