package quiz

import (
	"slices"
	"testing"

	"github.com/abhisek/skillstars/internal/catalog"
)

func raiseHand(t *testing.T) catalog.Activity {
	t.Helper()
	a, err := catalog.Default().Get(catalog.RaiseHand)
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	return a
}

func TestGenerate_TargetUniform(t *testing.T) {
	a := raiseHand(t)
	g := NewSeeded(42)

	const n = 1000
	var counts [catalog.StepCount]int
	for i := 0; i < n; i++ {
		q := g.Generate(a)
		if q.TargetIndex < 0 || q.TargetIndex >= catalog.StepCount {
			t.Fatalf("TargetIndex = %d, out of range", q.TargetIndex)
		}
		counts[q.TargetIndex]++
	}

	// Expected 250 each; chi-square with 3 degrees of freedom, p=0.001 cutoff 16.27.
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - n/catalog.StepCount
		chi2 += d * d / (n / catalog.StepCount)
	}
	if chi2 > 16.27 {
		t.Errorf("target distribution %v not uniform (chi2 = %.2f)", counts, chi2)
	}
}

func TestGenerate_ChoicesArePermutation(t *testing.T) {
	a := raiseHand(t)
	g := NewSeeded(7)

	want := slices.Clone(a.Steps)
	slices.Sort(want)

	for i := 0; i < 1000; i++ {
		q := g.Generate(a)
		got := slices.Clone(q.Choices)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Fatalf("quiz %d choices %v are not a permutation of %v", i, q.Choices, a.Steps)
		}
	}
}

func TestGenerate_DoesNotMutateActivity(t *testing.T) {
	a := raiseHand(t)
	before := slices.Clone(a.Steps)
	g := NewSeeded(1)
	for i := 0; i < 20; i++ {
		g.Generate(a)
	}
	if !slices.Equal(a.Steps, before) {
		t.Errorf("activity steps changed: %v, want %v", a.Steps, before)
	}
}

func TestGenerate_FreshShuffles(t *testing.T) {
	a := raiseHand(t)
	g := NewSeeded(99)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q := g.Generate(a)
		seen[q.Choices[0]+"|"+q.Choices[1]+"|"+q.Choices[2]+"|"+q.Choices[3]] = true
	}
	if len(seen) < 10 {
		t.Errorf("only %d distinct orders in 100 quizzes", len(seen))
	}
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	a := raiseHand(t)
	g1, g2 := NewSeeded(5), NewSeeded(5)
	for i := 0; i < 50; i++ {
		q1, q2 := g1.Generate(a), g2.Generate(a)
		if q1.TargetIndex != q2.TargetIndex || !slices.Equal(q1.Choices, q2.Choices) {
			t.Fatalf("quiz %d differs between equal seeds", i)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	a := raiseHand(t)
	q := Quiz{TargetIndex: 2, Choices: []string{"Wait quietly", "Keep still", "Look at teacher", "Raise one hand high"}}

	if !IsCorrect(a, q, "Keep still") {
		t.Error("expected Keep still to be correct")
	}
	if IsCorrect(a, q, q.Choices[2]) {
		t.Error("position 2 of the shuffled choices should not count as correct")
	}
	if IsCorrect(a, q, Skip) {
		t.Error("skip should never be correct")
	}
	if IsCorrect(a, q, "keep still") {
		t.Error("comparison must be exact")
	}
}

func TestIsCorrect_DuplicateSteps(t *testing.T) {
	a := catalog.Activity{Key: catalog.LineUp, Title: "Line Up", Steps: []string{"Wait", "Face forward", "Wait", "Go"}}
	q := Quiz{TargetIndex: 0, Choices: []string{"Go", "Wait", "Face forward", "Wait"}}

	if !IsCorrect(a, q, q.Choices[1]) || !IsCorrect(a, q, q.Choices[3]) {
		t.Error("either copy of a duplicated step should be accepted")
	}
}

func TestAnswer(t *testing.T) {
	a := raiseHand(t)
	q := Quiz{TargetIndex: 1}
	if got := q.Answer(a); got != "Raise one hand high" {
		t.Errorf("Answer = %q", got)
	}
}

func TestFromSeed(t *testing.T) {
	g, seed, err := FromSeed(99)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if seed != 99 {
		t.Errorf("seed = %d, want 99", seed)
	}
	a := catalog.Default().All()[0]
	if got, want := g.Generate(a), NewSeeded(99).Generate(a); got.TargetIndex != want.TargetIndex {
		t.Errorf("FromSeed(99) diverged from NewSeeded(99)")
	}

	_, random, err := FromSeed(0)
	if err != nil {
		t.Fatalf("FromSeed(0): %v", err)
	}
	if random == 0 {
		t.Error("FromSeed(0) should pick a non-zero seed")
	}
}
