package activity

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/stars"
	"github.com/abhisek/skillstars/internal/ui/components"
	"github.com/abhisek/skillstars/internal/ui/theme"
)

func quizQuestion(st flow.State) string {
	return fmt.Sprintf("Tap the correct step %d", st.QuizPrompt())
}

func (s *ActivityScreen) render(cw int) string {
	st := s.engine.State()
	if st.Activity == nil {
		return theme.Hint.Render("Heading home...")
	}

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(renderSchedule(st)))

	switch st.Phase {
	case flow.PhaseTutorial:
		sections = append(sections, s.renderTutorial(st, cw))
	case flow.PhasePractice:
		sections = append(sections, s.renderPractice(st, cw))
	case flow.PhaseQuiz:
		sections = append(sections, center.Render(s.choice.View()))
	case flow.PhaseReward:
		sections = append(sections, s.renderReward(st, cw))
	}

	if c := s.captionLine(st); c != "" {
		sections = append(sections, center.Render(c))
	}

	return strings.Join(sections, "\n\n")
}

// renderSchedule is the "First X, Then Reward" strip with the current
// phase highlighted.
func renderSchedule(st flow.State) string {
	active := 0
	if st.Phase == flow.PhaseReward {
		active = 1
	}
	return components.Chips([]string{"First " + st.Activity.Title, "Then Reward"}, active)
}

func (s *ActivityScreen) renderTutorial(st flow.State, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	heading := theme.Title.Render(st.Activity.Title)
	step := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of %d", st.Cursor+1, catalog.StepCount))
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(st.TutorialStep())

	card := components.Card(center.Width(cw-4).Render(step+"\n\n"+body), cw, true)

	return strings.Join([]string{
		center.Render(heading),
		card,
		center.Render(components.Chips(st.Activity.Steps, st.Cursor)),
		center.Render(s.skip.View()),
	}, "\n")
}

func (s *ActivityScreen) renderPractice(st flow.State, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	heading := theme.Title.Render("Practice " + st.Activity.Title)
	clock := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(components.Countdown(st.Remaining))
	bar := components.NewProgressBar("", st.Elapsed(), fmt.Sprintf("%ds left", st.Remaining), cw-4)

	return strings.Join([]string{
		center.Render(heading),
		center.Render(clock),
		center.Render(bar.View()),
		center.Render(theme.Hint.Render(strings.Join(st.Activity.Steps, " · "))),
		center.Render(s.skip.View()),
	}, "\n")
}

func (s *ActivityScreen) renderReward(st flow.State, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	week := s.engine.WeekKey()
	total := progress.ForSkill(s.engine.Ledger(), week, st.Activity.Key)

	earned := fmt.Sprintf("You earned %d %s", st.Stars, plural(st.Stars, "star", "stars"))
	weekLine := fmt.Sprintf("%s this week: %d", st.Activity.Title, total)

	return strings.Join([]string{
		center.Render(theme.Title.Render(stars.Praise(st.Stars))),
		center.Render(components.StarSlots(st.Stars)),
		center.Render(theme.Body.Render(earned)),
		center.Render(theme.Hint.Render(weekLine)),
		"",
		center.Render(s.reward.View()),
	}, "\n")
}

func (s *ActivityScreen) captionLine(st flow.State) string {
	if s.caption == nil || !st.Sound {
		return ""
	}
	text := s.caption.Last()
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Soft).Render("♪ " + text)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
