package quizrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/exercise"
	"github.com/mwhitten/gitgym/internal/quiz"
	"github.com/mwhitten/gitgym/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.initErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCannot start the quiz: " + s.initErr.Error())
	}

	var b strings.Builder

	answered := s.attempt.Len() - s.attempt.Unanswered()
	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d    answered %d",
			s.attempt.Cursor()+1, s.attempt.Len(), answered))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("-", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.attempt.Current()

	prompt := lipgloss.NewStyle().
		Width(width - 8).
		PaddingLeft(4).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(prompt.Render(q.Prompt))
	b.WriteString("\n\n")

	switch q.Kind {
	case quiz.KindChoice:
		b.WriteString(s.mc.View())
	case quiz.KindInteractive:
		b.WriteString(s.renderExercise(width))
	}

	if s.warn != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.Error).
			Render(s.warn))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) renderExercise(width int) string {
	if c := s.activeCommandChecker(); c != nil {
		return s.renderCommandExercise(c)
	}
	return s.renderChecklistExercise()
}

func (s *QuizScreen) renderCommandExercise(c exercise.CommandChecker) string {
	slot := s.attempt.Cursor()
	steps := c.Steps()
	inputs := s.cmdInputs[slot]

	var b strings.Builder
	for i, step := range steps {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i < s.cmdStep:
			marker = "$ "
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == s.cmdStep:
			marker = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString("    " + style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, step.Label)))
		b.WriteString("\n")
		if i < s.cmdStep && i < len(inputs) {
			b.WriteString("         " + lipgloss.NewStyle().Foreground(theme.Secondary).Render(inputs[i]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if s.cmdStep < len(steps) {
		b.WriteString("    " + s.input.View())
		b.WriteString("\n")
	} else {
		note := "All steps entered"
		if ans := s.attempt.CurrentAnswer(); ans.Kind() == quiz.AnswerVerdict {
			note += " — answer recorded. Ctrl+R to redo."
		}
		b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(note))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) renderChecklistExercise() string {
	var b strings.Builder
	b.WriteString(s.checklist.View())
	b.WriteString("\n")

	if ans := s.attempt.CurrentAnswer(); ans.Kind() == quiz.AnswerVerdict {
		b.WriteString("    " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Answer recorded — toggle and press Enter to re-check."))
		b.WriteString("\n")
	}

	return b.String()
}
