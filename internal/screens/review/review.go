// Package review shows the scored breakdown of a completed attempt:
// overall result, per-question correctness, and which tutorial section
// to revisit for each miss.
package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/progress"
	"github.com/mwhitten/gitgym/internal/quiz"
	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/screen"
	"github.com/mwhitten/gitgym/internal/screens/certificate"
	"github.com/mwhitten/gitgym/internal/tutorial"
	"github.com/mwhitten/gitgym/internal/ui/components"
	"github.com/mwhitten/gitgym/internal/ui/layout"
	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// ReviewScreen renders a finalized attempt.
type ReviewScreen struct {
	store   *progress.Store
	attempt *quiz.Attempt
	saveErr error
	retake  func() screen.Screen
	scroll  int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen for a completed attempt. retake builds a
// fresh quiz screen so a new attempt can replace this one.
func New(store *progress.Store, attempt *quiz.Attempt, saveErr error, retake func() screen.Screen) *ReviewScreen {
	return &ReviewScreen{
		store:   store,
		attempt: attempt,
		saveErr: saveErr,
		retake:  retake,
	}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Results"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "Retake"},
	}
	if res := r.attempt.Result(); res != nil && res.Passed {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Certificate"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Up/Down", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
	return hints
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		if r.retake == nil {
			return r, nil
		}
		next := r.retake()
		return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case "c":
		res := r.attempt.Result()
		if res == nil || !res.Passed {
			return r, nil
		}
		cs := certificate.New(res.Percent)
		return r, func() tea.Msg { return router.PushScreenMsg{Screen: cs} }

	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		if r.scroll < r.attempt.Len()-1 {
			r.scroll++
		}
	}

	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	res := r.attempt.Result()
	if res == nil {
		return ""
	}

	var b strings.Builder

	verdict := theme.Correct.Render("PASSED")
	if !res.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d of %d correct  •  %d%%  •  ", res.Correct, res.Total, res.Percent)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(summary)+verdict))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(res.Percent)/100, false, 40)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	if !res.Passed {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("You need %d%% to pass. Review the sections below and retake.", quiz.PassThreshold))))
		b.WriteString("\n")
	}
	if r.saveErr != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("could not save result: "+r.saveErr.Error())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Per-question breakdown, windowed by scroll position.
	visible := layout.ContentHeight(height) - 8
	if visible < 3 {
		visible = 3
	}

	questions := r.attempt.Questions()
	start := r.scroll
	if start > len(questions)-1 {
		start = len(questions) - 1
	}
	end := start + visible
	if end > len(questions) {
		end = len(questions)
	}

	for i := start; i < end; i++ {
		q := questions[i]
		mark := theme.Correct.Render("+")
		if !res.PerQuestion[i] {
			mark = theme.Incorrect.Render("x")
		}

		line := fmt.Sprintf("  %s  %2d. %s", mark, i+1, truncate(q.Prompt, width-30))
		b.WriteString(line)

		if !res.PerQuestion[i] {
			if sec, ok := tutorial.ByID(q.Topic); ok {
				b.WriteString(lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Render("  (review: " + sec.Title + ")"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if n < 10 {
		n = 10
	}
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
