// Package home is the landing screen: the tutorial chapters, the quiz,
// and the learner's standing so far.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/progress"
	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/screen"
	"github.com/mwhitten/gitgym/internal/screens/lesson"
	"github.com/mwhitten/gitgym/internal/screens/quizrun"
	"github.com/mwhitten/gitgym/internal/tutorial"
	"github.com/mwhitten/gitgym/internal/ui/components"
	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	store       *progress.Store
	menu        components.Menu
	lastSection string
	bestPercent int
	passed      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The store may be nil; progress-dependent
// decorations are then simply absent.
func New(store *progress.Store) *HomeScreen {
	h := &HomeScreen{store: store}

	ctx := context.Background()
	if store != nil {
		h.lastSection, _ = store.LastSection(ctx)
		if recs, err := store.Attempts(ctx); err == nil {
			for _, rec := range recs {
				if rec.Percent > h.bestPercent {
					h.bestPercent = rec.Percent
				}
				if rec.Passed {
					h.passed = true
				}
			}
		}
	}

	items := make([]components.MenuItem, 0, len(tutorial.Sections())+2)
	for i, sec := range tutorial.Sections() {
		label := fmt.Sprintf("%d. %s", i+1, sec.Title)
		if sec.ID == h.lastSection {
			label += "  (last viewed)"
		}
		idx := i
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(store, idx)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "TAKE THE QUIZ",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizrun.New(store)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)

	// Land the cursor on the last-viewed section for quick resume.
	if idx := tutorial.IndexOf(h.lastSection); idx >= 0 {
		h.menu.Selected = idx
	}

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Learn Git & GitHub"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("gitgym — hands-on Git, no repo harmed"))
	b.WriteString("\n\n")

	if h.bestPercent > 0 {
		standing := fmt.Sprintf("Best quiz score: %d%%", h.bestPercent)
		if h.passed {
			standing += "  •  tutorial passed"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(standing))
		b.WriteString("\n\n")
	}

	b.WriteString(h.menu.View())
	return b.String()
}
