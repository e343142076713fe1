package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/progress"
	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/screen"
	"github.com/mwhitten/gitgym/internal/tutorial"
	"github.com/mwhitten/gitgym/internal/ui/layout"
	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// typeInterval paces the demo typing animation.
const typeInterval = 40 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(typeInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// LessonScreen shows one tutorial section: prose plus a scripted
// terminal demo typed out line by line. Nothing is executed; the demo
// is canned strings on a timer.
type LessonScreen struct {
	store   *progress.Store
	section tutorial.Section
	index   int // position in tutorial.Sections()

	// Typing animation state over section.Demo.
	line     int // current demo line
	char     int // characters of the current command revealed
	animDone bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.StatusProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the section at index. The store may
// be nil (progress is then not recorded).
func New(store *progress.Store, index int) *LessonScreen {
	secs := tutorial.Sections()
	if index < 0 || index >= len(secs) {
		index = 0
	}
	return &LessonScreen{
		store:   store,
		section: secs[index],
		index:   index,
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{l.recordVisit()}
	if len(l.section.Demo) > 0 {
		cmds = append(cmds, tick())
	} else {
		l.animDone = true
	}
	return tea.Batch(cmds...)
}

// recordVisit persists this section as the last viewed one.
func (l *LessonScreen) recordVisit() tea.Cmd {
	if l.store == nil {
		return nil
	}
	store, id := l.store, l.section.ID
	return func() tea.Msg {
		_ = store.SetLastSection(context.Background(), id)
		return nil
	}
}

func (l *LessonScreen) Title() string {
	return l.section.Title
}

func (l *LessonScreen) Status() string {
	return fmt.Sprintf("Section %d/%d", l.index+1, len(tutorial.Sections()))
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if !l.animDone {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Skip typing"})
	}
	if l.index > 0 {
		hints = append(hints, layout.KeyHint{Key: "<-", Description: "Previous"})
	}
	if l.index < len(tutorial.Sections())-1 {
		hints = append(hints, layout.KeyHint{Key: "->", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	return hints
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return l.advanceTyping()

	case tea.KeyMsg:
		switch msg.String() {
		case "space", "enter":
			if !l.animDone {
				l.skipTyping()
			}
			return l, nil
		case "right", "n":
			if l.index < len(tutorial.Sections())-1 {
				next := New(l.store, l.index+1)
				return l, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		case "left", "p":
			if l.index > 0 {
				prev := New(l.store, l.index-1)
				return l, func() tea.Msg { return router.ReplaceScreenMsg{Screen: prev} }
			}
		}
	}

	return l, nil
}

// advanceTyping reveals one more character of the current demo command.
func (l *LessonScreen) advanceTyping() (screen.Screen, tea.Cmd) {
	if l.animDone {
		return l, nil
	}

	l.char++
	if l.char > len(l.section.Demo[l.line].Command) {
		// Command fully typed; its output appears at once.
		l.line++
		l.char = 0
		if l.line >= len(l.section.Demo) {
			l.animDone = true
			return l, nil
		}
	}
	return l, tick()
}

func (l *LessonScreen) skipTyping() {
	l.line = len(l.section.Demo)
	l.char = 0
	l.animDone = true
}

func (l *LessonScreen) View(width, height int) string {
	var b strings.Builder

	bodyStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 8).
		PaddingLeft(4)

	for _, para := range l.section.Body {
		b.WriteString(bodyStyle.Render(para))
		b.WriteString("\n\n")
	}

	if len(l.section.Demo) > 0 {
		term := theme.Terminal.Width(width - 12).Render(l.renderDemo())
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(term))
		b.WriteString("\n")
	}

	return b.String()
}

// renderDemo renders the demo transcript revealed so far.
func (l *LessonScreen) renderDemo() string {
	var b strings.Builder
	for i, dl := range l.section.Demo {
		switch {
		case i < l.line:
			b.WriteString("$ " + dl.Command + "\n")
			if dl.Output != "" {
				b.WriteString(dl.Output + "\n")
			}
		case i == l.line && !l.animDone:
			b.WriteString("$ " + dl.Command[:min(l.char, len(dl.Command))])
		}
	}
	if l.animDone {
		b.WriteString("$ ")
	}
	return b.String()
}
