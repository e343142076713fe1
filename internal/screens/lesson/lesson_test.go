package lesson

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/tutorial"
)

func sendTicks(l *LessonScreen, n int) {
	for i := 0; i < n; i++ {
		l.Update(tickMsg(time.Now()))
	}
}

func TestTitleAndStatus(t *testing.T) {
	l := New(nil, 0)
	if l.Title() != tutorial.Sections()[0].Title {
		t.Errorf("Title = %q, want %q", l.Title(), tutorial.Sections()[0].Title)
	}
	want := fmt.Sprintf("Section 1/%d", len(tutorial.Sections()))
	if l.Status() != want {
		t.Errorf("Status = %q, want %q", l.Status(), want)
	}
}

func TestTypingAnimationCompletes(t *testing.T) {
	l := New(nil, 0)

	// Enough ticks to type out every demo command.
	total := 0
	for _, dl := range l.section.Demo {
		total += len(dl.Command) + 2
	}
	sendTicks(l, total)

	if !l.animDone {
		t.Fatal("animation not done after typing every command")
	}

	view := l.renderDemo()
	for _, dl := range l.section.Demo {
		if !strings.Contains(view, dl.Command) {
			t.Errorf("finished demo missing command %q", dl.Command)
		}
		if dl.Output != "" && !strings.Contains(view, dl.Output) {
			t.Errorf("finished demo missing output for %q", dl.Command)
		}
	}
}

func TestSpaceSkipsTyping(t *testing.T) {
	l := New(nil, 0)
	sendTicks(l, 3)

	l.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if !l.animDone {
		t.Error("space did not skip the typing animation")
	}
}

func TestSectionNavigation(t *testing.T) {
	l := New(nil, 0)

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if cmd != nil {
		t.Error("Left on the first section should do nothing")
	}

	_, cmd = l.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected a command on Right")
	}
	repl, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("Right produced %T, want ReplaceScreenMsg", cmd())
	}
	next, ok := repl.Screen.(*LessonScreen)
	if !ok {
		t.Fatalf("replacement screen is %T, want *LessonScreen", repl.Screen)
	}
	if next.index != 1 {
		t.Errorf("next section index = %d, want 1", next.index)
	}

	last := New(nil, len(tutorial.Sections())-1)
	if _, cmd := last.Update(tea.KeyPressMsg{Code: tea.KeyRight}); cmd != nil {
		t.Error("Right on the last section should do nothing")
	}
}
