package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/screens/lesson"
	"github.com/mwhitten/gitgym/internal/screens/quizrun"
	"github.com/mwhitten/gitgym/internal/tutorial"
)

func TestMenuListsSectionsAndQuiz(t *testing.T) {
	h := New(nil)

	want := len(tutorial.Sections()) + 2
	if len(h.menu.Items) != want {
		t.Fatalf("menu items = %d, want %d", len(h.menu.Items), want)
	}

	view := h.View(100, 40)
	if !strings.Contains(view, "TAKE THE QUIZ") {
		t.Error("view missing the quiz entry")
	}
	if !strings.Contains(view, tutorial.Sections()[0].Title) {
		t.Error("view missing the first section title")
	}
}

func TestEnterOpensLesson(t *testing.T) {
	h := New(nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("Enter produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("pushed screen is %T, want *lesson.LessonScreen", push.Screen)
	}
}

func TestQuizEntryOpensQuiz(t *testing.T) {
	h := New(nil)
	h.menu.Selected = len(tutorial.Sections())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("Enter produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*quizrun.QuizScreen); !ok {
		t.Errorf("pushed screen is %T, want *quizrun.QuizScreen", push.Screen)
	}
}

func TestExitQuits(t *testing.T) {
	h := New(nil)
	h.menu.Selected = len(h.menu.Items) - 1

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command on Enter")
	}
}
