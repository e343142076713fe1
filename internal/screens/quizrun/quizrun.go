// Package quizrun is the screen for taking a quiz attempt: question
// navigation, answer recording, the interactive exercises, and
// submission.
package quizrun

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mwhitten/gitgym/internal/exercise"
	"github.com/mwhitten/gitgym/internal/progress"
	"github.com/mwhitten/gitgym/internal/quiz"
	"github.com/mwhitten/gitgym/internal/router"
	"github.com/mwhitten/gitgym/internal/screen"
	"github.com/mwhitten/gitgym/internal/screens/review"
	"github.com/mwhitten/gitgym/internal/ui/components"
	"github.com/mwhitten/gitgym/internal/ui/layout"
)

// QuizScreen drives one quiz attempt. All engine state lives in the
// Attempt; the screen only keeps per-question input scaffolding.
type QuizScreen struct {
	store   *progress.Store
	attempt *quiz.Attempt
	initErr error

	// Choice question state, rebuilt on navigation.
	mc components.MultiChoice

	// Command exercise state: entered step inputs per attempt slot, so
	// revisiting a question keeps what the learner typed.
	cmdInputs map[int][]string
	cmdStep   int
	input     components.TextInput

	// Checklist exercise state per attempt slot.
	checkStates map[int][]bool
	checklist   components.Checklist

	warn string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New starts a fresh attempt over the full question bank. A sampling
// configuration error is kept and rendered instead of a question.
func New(store *progress.Store) *QuizScreen {
	s := &QuizScreen{
		store:       store,
		cmdInputs:   make(map[int][]string),
		checkStates: make(map[int][]bool),
		input:       components.NewTextInput("Type the git command...", 60),
	}
	s.attempt, s.initErr = quiz.Start(quiz.Pool(), quiz.DefaultSampleSize, nil)
	if s.initErr == nil {
		s.syncCursor()
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.attempt == nil {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", s.attempt.Cursor()+1, s.attempt.Len())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.initErr != nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	}
	hints := []layout.KeyHint{
		{Key: "<- ->", Description: "Questions"},
	}
	if s.attempt.Current().Kind == quiz.KindChoice {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Choose"})
	} else if s.attempt.Current().Kind == quiz.KindInteractive {
		if s.attempt.Current().Exercise == quiz.ExerciseIgnoreBuilder {
			hints = append(hints,
				layout.KeyHint{Key: "Space", Description: "Toggle"},
				layout.KeyHint{Key: "Enter", Description: "Check"},
			)
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "Enter", Description: "Next step"},
				layout.KeyHint{Key: "Ctrl+R", Description: "Redo"},
			)
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit quiz"})
	return hints
}

// syncCursor rebuilds the input widgets for the question under the
// cursor from recorded attempt state.
func (s *QuizScreen) syncCursor() {
	q := s.attempt.Current()
	slot := s.attempt.Cursor()

	switch q.Kind {
	case quiz.KindChoice:
		chosen := -1
		if ans := s.attempt.CurrentAnswer(); ans.Kind() == quiz.AnswerChoice {
			chosen = ans.Choice()
		}
		s.mc = components.NewMultiChoice(q.Options, chosen)

	case quiz.KindInteractive:
		checker, err := exercise.ForID(q.Exercise)
		if err != nil {
			return
		}
		switch c := checker.(type) {
		case exercise.CommandChecker:
			steps := c.Steps()
			if len(s.cmdInputs[slot]) != len(steps) {
				s.cmdInputs[slot] = make([]string, len(steps))
			}
			s.cmdStep = 0
			for i, in := range s.cmdInputs[slot] {
				if in == "" {
					s.cmdStep = i
					break
				}
				if i == len(steps)-1 {
					s.cmdStep = len(steps)
				}
			}
			s.input.Reset()
			if s.cmdStep < len(steps) {
				s.input.SetValue(s.cmdInputs[slot][s.cmdStep])
			}
		case exercise.ChecklistChecker:
			items := c.Items()
			labels := make([]string, len(items))
			for i, item := range items {
				labels[i] = item.Label
			}
			s.checklist = components.NewChecklist(labels, s.checkStates[slot])
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		retake := func() screen.Screen { return New(s.store) }
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: review.New(s.store, s.attempt, msg.err, retake),
			}
		}

	case tea.KeyMsg:
		if s.initErr != nil {
			return s, nil
		}
		return s.handleKey(msg)
	}

	// Forward everything else to the active text input so the cursor
	// blinks while a command exercise is focused.
	if s.initErr == nil && s.activeCommandChecker() != nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left":
		s.attempt.Prev()
		s.warn = ""
		s.syncCursor()
		return s, nil
	case "right":
		s.attempt.Next()
		s.warn = ""
		s.syncCursor()
		return s, nil
	case "ctrl+s":
		return s.submit()
	}

	switch s.attempt.Current().Kind {
	case quiz.KindChoice:
		return s.handleChoiceKey(msg)
	case quiz.KindInteractive:
		return s.handleExerciseKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleChoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var chose bool
	s.mc, _, chose = s.mc.Update(msg)
	if !chose {
		return s, nil
	}

	if err := s.attempt.RecordAnswer(s.attempt.Cursor(), quiz.ChoiceAnswer(s.mc.Chosen)); err != nil {
		s.warn = err.Error()
		return s, nil
	}
	s.warn = ""

	// Move on automatically; the learner can navigate back to change it.
	s.attempt.Next()
	s.syncCursor()
	return s, nil
}

// activeCommandChecker returns the command checker for the current
// question, or nil if the current question is not a command exercise.
func (s *QuizScreen) activeCommandChecker() exercise.CommandChecker {
	q := s.attempt.Current()
	if q.Kind != quiz.KindInteractive {
		return nil
	}
	checker, err := exercise.ForID(q.Exercise)
	if err != nil {
		return nil
	}
	c, ok := checker.(exercise.CommandChecker)
	if !ok {
		return nil
	}
	return c
}

func (s *QuizScreen) handleExerciseKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c := s.activeCommandChecker(); c != nil {
		return s.handleCommandKey(msg, c)
	}
	return s.handleChecklistKey(msg)
}

func (s *QuizScreen) handleCommandKey(msg tea.KeyMsg, c exercise.CommandChecker) (screen.Screen, tea.Cmd) {
	slot := s.attempt.Cursor()
	steps := c.Steps()

	switch msg.String() {
	case "ctrl+r":
		// Start the exercise over; the recorded verdict (if any) stays
		// until the next evaluation overwrites it.
		s.cmdInputs[slot] = make([]string, len(steps))
		s.cmdStep = 0
		s.input.Reset()
		return s, nil

	case "enter":
		if s.cmdStep >= len(steps) {
			return s, nil
		}
		s.cmdInputs[slot][s.cmdStep] = s.input.Value()
		s.cmdStep++
		s.input.Reset()

		if s.cmdStep >= len(steps) {
			// All steps entered: evaluate and record the aggregate
			// verdict. Only the last evaluation before submit counts.
			ok := c.Evaluate(s.cmdInputs[slot])
			if err := s.attempt.RecordAnswer(slot, quiz.VerdictAnswer(ok)); err != nil {
				s.warn = err.Error()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleChecklistKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.attempt.Current()
	checker, err := exercise.ForID(q.Exercise)
	if err != nil {
		return s, nil
	}
	c, ok := checker.(exercise.ChecklistChecker)
	if !ok {
		return s, nil
	}

	slot := s.attempt.Cursor()

	if msg.String() == "enter" {
		states := s.checklist.States()
		s.checkStates[slot] = states
		verdict := c.Evaluate(states)
		if err := s.attempt.RecordAnswer(slot, quiz.VerdictAnswer(verdict)); err != nil {
			s.warn = err.Error()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.checklist, cmd = s.checklist.Update(msg)
	s.checkStates[slot] = s.checklist.States()
	return s, cmd
}

// submit finalizes the attempt. With unanswered slots it reports the
// count and blocks; on success it persists the result and moves to the
// review screen.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	res, err := s.attempt.Submit()
	if err != nil {
		var inc *quiz.IncompleteAttemptError
		if errors.As(err, &inc) {
			s.warn = inc.Error() + "; answer every question before submitting"
		} else {
			s.warn = err.Error()
		}
		return s, nil
	}

	return s, s.saveResult(res)
}

func (s *QuizScreen) saveResult(res *quiz.Result) tea.Cmd {
	store, attempt := s.store, s.attempt
	return func() tea.Msg {
		if store == nil {
			return attemptSavedMsg{}
		}
		err := store.AppendAttempt(context.Background(), progress.AttemptRecord{
			ID:      attempt.ID,
			TakenAt: attempt.StartedAt,
			Correct: res.Correct,
			Total:   res.Total,
			Percent: res.Percent,
			Passed:  res.Passed,
		})
		return attemptSavedMsg{err: err}
	}
}
