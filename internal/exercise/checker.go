// Package exercise implements the interactive answer checkers for the
// quiz's hands-on questions. Each exercise kind owns its own
// equivalence rule; the quiz engine only ever sees the aggregate
// correct/incorrect verdict a checker produces.
package exercise

import (
	"fmt"
	"strings"

	"github.com/mwhitten/gitgym/internal/quiz"
)

// Checker is the capability shared by all exercise checkers. Concrete
// checkers additionally implement CommandChecker or ChecklistChecker
// depending on how the learner answers.
type Checker interface {
	// ID returns the exercise identifier questions reference.
	ID() quiz.ExerciseID

	// Title returns a short heading for the exercise UI.
	Title() string
}

// CommandChecker evaluates free-text command input, one string per
// step. Implemented by command-workflow and branch-practice.
type CommandChecker interface {
	Checker

	// Steps returns the ordered exercise steps.
	Steps() []Step

	// Evaluate returns the aggregate verdict for the given per-step
	// inputs. Inputs beyond the step count are ignored; missing inputs
	// count as wrong. Evaluate is pure and may be called any number of
	// times; only the last verdict recorded before submission counts.
	Evaluate(inputs []string) bool
}

// ChecklistChecker evaluates a fixed set of checkboxes. Implemented by
// ignore-builder.
type ChecklistChecker interface {
	Checker

	// Items returns the checklist entries in display order.
	Items() []ChecklistItem

	// Evaluate returns the verdict for the given checked states, one
	// per item. Every state must match the item's expected state.
	Evaluate(checked []bool) bool
}

// Step is one expected command within a command exercise.
type Step struct {
	// Label is the instruction shown to the learner.
	Label string

	// Expected is the canonical command.
	Expected string

	// Accepted lists behaviorally equivalent phrasings that also count
	// as correct.
	Accepted []string
}

// Matches reports whether input is the expected command or an accepted
// equivalent, under normalization.
func (s Step) Matches(input string) bool {
	got := Normalize(input)
	if got == "" {
		return false
	}
	if got == Normalize(s.Expected) {
		return true
	}
	for _, alt := range s.Accepted {
		if got == Normalize(alt) {
			return true
		}
	}
	return false
}

// ChecklistItem is one checkbox in a checklist exercise.
type ChecklistItem struct {
	// Label is the entry text shown next to the checkbox.
	Label string

	// ShouldCheck is the expected checked state.
	ShouldCheck bool
}

// Normalize canonicalizes a command string for comparison: trims,
// case-folds, collapses internal whitespace runs to single spaces, and
// maps all quote characters to double quotes.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '\t', '\n':
			space = true
			continue
		case '\'', '‘', '’', '“', '”':
			r = '"'
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ForID returns the checker for the given exercise ID.
func ForID(id quiz.ExerciseID) (Checker, error) {
	switch id {
	case quiz.ExerciseCommandWorkflow:
		return CommandWorkflow(), nil
	case quiz.ExerciseBranchPractice:
		return BranchPractice(), nil
	case quiz.ExerciseIgnoreBuilder:
		return IgnoreBuilder(), nil
	}
	return nil, fmt.Errorf("unknown exercise %q", id)
}
