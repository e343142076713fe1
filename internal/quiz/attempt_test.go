package quiz

import (
	"errors"
	"math/rand"
	"testing"
)

func startTestAttempt(t *testing.T, n, k int) *Attempt {
	t.Helper()
	a, err := Start(testPool(n), k, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return a
}

func TestStart_FreshAttempt(t *testing.T) {
	a := startTestAttempt(t, 24, 20)

	if a.State() != StateInProgress {
		t.Errorf("state = %v, want InProgress", a.State())
	}
	if a.Len() != 20 {
		t.Errorf("len = %d, want 20", a.Len())
	}
	if a.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", a.Cursor())
	}
	if a.Unanswered() != 20 {
		t.Errorf("unanswered = %d, want 20", a.Unanswered())
	}
	if a.ID == "" {
		t.Error("attempt has no ID")
	}
}

func TestStart_SampleExceedsPool(t *testing.T) {
	_, err := Start(testPool(18), 20, rand.New(rand.NewSource(1)))
	var cfgErr *InvalidConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want InvalidConfigurationError", err)
	}
}

func TestRecordAnswer_WriteThenRead(t *testing.T) {
	a := startTestAttempt(t, 10, 5)

	if err := a.RecordAnswer(2, ChoiceAnswer(1)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	got, err := a.Answer(2)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got.Kind() != AnswerChoice || got.Choice() != 1 {
		t.Errorf("slot = %+v, want choice(1)", got)
	}
}

func TestRecordAnswer_OverwriteDiscardsPrior(t *testing.T) {
	a := startTestAttempt(t, 10, 5)

	if err := a.RecordAnswer(0, ChoiceAnswer(0)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := a.RecordAnswer(0, ChoiceAnswer(3)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := a.Answer(0)
	if got.Choice() != 3 {
		t.Errorf("slot = choice(%d), want choice(3)", got.Choice())
	}
}

func TestRecordAnswer_Validation(t *testing.T) {
	a := startTestAttempt(t, 10, 5)

	tests := []struct {
		name    string
		slot    int
		ans     Answer
		wantErr error
	}{
		{"out of range low", -1, ChoiceAnswer(0), ErrSlotOutOfRange},
		{"out of range high", 5, ChoiceAnswer(0), ErrSlotOutOfRange},
		{"verdict on choice question", 0, VerdictAnswer(true), ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.RecordAnswer(tt.slot, tt.ans)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNavigation_Clamped(t *testing.T) {
	a := startTestAttempt(t, 10, 3)

	a.Prev() // already at 0, must not move or error
	if a.Cursor() != 0 {
		t.Errorf("cursor = %d after Prev at start, want 0", a.Cursor())
	}

	a.Next()
	a.Next()
	if a.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", a.Cursor())
	}

	a.Next() // at last question, no wraparound
	if a.Cursor() != 2 {
		t.Errorf("cursor = %d after Next at end, want 2", a.Cursor())
	}

	a.Prev()
	if a.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", a.Cursor())
	}
}

func TestSubmit_IncompleteAttempt(t *testing.T) {
	a := startTestAttempt(t, 10, 5)
	for i := 0; i < 3; i++ {
		if err := a.RecordAnswer(i, ChoiceAnswer(0)); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}

	_, err := a.Submit()
	var incErr *IncompleteAttemptError
	if !errors.As(err, &incErr) {
		t.Fatalf("error = %v, want IncompleteAttemptError", err)
	}
	if incErr.Unanswered != 2 {
		t.Errorf("unanswered = %d, want 2", incErr.Unanswered)
	}
	if a.State() != StateInProgress {
		t.Errorf("state = %v after failed submit, want InProgress", a.State())
	}
	if a.Result() != nil {
		t.Error("failed submit produced a result")
	}
}

func TestSubmit_CompletesAndFreezes(t *testing.T) {
	a := startTestAttempt(t, 10, 4)
	for i := 0; i < 4; i++ {
		a.RecordAnswer(i, ChoiceAnswer(0)) // correct index is 0 in testPool
	}

	res, err := a.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if a.State() != StateCompleted {
		t.Errorf("state = %v, want Completed", a.State())
	}
	if res.Correct != 4 || res.Percent != 100 || !res.Passed {
		t.Errorf("result = %+v, want 4 correct, 100%%, passed", res)
	}

	// Completed attempts reject further mutation.
	if err := a.RecordAnswer(0, ChoiceAnswer(1)); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("RecordAnswer after submit: error = %v, want ErrNotInProgress", err)
	}
	if _, err := a.Submit(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("double submit: error = %v, want ErrNotInProgress", err)
	}
	if a.Result() != res {
		t.Error("result changed after completion")
	}
}

func TestRetake_FreshAttempt(t *testing.T) {
	pool := testPool(24)
	rng := rand.New(rand.NewSource(5))

	a, err := Start(pool, 20, rng)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < a.Len(); i++ {
		a.RecordAnswer(i, ChoiceAnswer(0))
	}
	if _, err := a.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	b, err := a.Retake(pool, 20, rng)
	if err != nil {
		t.Fatalf("Retake: %v", err)
	}

	if b.State() != StateInProgress {
		t.Errorf("retake state = %v, want InProgress", b.State())
	}
	if b.Unanswered() != b.Len() {
		t.Errorf("retake has %d unanswered of %d, want all", b.Unanswered(), b.Len())
	}
	if b.ID == a.ID {
		t.Error("retake reused the prior attempt ID")
	}

	// The drawn order should differ with overwhelming probability.
	same := true
	for i := range b.Questions() {
		if b.Questions()[i].Prompt != a.Questions()[i].Prompt {
			same = false
			break
		}
	}
	if same {
		t.Error("retake drew an identical question order")
	}

	// The original attempt's result stays intact.
	if a.State() != StateCompleted || a.Result() == nil {
		t.Error("retake disturbed the completed attempt")
	}
}
