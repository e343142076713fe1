package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of an attempt.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// String returns the state name for logs and persistence.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Attempt is one learner's run through a sampled subset of the pool.
// It owns all mutable quiz state: the drawn questions, the parallel
// answer slots, the cursor, and the lifecycle state. All mutators
// validate before mutating, so a failed call never corrupts the
// attempt.
//
// Attempts are not safe for concurrent use; the TUI event loop calls
// everything sequentially.
type Attempt struct {
	// ID is a UUID identifying this attempt in the progress store.
	ID string

	// StartedAt is when the attempt was created.
	StartedAt time.Time

	questions []Question
	answers   []Answer
	cursor    int
	state     State
	result    *Result
}

// Start samples k questions from the pool and returns a fresh attempt
// in the InProgress state with every slot unanswered.
//
// If rng is nil a time-seeded source is used.
func Start(pool []Question, k int, rng *rand.Rand) (*Attempt, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	drawn, err := Sample(pool, k, rng)
	if err != nil {
		return nil, err
	}
	return &Attempt{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		questions: drawn,
		answers:   make([]Answer, len(drawn)),
		state:     StateInProgress,
	}, nil
}

// Retake discards this attempt and starts a new one with a freshly
// randomized sample. The old attempt is left untouched (and, if
// completed, its result stays immutable).
func (a *Attempt) Retake(pool []Question, k int, rng *rand.Rand) (*Attempt, error) {
	return Start(pool, k, rng)
}

// State returns the lifecycle state.
func (a *Attempt) State() State { return a.state }

// Len returns the number of drawn questions.
func (a *Attempt) Len() int { return len(a.questions) }

// Questions returns the drawn questions in attempt order. The caller
// must not modify the returned slice.
func (a *Attempt) Questions() []Question { return a.questions }

// Question returns the question at slot i.
func (a *Attempt) Question(i int) (Question, error) {
	if i < 0 || i >= len(a.questions) {
		return Question{}, ErrSlotOutOfRange
	}
	return a.questions[i], nil
}

// Answer returns the answer slot at index i.
func (a *Attempt) Answer(i int) (Answer, error) {
	if i < 0 || i >= len(a.answers) {
		return Answer{}, ErrSlotOutOfRange
	}
	return a.answers[i], nil
}

// Answers returns a copy of the answer slots.
func (a *Attempt) Answers() []Answer {
	out := make([]Answer, len(a.answers))
	copy(out, a.answers)
	return out
}

// Cursor returns the index of the currently displayed question.
func (a *Attempt) Cursor() int { return a.cursor }

// Current returns the question under the cursor.
func (a *Attempt) Current() Question { return a.questions[a.cursor] }

// CurrentAnswer returns the answer slot under the cursor.
func (a *Attempt) CurrentAnswer() Answer { return a.answers[a.cursor] }

// Next moves the cursor forward one question. No-op at the last
// question; there is no wraparound.
func (a *Attempt) Next() {
	if a.cursor < len(a.questions)-1 {
		a.cursor++
	}
}

// Prev moves the cursor back one question. No-op at the first question.
func (a *Attempt) Prev() {
	if a.cursor > 0 {
		a.cursor--
	}
}

// RecordAnswer writes ans into slot i, overwriting any prior value.
// Re-answering before submission is always allowed; only the last
// value counts. Legal only while InProgress, and the answer variant
// must match the question kind.
func (a *Attempt) RecordAnswer(i int, ans Answer) error {
	if a.state != StateInProgress {
		return ErrNotInProgress
	}
	if i < 0 || i >= len(a.answers) {
		return ErrSlotOutOfRange
	}
	if !ans.Matches(a.questions[i].Kind) {
		return ErrKindMismatch
	}
	a.answers[i] = ans
	return nil
}

// Unanswered returns the count of empty answer slots.
func (a *Attempt) Unanswered() int {
	n := 0
	for _, ans := range a.answers {
		if !ans.Answered() {
			n++
		}
	}
	return n
}

// Submit finalizes the attempt: it scores the answers and transitions
// to Completed. Fails with an IncompleteAttemptError (carrying the
// unanswered count) if any slot is empty, in which case no scoring
// happens and the attempt stays InProgress.
func (a *Attempt) Submit() (*Result, error) {
	if a.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	if n := a.Unanswered(); n > 0 {
		return nil, &IncompleteAttemptError{Unanswered: n}
	}

	res, err := Score(a.questions, a.answers)
	if err != nil {
		return nil, err
	}
	a.result = res
	a.state = StateCompleted
	return res, nil
}

// Result returns the scored result of a completed attempt, or nil if
// the attempt has not been submitted.
func (a *Attempt) Result() *Result { return a.result }
