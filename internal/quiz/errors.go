package quiz

import (
	"errors"
	"fmt"
)

// ErrNotInProgress indicates a mutation was attempted on an attempt
// that is not in the InProgress state.
var ErrNotInProgress = errors.New("attempt is not in progress")

// ErrSlotOutOfRange indicates a question index outside [0, Len).
var ErrSlotOutOfRange = errors.New("question index out of range")

// ErrKindMismatch indicates an answer variant that does not fit the
// question kind (e.g. a verdict recorded for a choice question).
var ErrKindMismatch = errors.New("answer kind does not match question kind")

// InvalidConfigurationError indicates the requested sample size exceeds
// the question pool. This is a startup-time configuration fault, not a
// learner-facing condition.
type InvalidConfigurationError struct {
	PoolSize   int
	SampleSize int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("sample size %d exceeds pool size %d", e.SampleSize, e.PoolSize)
}

// IncompleteAttemptError indicates a submit with unanswered slots.
// Unanswered carries the count so the UI can report it to the learner.
type IncompleteAttemptError struct {
	Unanswered int
}

func (e *IncompleteAttemptError) Error() string {
	if e.Unanswered == 1 {
		return "1 question is still unanswered"
	}
	return fmt.Sprintf("%d questions are still unanswered", e.Unanswered)
}
