package quiz

// Kind discriminates how a question is answered.
type Kind string

const (
	// KindChoice is a multiple-choice question answered by option index.
	KindChoice Kind = "choice"

	// KindInteractive is a hands-on exercise whose checker produces a
	// correct/incorrect verdict.
	KindInteractive Kind = "interactive"
)

// ExerciseID identifies which interactive exercise a question uses.
// The set is closed; each ID maps to one checker in internal/exercise.
type ExerciseID string

const (
	ExerciseCommandWorkflow ExerciseID = "command-workflow"
	ExerciseBranchPractice  ExerciseID = "branch-practice"
	ExerciseIgnoreBuilder   ExerciseID = "ignore-builder"
)

// Question is a single assessable item. Questions are immutable once
// defined; the pool in bank.go is never mutated at runtime.
type Question struct {
	// Prompt is the question text shown to the learner.
	Prompt string

	// Kind selects the answering mode.
	Kind Kind

	// Options holds the ordered answer options (KindChoice only).
	Options []string

	// CorrectIndex is the index into Options of the right answer
	// (KindChoice only).
	CorrectIndex int

	// Exercise names the interactive component (KindInteractive only).
	Exercise ExerciseID

	// Topic is the tutorial section this question belongs to, used for
	// "review this section" links on the review screen.
	Topic string
}

// AnswerKind tags the variant stored in an answer slot.
type AnswerKind int

const (
	// AnswerNone marks an unanswered slot.
	AnswerNone AnswerKind = iota

	// AnswerChoice holds a chosen option index for a choice question.
	AnswerChoice

	// AnswerVerdict holds the checker's verdict for an interactive question.
	AnswerVerdict
)

// Answer is the tagged variant stored in one attempt slot: unanswered,
// a chosen option index, or an exercise verdict. The zero value is
// unanswered.
type Answer struct {
	kind    AnswerKind
	choice  int
	verdict bool
}

// ChoiceAnswer returns an answer holding the chosen option index.
func ChoiceAnswer(optionIndex int) Answer {
	return Answer{kind: AnswerChoice, choice: optionIndex}
}

// VerdictAnswer returns an answer holding an exercise verdict.
func VerdictAnswer(correct bool) Answer {
	return Answer{kind: AnswerVerdict, verdict: correct}
}

// Kind returns the variant tag.
func (a Answer) Kind() AnswerKind { return a.kind }

// Answered reports whether the slot holds a value.
func (a Answer) Answered() bool { return a.kind != AnswerNone }

// Choice returns the stored option index. It is only meaningful when
// Kind() == AnswerChoice.
func (a Answer) Choice() int { return a.choice }

// Verdict returns the stored exercise verdict. It is only meaningful
// when Kind() == AnswerVerdict.
func (a Answer) Verdict() bool { return a.verdict }

// Matches reports whether the answer variant is legal for the question
// kind: choice answers for choice questions, verdicts for interactive
// ones. Unanswered matches either.
func (a Answer) Matches(k Kind) bool {
	switch a.kind {
	case AnswerNone:
		return true
	case AnswerChoice:
		return k == KindChoice
	case AnswerVerdict:
		return k == KindInteractive
	}
	return false
}
