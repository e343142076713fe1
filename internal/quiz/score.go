package quiz

import (
	"errors"
	"math"
)

// PassThreshold is the minimum percentage required to pass.
const PassThreshold = 80

// Result is the scored outcome of a finalized attempt.
type Result struct {
	// Correct is the number of correctly answered questions.
	Correct int

	// Total is the number of drawn questions.
	Total int

	// Percent is round(100 * Correct / Total), half rounded away
	// from zero.
	Percent int

	// Passed is true iff Percent >= PassThreshold.
	Passed bool

	// PerQuestion holds one correctness flag per attempt slot, in
	// attempt order, for the review screen.
	PerQuestion []bool
}

// Score reduces an answer array against its drawn-question array into
// a Result. It is a pure function: no side effects, identical output
// for identical input, safe to recompute.
//
// A choice question is correct iff the stored index equals the
// question's correct option. An interactive question is correct iff
// its checker verdict is "correct"; the scorer never re-evaluates the
// exercise itself.
func Score(questions []Question, answers []Answer) (*Result, error) {
	if len(questions) != len(answers) {
		return nil, errors.New("questions and answers length mismatch")
	}
	if len(questions) == 0 {
		return nil, errors.New("nothing to score")
	}

	res := &Result{
		Total:       len(questions),
		PerQuestion: make([]bool, len(questions)),
	}

	for i, q := range questions {
		correct := false
		ans := answers[i]
		switch q.Kind {
		case KindChoice:
			correct = ans.Kind() == AnswerChoice && ans.Choice() == q.CorrectIndex
		case KindInteractive:
			correct = ans.Kind() == AnswerVerdict && ans.Verdict()
		}
		res.PerQuestion[i] = correct
		if correct {
			res.Correct++
		}
	}

	res.Percent = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	res.Passed = res.Percent >= PassThreshold
	return res, nil
}
