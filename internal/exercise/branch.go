package exercise

import "github.com/mwhitten/gitgym/internal/quiz"

// branchPracticeRequired is the number of steps (of three) that must
// match for a correct verdict. Partial credit on this exercise is
// intentional.
const branchPracticeRequired = 2

// branchPractice is the branch/switch/merge exercise.
type branchPractice struct {
	steps []Step
}

// BranchPractice returns the branch-practice checker.
func BranchPractice() CommandChecker {
	return &branchPractice{
		steps: []Step{
			{
				Label:    "Create a branch called feature",
				Expected: "git branch feature",
				Accepted: []string{
					"git switch -c feature",
					"git checkout -b feature",
				},
			},
			{
				Label:    "Switch to the feature branch",
				Expected: "git switch feature",
				Accepted: []string{
					"git checkout feature",
				},
			},
			{
				Label:    "Merge feature into the current branch",
				Expected: "git merge feature",
			},
		},
	}
}

func (c *branchPractice) ID() quiz.ExerciseID { return quiz.ExerciseBranchPractice }

func (c *branchPractice) Title() string { return "Branch Practice" }

func (c *branchPractice) Steps() []Step { return c.steps }

// Evaluate applies the majority rule: at least 2 of the 3 steps must
// match.
func (c *branchPractice) Evaluate(inputs []string) bool {
	matched := 0
	for i, step := range c.steps {
		if i < len(inputs) && step.Matches(inputs[i]) {
			matched++
		}
	}
	return matched >= branchPracticeRequired
}
