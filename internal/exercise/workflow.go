package exercise

import "github.com/mwhitten/gitgym/internal/quiz"

// commandWorkflow is the stage-and-commit exercise. Every step must
// match for a correct verdict.
type commandWorkflow struct {
	steps []Step
}

// CommandWorkflow returns the command-workflow checker.
func CommandWorkflow() CommandChecker {
	return &commandWorkflow{
		steps: []Step{
			{
				Label:    "Stage index.html",
				Expected: "git add index.html",
				Accepted: []string{
					"git stage index.html",
				},
			},
			{
				Label:    "Commit with the message \"add homepage\"",
				Expected: `git commit -m "add homepage"`,
				Accepted: []string{
					`git commit --message "add homepage"`,
					`git commit -m add homepage`,
				},
			},
		},
	}
}

func (c *commandWorkflow) ID() quiz.ExerciseID { return quiz.ExerciseCommandWorkflow }

func (c *commandWorkflow) Title() string { return "Commit Workflow" }

func (c *commandWorkflow) Steps() []Step { return c.steps }

// Evaluate requires all steps to match.
func (c *commandWorkflow) Evaluate(inputs []string) bool {
	for i, step := range c.steps {
		if i >= len(inputs) || !step.Matches(inputs[i]) {
			return false
		}
	}
	return true
}
