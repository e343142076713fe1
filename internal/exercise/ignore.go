package exercise

import "github.com/mwhitten/gitgym/internal/quiz"

// ignoreBuilder is the .gitignore checklist exercise. Every checkbox
// must match its expected state; there is no partial credit.
type ignoreBuilder struct {
	items []ChecklistItem
}

// IgnoreBuilder returns the ignore-builder checker.
func IgnoreBuilder() ChecklistChecker {
	return &ignoreBuilder{
		items: []ChecklistItem{
			{Label: "node_modules/", ShouldCheck: true},
			{Label: ".env", ShouldCheck: true},
			{Label: "*.log", ShouldCheck: true},
			{Label: "dist/", ShouldCheck: true},
			{Label: "index.html", ShouldCheck: false},
			{Label: "README.md", ShouldCheck: false},
			{Label: "src/", ShouldCheck: false},
		},
	}
}

func (c *ignoreBuilder) ID() quiz.ExerciseID { return quiz.ExerciseIgnoreBuilder }

func (c *ignoreBuilder) Title() string { return "Build a .gitignore" }

func (c *ignoreBuilder) Items() []ChecklistItem { return c.items }

// Evaluate requires checked to mirror every item's expected state
// exactly.
func (c *ignoreBuilder) Evaluate(checked []bool) bool {
	if len(checked) != len(c.items) {
		return false
	}
	for i, item := range c.items {
		if checked[i] != item.ShouldCheck {
			return false
		}
	}
	return true
}
