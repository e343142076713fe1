package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It records the learner's
// pick without revealing the correct answer; correctness is only shown
// on the review screen after submission.
type MultiChoice struct {
	Options  []string
	Selected int
	Chosen   int // recorded answer index, -1 if unanswered
}

// NewMultiChoice creates a selector over the given options. chosen is
// a previously recorded answer index, or -1.
func NewMultiChoice(options []string, chosen int) MultiChoice {
	selected := 0
	if chosen >= 0 && chosen < len(options) {
		selected = chosen
	}
	return MultiChoice{
		Options:  options,
		Selected: selected,
		Chosen:   chosen,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. It returns true in
// the third result when the learner just chose an option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.Chosen = m.Selected
		return m, nil, true
	}

	return m, nil, false
}

// View renders the option list.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range m.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		marker := " "
		if i == m.Chosen {
			marker = "*"
		}
		cursor := "  "
		if i == m.Selected {
			cursor = "> "
		}

		line := fmt.Sprintf("  %s%s %s)  %s", cursor, marker, label, opt)

		switch {
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
