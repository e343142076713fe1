package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// Checklist is a toggle list used by the ignore-builder exercise.
type Checklist struct {
	Labels   []string
	Checked  []bool
	Selected int
}

// NewChecklist creates a checklist over the given labels, all
// unchecked. checked may carry previously toggled states; nil starts
// fresh.
func NewChecklist(labels []string, checked []bool) Checklist {
	if len(checked) != len(labels) {
		checked = make([]bool, len(labels))
	}
	return Checklist{
		Labels:  labels,
		Checked: checked,
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Labels)-1 {
			c.Selected++
		}
	case "space", "x":
		if c.Selected >= 0 && c.Selected < len(c.Checked) {
			c.Checked[c.Selected] = !c.Checked[c.Selected]
		}
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, label := range c.Labels {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}
		cursor := "  "
		if i == c.Selected {
			cursor = "> "
		}

		line := "  " + cursor + box + " " + label

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if c.Checked[i] {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// States returns a copy of the checked states.
func (c Checklist) States() []bool {
	out := make([]bool, len(c.Checked))
	copy(out, c.Checked)
	return out
}
