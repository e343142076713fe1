// Package cert assembles and renders the completion certificate for a
// passed quiz attempt.
package cert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrMissingInput indicates the learner name was empty after trimming.
var ErrMissingInput = errors.New("learner name is required")

// Details is the data a certificate is rendered from.
type Details struct {
	// Name is the learner-entered name, trimmed.
	Name string

	// Percent is the finalized quiz percentage.
	Percent int

	// Date is the completion date.
	Date time.Time
}

// Assemble validates the learner name and builds certificate details.
// The caller is responsible for only offering a certificate once an
// attempt has been completed and passed.
func Assemble(name string, percent int, date time.Time) (Details, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Details{}, ErrMissingInput
	}
	return Details{Name: name, Percent: percent, Date: date}, nil
}

// certWidth is the inner width of the rendered frame.
const certWidth = 56

// Render produces the plain-text certificate, a framed block suitable
// for the terminal or a printable text file.
func Render(d Details) string {
	lines := []string{
		"",
		"CERTIFICATE OF COMPLETION",
		"",
		"This certifies that",
		"",
		d.Name,
		"",
		"has completed the Git & GitHub tutorial",
		fmt.Sprintf("with a score of %d%%", d.Percent),
		"",
		d.Date.Format("January 2, 2006"),
		"",
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", certWidth) + "+\n")
	for _, line := range lines {
		b.WriteString("|" + center(line, certWidth) + "|\n")
	}
	b.WriteString("+" + strings.Repeat("-", certWidth) + "+\n")
	return b.String()
}

// center pads s to width, centered. Overlong lines are truncated.
func center(s string, width int) string {
	if len(s) > width {
		s = s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Save writes the rendered certificate to a text file and returns its
// path. The file lands in the user's home directory.
func Save(d Details) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	path := filepath.Join(home, fmt.Sprintf("gitgym-certificate-%s.txt", d.Date.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(Render(d)), 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}
