package cert

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAssemble(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{"plain name", "Ada Lovelace", "Ada Lovelace", nil},
		{"trims surrounding space", "  Ada Lovelace  ", "Ada Lovelace", nil},
		{"empty name", "", "", ErrMissingInput},
		{"whitespace only", "   \t ", "", ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Assemble(tt.input, 85, date)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if d.Name != tt.wantName {
				t.Errorf("name = %q, want %q", d.Name, tt.wantName)
			}
			if d.Percent != 85 || !d.Date.Equal(date) {
				t.Errorf("details = %+v", d)
			}
		})
	}
}

func TestRender(t *testing.T) {
	d, err := Assemble("Ada Lovelace", 90, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	out := Render(d)
	for _, want := range []string{"CERTIFICATE OF COMPLETION", "Ada Lovelace", "90%", "March 14, 2026"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered certificate missing %q", want)
		}
	}

	// Every line of the frame has equal width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width %d, want %d", i, len(line), len(lines[0]))
		}
	}
}
