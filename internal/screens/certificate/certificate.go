// Package certificate collects the learner's name and renders the
// completion certificate for a passed attempt.
package certificate

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mwhitten/gitgym/internal/cert"
	"github.com/mwhitten/gitgym/internal/screen"
	"github.com/mwhitten/gitgym/internal/ui/components"
	"github.com/mwhitten/gitgym/internal/ui/layout"
	"github.com/mwhitten/gitgym/internal/ui/theme"
)

// prepareDelay is a short cosmetic pause before the certificate is
// revealed. Purely presentational.
const prepareDelay = 1200 * time.Millisecond

type phase int

const (
	phaseName phase = iota
	phasePreparing
	phaseDone
)

type preparedMsg struct{}

// CertificateScreen walks name entry -> preparing -> certificate.
type CertificateScreen struct {
	percent  int
	phase    phase
	input    components.TextInput
	details  cert.Details
	savePath string
	errMsg   string
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

// New creates a CertificateScreen for the given passing percentage.
func New(percent int) *CertificateScreen {
	return &CertificateScreen{
		percent: percent,
		input:   components.NewTextInput("Your name", 40),
	}
}

func (c *CertificateScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CertificateScreen) Title() string {
	return "Certificate"
}

func (c *CertificateScreen) KeyHints() []layout.KeyHint {
	switch c.phase {
	case phaseName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Save to file"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (c *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case preparedMsg:
		c.phase = phaseDone
		return c, nil

	case tea.KeyMsg:
		switch c.phase {
		case phaseName:
			if msg.String() == "enter" {
				d, err := cert.Assemble(c.input.Value(), c.percent, time.Now())
				if err != nil {
					if errors.Is(err, cert.ErrMissingInput) {
						c.errMsg = "Please enter your name first."
					} else {
						c.errMsg = err.Error()
					}
					return c, nil
				}
				c.errMsg = ""
				c.details = d
				c.phase = phasePreparing
				return c, tea.Tick(prepareDelay, func(time.Time) tea.Msg {
					return preparedMsg{}
				})
			}

		case phaseDone:
			if msg.String() == "ctrl+s" {
				path, err := cert.Save(c.details)
				if err != nil {
					c.errMsg = err.Error()
				} else {
					c.errMsg = ""
					c.savePath = path
				}
				return c, nil
			}
		}
	}

	if c.phase == phaseName {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *CertificateScreen) View(width, height int) string {
	var b strings.Builder

	switch c.phase {
	case phaseName:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("You passed! Whose name goes on the certificate?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.input.View()))
		b.WriteString("\n")

	case phasePreparing:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nPreparing your certificate..."))

	case phaseDone:
		rendered := lipgloss.NewStyle().Foreground(theme.Accent).Render(cert.Render(c.details))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		if c.savePath != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Success).Render("Saved to "+c.savePath)))
		}
	}

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg)))
	}

	return b.String()
}
