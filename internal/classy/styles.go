package classy

import "github.com/charmbracelet/lipgloss"

// Reporter styles, named for their role in the output rather than their
// color. Lipgloss degrades the ANSI palette on limited terminals.
var (
	// StyleHeader marks section headers and palette titles.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError marks error findings and failure messages.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning marks warning findings.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleSuccess marks passing checks and component names.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted marks source labels, hex values, and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// severityStyle maps a finding severity to its display style.
func severityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return StyleError
	}
	return StyleWarning
}

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Swatch renders an inline color block for a brand hex value, so palette
// listings preview the actual color. Without colors it renders nothing.
func Swatch(hex string, useColors bool) string {
	if !useColors {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
