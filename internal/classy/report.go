package classy

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/yacobolo/classy"
)

// Reporter formats palette previews, theme listings, and check findings
// for the terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintPalette outputs the resolved palette of a theme, one token per
// line, with the brand hex value when the theme carries one.
func (r *Reporter) PrintPalette(theme classy.Theme) {
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleHeader, theme.Name()+" palette", r.useColors))

	hexer, hasHex := theme.(classy.HexValuer)
	for _, token := range classy.ColorTokens() {
		line := fmt.Sprintf("  %-22s %s", token.String(), classy.Resolve(theme, token))
		if hasHex {
			hex := hexer.HexValue(token)
			line += "  " + RenderStyle(StyleMuted, hex, r.useColors)
			if swatch := Swatch(hex, r.useColors); swatch != "" {
				line += " " + swatch
			}
		}
		fmt.Fprintln(r.w, line)
	}
}

// Component pairs a sample component name with its rendered classes
type Component struct {
	Name    string `json:"name"`
	Classes string `json:"classes"`
}

// SampleComponents renders one representative class string per surface
// of the library for a theme.
func SampleComponents(theme classy.Theme) []Component {
	return []Component{
		{Name: "title", Classes: classy.Text(theme).Title().Classes()},
		{Name: "body", Classes: classy.BodyTypography(theme).Classes()},
		{Name: "primary-button", Classes: classy.PrimaryButton(theme).Classes()},
		{Name: "secondary-button", Classes: classy.Button(theme).Secondary().Classes()},
		{Name: "card", Classes: classy.Card(theme).Classes()},
		{Name: "glass-card", Classes: classy.GlassCard(theme).Classes()},
		{Name: "input", Classes: classy.InteractiveInput(theme).StandardStyle().Build()},
		{Name: "loading-state", Classes: classy.LoadingState(theme).Classes()},
		{Name: "chip", Classes: classy.ChipSelection(theme).ItemClasses()},
		{Name: "card-footer", Classes: classy.CardFooterLayout(theme).Classes()},
	}
}

// PrintComponents outputs the sample component class strings for a theme.
func (r *Reporter) PrintComponents(theme classy.Theme) {
	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleHeader, "Sample components", r.useColors))

	for _, component := range SampleComponents(theme) {
		fmt.Fprintf(r.w, "  %s\n    %s\n",
			RenderStyle(StyleSuccess, component.Name, r.useColors),
			component.Classes)
	}
}

// PrintThemes outputs the available themes.
func (r *Reporter) PrintThemes(infos []ThemeInfo) {
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleHeader, "Available themes", r.useColors))

	for _, info := range infos {
		hexNote := ""
		if info.HasHex {
			hexNote = " hex"
		}
		fmt.Fprintf(r.w, "  %-12s %s%s\n",
			info.Name,
			RenderStyle(StyleMuted, info.Source, r.useColors),
			RenderStyle(StyleSuccess, hexNote, r.useColors))
	}
}

// PrintFindings outputs check findings sorted by position.
func (r *Reporter) PrintFindings(findings []Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleSuccess, "check passed", r.useColors))
		return
	}

	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Pos.Offset < findings[j].Pos.Offset
	})

	for _, finding := range findings {
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleHeader, fmt.Sprintf("line %d:", finding.Pos.Line), r.useColors),
			RenderStyle(severityStyle(finding.Severity), finding.Severity+":", r.useColors),
			finding.Text)
	}
}

// JSONPreview is the structured preview export schema
type JSONPreview struct {
	Version    string            `json:"version"`
	Timestamp  string            `json:"timestamp"`
	Theme      string            `json:"theme"`
	Palette    map[string]string `json:"palette"`
	Hex        map[string]string `json:"hex,omitempty"`
	Components []Component       `json:"components"`
}

// WritePreviewJSON writes a theme preview as indented JSON.
func WritePreviewJSON(w io.Writer, theme classy.Theme) error {
	palette := make(map[string]string, len(classy.ColorTokens()))
	for _, token := range classy.ColorTokens() {
		palette[token.String()] = classy.Resolve(theme, token)
	}

	var hex map[string]string
	if hexer, ok := theme.(classy.HexValuer); ok {
		hex = make(map[string]string, len(classy.ColorTokens()))
		for _, token := range classy.ColorTokens() {
			hex[token.String()] = hexer.HexValue(token)
		}
	}

	output := JSONPreview{
		Version:    "1.0",
		Timestamp:  time.Now().Format(time.RFC3339),
		Theme:      theme.Name(),
		Palette:    palette,
		Hex:        hex,
		Components: SampleComponents(theme),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteThemesJSON writes the theme listing as indented JSON.
func WriteThemesJSON(w io.Writer, infos []ThemeInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

// WriteFindingsJSON writes check findings as indented JSON.
func WriteFindingsJSON(w io.Writer, findings []Finding) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(findings)
}
