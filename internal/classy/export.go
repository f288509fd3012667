package classy

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/classy"
)

// Export renders a theme's palette as a CSS custom-properties block and
// writes it to w. Themes carrying exact brand hex values emit those;
// otherwise each property references the underlying style-token variable.
func Export(w io.Writer, config ExportConfig) (*ExportResult, error) {
	if config.Prefix == "" {
		config.Prefix = "color"
	}

	theme, err := ResolveTheme(config.ThemeName, config.ThemeDirs, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("resolving theme: %w", err)
	}

	result := &ExportResult{ThemeName: theme.Name()}

	block := RenderCustomProperties(theme, config.Prefix, result)

	if config.Check {
		result.Findings = CheckCustomProperties(block)
		for _, finding := range result.Findings {
			if finding.Severity == SeverityError {
				return result, fmt.Errorf("exported block failed validation: %s", finding.Text)
			}
		}
	}

	if _, err := io.WriteString(w, block); err != nil {
		return result, fmt.Errorf("writing export: %w", err)
	}

	log.Debug().
		Str("theme", result.ThemeName).
		Int("variables", result.VariablesWritten).
		Int("hex", result.HexVariables).
		Msg("exported custom properties")

	return result, nil
}

// RenderCustomProperties builds the :root block for a theme. When result
// is non-nil its counters are updated in place.
func RenderCustomProperties(theme classy.Theme, prefix string, result *ExportResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "/* %s theme */\n", theme.Name())
	b.WriteString(":root {\n")

	hexer, hasHex := theme.(classy.HexValuer)
	for _, token := range classy.ColorTokens() {
		value := "var(--" + classy.Resolve(theme, token) + ")"
		if hasHex {
			value = hexer.HexValue(token)
			if result != nil {
				result.HexVariables++
			}
		}

		fmt.Fprintf(&b, "  --%s-%s: %s;\n", prefix, token.String(), value)
		if result != nil {
			result.VariablesWritten++
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// ResolveTheme finds a theme by name among the built-ins first, then
// among theme files discovered under the given directories.
func ResolveTheme(name string, themeDirs []string, includes []string) (classy.Theme, error) {
	if name == "" {
		return classy.DefaultTheme(), nil
	}

	if theme, ok := classy.ThemeByName(name); ok {
		return theme, nil
	}

	files, err := DiscoverThemeFiles(themeDirs, includes)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		tf, err := LoadThemeFile(path)
		if err != nil {
			// A broken theme file should not mask the lookup; report it
			// only when it is the one being asked for.
			log.Debug().Str("path", path).Err(err).Msg("skipping unreadable theme file")
			continue
		}
		if tf.Name == name {
			return tf.Theme()
		}
	}

	return nil, fmt.Errorf("unknown theme %q", name)
}

// ListThemes returns the built-in themes plus every loadable theme file
// under the given directories.
func ListThemes(themeDirs []string, includes []string) ([]ThemeInfo, error) {
	var infos []ThemeInfo

	for _, theme := range classy.BuiltinThemes() {
		_, hasHex := theme.(classy.HexValuer)
		infos = append(infos, ThemeInfo{
			Name:   theme.Name(),
			Source: "built-in",
			HasHex: hasHex,
		})
	}

	files, err := DiscoverThemeFiles(themeDirs, includes)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		tf, err := LoadThemeFile(path)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping unreadable theme file")
			continue
		}
		infos = append(infos, ThemeInfo{
			Name:   tf.Name,
			Source: path,
			HasHex: len(tf.Hex) > 0,
		})
	}

	return infos, nil
}
