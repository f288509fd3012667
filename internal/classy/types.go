package classy

// ExportConfig holds export pipeline configuration
type ExportConfig struct {
	ThemeName string   // "Ocean", "Sunrise", or a theme-file name
	ThemeDirs []string // Directories searched for theme YAML files
	Includes  []string // Glob patterns for theme files within ThemeDirs
	Prefix    string   // Custom property prefix (default: "color")
	Check     bool     // Tokenize the emitted block after rendering
	Verbose   bool     // Enable debug logging
}

// ExportResult contains export stats
type ExportResult struct {
	ThemeName        string
	VariablesWritten int
	HexVariables     int // Variables backed by exact brand hex values
	Findings         []Finding
	Warnings         []string
}

// ThemeInfo describes a theme available to the CLI
type ThemeInfo struct {
	Name   string `json:"name"`
	Source string `json:"source"` // "built-in" or the theme file path
	HasHex bool   `json:"has_hex"`
}

// OutputFormat represents the CLI output format
type OutputFormat string

const (
	// OutputText renders human-readable terminal output
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags.
// Invalid format strings fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}
