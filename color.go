package classy

// ColorToken identifies a semantic color in a theme palette.
type ColorToken int

// Semantic color tokens. Every theme maps each token to a concrete
// style-token string such as "blue-600".
const (
	Primary ColorToken = iota
	Secondary
	Accent
	Success
	Warning
	Error
	Info
	Surface
	Background
	Foreground
	Border
	TextPrimary
	TextSecondary
	TextTertiary
	TextInverse
	Interactive
	InteractiveHover
	InteractiveActive
	InteractiveDisabled
)

var colorTokenNames = map[ColorToken]string{
	Primary:             "primary",
	Secondary:           "secondary",
	Accent:              "accent",
	Success:             "success",
	Warning:             "warning",
	Error:               "error",
	Info:                "info",
	Surface:             "surface",
	Background:          "background",
	Foreground:          "foreground",
	Border:              "border",
	TextPrimary:         "text-primary",
	TextSecondary:       "text-secondary",
	TextTertiary:        "text-tertiary",
	TextInverse:         "text-inverse",
	Interactive:         "interactive",
	InteractiveHover:    "interactive-hover",
	InteractiveActive:   "interactive-active",
	InteractiveDisabled: "interactive-disabled",
}

// String returns the kebab-case name of the token.
func (c ColorToken) String() string {
	if name, ok := colorTokenNames[c]; ok {
		return name
	}
	return "unknown"
}

// ColorTokens returns all semantic color tokens in declaration order.
func ColorTokens() []ColorToken {
	return []ColorToken{
		Primary, Secondary, Accent,
		Success, Warning, Error, Info,
		Surface, Background, Foreground, Border,
		TextPrimary, TextSecondary, TextTertiary, TextInverse,
		Interactive, InteractiveHover, InteractiveActive, InteractiveDisabled,
	}
}

// Palette maps semantic color tokens to concrete style-token strings.
// A Palette is read-only once built and cheap to copy.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string

	Success string
	Warning string
	Error   string
	Info    string

	Surface    string
	Background string
	Foreground string
	Border     string

	TextPrimary   string
	TextSecondary string
	TextTertiary  string
	TextInverse   string

	Interactive         string
	InteractiveHover    string
	InteractiveActive   string
	InteractiveDisabled string
}

// Resolve returns the concrete style token for a semantic color.
// An unset entry falls back to the default palette so that class
// generation never fails on the render path.
func (p Palette) Resolve(token ColorToken) string {
	value := p.lookup(token)
	if value == "" {
		value = defaultPalette.lookup(token)
	}
	return value
}

func (p Palette) lookup(token ColorToken) string {
	switch token {
	case Primary:
		return p.Primary
	case Secondary:
		return p.Secondary
	case Accent:
		return p.Accent
	case Success:
		return p.Success
	case Warning:
		return p.Warning
	case Error:
		return p.Error
	case Info:
		return p.Info
	case Surface:
		return p.Surface
	case Background:
		return p.Background
	case Foreground:
		return p.Foreground
	case Border:
		return p.Border
	case TextPrimary:
		return p.TextPrimary
	case TextSecondary:
		return p.TextSecondary
	case TextTertiary:
		return p.TextTertiary
	case TextInverse:
		return p.TextInverse
	case Interactive:
		return p.Interactive
	case InteractiveHover:
		return p.InteractiveHover
	case InteractiveActive:
		return p.InteractiveActive
	case InteractiveDisabled:
		return p.InteractiveDisabled
	}
	return ""
}

// Theme supplies a palette and semantic color resolution. Themes are
// read-only after construction and safe to share across goroutines.
type Theme interface {
	// Name returns the human-readable theme name.
	Name() string
	// Palette returns the theme's color palette.
	Palette() Palette
}

// Resolve returns the concrete style token for a semantic color in the
// given theme.
func Resolve(theme Theme, token ColorToken) string {
	return theme.Palette().Resolve(token)
}

// TextClass returns the text color utility class for a token,
// e.g. "text-blue-600".
func TextClass(theme Theme, token ColorToken) string {
	return "text-" + Resolve(theme, token)
}

// BgClass returns the background color utility class for a token.
func BgClass(theme Theme, token ColorToken) string {
	return "bg-" + Resolve(theme, token)
}

// BorderClass returns the border color utility class for a token.
func BorderClass(theme Theme, token ColorToken) string {
	return "border-" + Resolve(theme, token)
}
