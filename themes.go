package classy

// HexValuer is implemented by themes that carry exact brand hex values
// alongside their style tokens. Consumers such as the CSS custom-property
// exporter use it when present.
type HexValuer interface {
	// HexValue returns the brand hex value for a token, e.g. "#F97316".
	HexValue(token ColorToken) string
}

// oceanPalette is the default palette. Palette.Resolve falls back to it
// for unset entries, so it must map every token.
var defaultPalette = Palette{
	Primary:   "ocean-blue-500",
	Secondary: "ocean-teal-500",
	Accent:    "ocean-teal-400",

	Success: "green-500",
	Warning: "amber-500",
	Error:   "red-500",
	Info:    "blue-500",

	Surface:    "white",
	Background: "gray-50",
	Foreground: "gray-900",
	Border:     "gray-200",

	TextPrimary:   "gray-900",
	TextSecondary: "gray-600",
	TextTertiary:  "gray-400",
	TextInverse:   "white",

	Interactive:         "ocean-blue-500",
	InteractiveHover:    "ocean-blue-600",
	InteractiveActive:   "ocean-blue-700",
	InteractiveDisabled: "gray-300",
}

// OceanTheme is the default calm, blue-led theme.
type OceanTheme struct {
	palette Palette
}

// NewOceanTheme returns the default Ocean theme.
func NewOceanTheme() OceanTheme {
	return OceanTheme{palette: defaultPalette}
}

// OceanThemeWith returns an Ocean theme with palette overrides applied.
func OceanThemeWith(overrides func(*Palette)) OceanTheme {
	palette := defaultPalette
	if overrides != nil {
		overrides(&palette)
	}
	return OceanTheme{palette: palette}
}

// Name returns the theme name.
func (t OceanTheme) Name() string { return "Ocean" }

// Palette returns the theme palette.
func (t OceanTheme) Palette() Palette { return t.palette }

// DefaultTheme returns the theme used when callers do not pick one.
func DefaultTheme() Theme { return NewOceanTheme() }

var sunrisePalette = Palette{
	Primary:   "sunrise-orange-500",
	Secondary: "sunrise-gold-500",
	Accent:    "sunrise-gold-400",

	Success: "emerald-500",
	Warning: "amber-500",
	Error:   "red-500",
	Info:    "sky-500",

	Surface:    "white",
	Background: "orange-50",
	Foreground: "stone-900",
	Border:     "stone-200",

	TextPrimary:   "stone-900",
	TextSecondary: "stone-600",
	TextTertiary:  "stone-400",
	TextInverse:   "white",

	Interactive:         "sunrise-orange-500",
	InteractiveHover:    "sunrise-orange-600",
	InteractiveActive:   "sunrise-orange-700",
	InteractiveDisabled: "stone-300",
}

var sunriseHex = map[ColorToken]string{
	Primary:             "#F97316",
	Secondary:           "#EAB308",
	Surface:             "#FFFFFF",
	Background:          "#FFF7ED",
	Border:              "#E7E5E4",
	Error:               "#EF4444",
	TextPrimary:         "#1C1917",
	TextSecondary:       "#57534E",
	TextTertiary:        "#A8A29E",
	TextInverse:         "#FFFFFF",
	Interactive:         "#F97316",
	InteractiveHover:    "#EA580C",
	InteractiveActive:   "#C2410C",
	InteractiveDisabled: "#D6D3D1",
}

// SunriseTheme is a warm, orange-led brand theme with exact hex values
// and gradient helpers.
type SunriseTheme struct {
	palette Palette
}

// NewSunriseTheme returns the Sunrise theme.
func NewSunriseTheme() SunriseTheme {
	return SunriseTheme{palette: sunrisePalette}
}

// SunriseThemeWith returns a Sunrise theme with palette overrides applied.
func SunriseThemeWith(overrides func(*Palette)) SunriseTheme {
	palette := sunrisePalette
	if overrides != nil {
		overrides(&palette)
	}
	return SunriseTheme{palette: palette}
}

// Name returns the theme name.
func (t SunriseTheme) Name() string { return "Sunrise" }

// Palette returns the theme palette.
func (t SunriseTheme) Palette() Palette { return t.palette }

// HexValue returns the brand hex value for a token.
func (t SunriseTheme) HexValue(token ColorToken) string {
	if hex, ok := sunriseHex[token]; ok {
		return hex
	}
	return "#000000"
}

// PrimaryGradient returns the primary brand gradient classes.
func (t SunriseTheme) PrimaryGradient() string {
	return "bg-gradient-to-r from-sunrise-orange-500 to-sunrise-orange-600"
}

// SecondaryGradient returns the secondary brand gradient classes.
func (t SunriseTheme) SecondaryGradient() string {
	return "bg-gradient-to-r from-sunrise-gold-400 to-sunrise-gold-500"
}

// HeroGradient returns the large-surface hero gradient classes.
func (t SunriseTheme) HeroGradient() string {
	return "bg-gradient-to-br from-sunrise-orange-400 via-sunrise-orange-500 to-sunrise-gold-500"
}

// BrandGradient returns the mixed-brand gradient classes.
func (t SunriseTheme) BrandGradient() string {
	return "bg-gradient-to-r from-sunrise-orange-500 to-sunrise-gold-500"
}

var monoPalette = Palette{
	Primary:   "slate-900",
	Secondary: "slate-600",
	Accent:    "slate-700",

	Success: "emerald-600",
	Warning: "amber-600",
	Error:   "red-600",
	Info:    "blue-600",

	Surface:    "white",
	Background: "slate-50",
	Foreground: "slate-900",
	Border:     "slate-200",

	TextPrimary:   "slate-900",
	TextSecondary: "slate-600",
	TextTertiary:  "slate-400",
	TextInverse:   "white",

	Interactive:         "slate-900",
	InteractiveHover:    "black",
	InteractiveActive:   "black",
	InteractiveDisabled: "slate-300",
}

var monoHex = map[ColorToken]string{
	Primary:             "#212121",
	Secondary:           "#6B6B6B",
	Surface:             "#FFFFFF",
	Background:          "#F7F7F7",
	Border:              "#E6E6E6",
	Error:               "#C60C0C",
	TextPrimary:         "#212121",
	TextSecondary:       "#6B6B6B",
	TextTertiary:        "#A3A3A3",
	TextInverse:         "#FFFFFF",
	Interactive:         "#212121",
	InteractiveHover:    "#000000",
	InteractiveActive:   "#000000",
	InteractiveDisabled: "#E5E5E5",
}

// MonoTheme is a minimalist monochrome theme with a strong text hierarchy.
type MonoTheme struct {
	palette Palette
}

// NewMonoTheme returns the Mono theme.
func NewMonoTheme() MonoTheme {
	return MonoTheme{palette: monoPalette}
}

// MonoThemeWith returns a Mono theme with palette overrides applied.
func MonoThemeWith(overrides func(*Palette)) MonoTheme {
	palette := monoPalette
	if overrides != nil {
		overrides(&palette)
	}
	return MonoTheme{palette: palette}
}

// Name returns the theme name.
func (t MonoTheme) Name() string { return "Mono" }

// Palette returns the theme palette.
func (t MonoTheme) Palette() Palette { return t.palette }

// HexValue returns the brand hex value for a token.
func (t MonoTheme) HexValue(token ColorToken) string {
	if hex, ok := monoHex[token]; ok {
		return hex
	}
	return "#000000"
}

var neonPalette = Palette{
	Primary:   "fuchsia-500",
	Secondary: "lime-400",
	Accent:    "cyan-400",

	Success: "emerald-400",
	Warning: "orange-400",
	Error:   "rose-400",
	Info:    "violet-400",

	Surface:    "slate-900",
	Background: "black",
	Foreground: "white",
	Border:     "purple-500",

	TextPrimary:   "white",
	TextSecondary: "gray-200",
	TextTertiary:  "gray-400",
	TextInverse:   "black",

	Interactive:         "fuchsia-500",
	InteractiveHover:    "fuchsia-400",
	InteractiveActive:   "fuchsia-600",
	InteractiveDisabled: "gray-600",
}

// NeonTheme is a high-contrast, dark-background theme with vibrant accents.
type NeonTheme struct {
	palette Palette
}

// NewNeonTheme returns the Neon theme.
func NewNeonTheme() NeonTheme {
	return NeonTheme{palette: neonPalette}
}

// NeonThemeWith returns a Neon theme with palette overrides applied.
func NeonThemeWith(overrides func(*Palette)) NeonTheme {
	palette := neonPalette
	if overrides != nil {
		overrides(&palette)
	}
	return NeonTheme{palette: palette}
}

// Name returns the theme name.
func (t NeonTheme) Name() string { return "Neon" }

// Palette returns the theme palette.
func (t NeonTheme) Palette() Palette { return t.palette }

// BuiltinThemes returns the themes that ship with the library.
func BuiltinThemes() []Theme {
	return []Theme{NewOceanTheme(), NewSunriseTheme(), NewMonoTheme(), NewNeonTheme()}
}

// ThemeByName returns the built-in theme with the given name
// (case-sensitive). The second result reports whether it was found.
func ThemeByName(name string) (Theme, bool) {
	for _, theme := range BuiltinThemes() {
		if theme.Name() == name {
			return theme, true
		}
	}
	return nil, false
}
