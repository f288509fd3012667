package classy

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/classy"
)

// ThemeFile is the on-disk YAML shape of a custom theme. Palette keys are
// kebab-case token names ("primary", "text-secondary", ...); values are
// style tokens ("blue-600"). Hex entries carry exact brand values and are
// optional.
type ThemeFile struct {
	Name    string            `koanf:"name" validate:"required"`
	Base    string            `koanf:"base"`
	Palette map[string]string `koanf:"palette" validate:"dive,required"`
	Hex     map[string]string `koanf:"hex" validate:"omitempty,dive,hexcolor"`
}

var validate = validator.New()

// LoadThemeFile reads and validates a theme definition from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme file %s: %w", path, err)
	}

	var tf ThemeFile
	if err := k.Unmarshal("", &tf); err != nil {
		return nil, fmt.Errorf("decoding theme file %s: %w", path, err)
	}

	if err := validate.Struct(&tf); err != nil {
		return nil, fmt.Errorf("invalid theme file %s: %w", path, err)
	}

	// Reject unknown token names up front so a typo does not silently
	// fall through to the base palette.
	for key := range tf.Palette {
		if _, ok := tokenByName(key); !ok {
			return nil, fmt.Errorf("theme file %s: unknown palette token %q", path, key)
		}
	}
	for key := range tf.Hex {
		if _, ok := tokenByName(key); !ok {
			return nil, fmt.Errorf("theme file %s: unknown hex token %q", path, key)
		}
	}

	log.Debug().Str("path", path).Str("name", tf.Name).Msg("loaded theme file")
	return &tf, nil
}

// Theme materializes the file definition into a usable theme. The base
// palette comes from the named built-in theme (Ocean when unset) and the
// file's palette entries override it token by token.
func (tf *ThemeFile) Theme() (classy.Theme, error) {
	baseName := tf.Base
	if baseName == "" {
		baseName = "Ocean"
	}

	base, ok := classy.ThemeByName(baseName)
	if !ok {
		return nil, fmt.Errorf("theme %q: unknown base theme %q", tf.Name, baseName)
	}

	palette := base.Palette()
	for key, value := range tf.Palette {
		token, _ := tokenByName(key)
		setPaletteToken(&palette, token, value)
	}

	theme := fileTheme{name: tf.Name, palette: palette}

	if len(tf.Hex) > 0 {
		hex := make(map[classy.ColorToken]string, len(tf.Hex))
		for key, value := range tf.Hex {
			token, _ := tokenByName(key)
			hex[token] = strings.ToUpper(value)
		}
		return hexFileTheme{fileTheme: theme, hex: hex}, nil
	}

	return theme, nil
}

// fileTheme is a theme loaded from a YAML definition.
type fileTheme struct {
	name    string
	palette classy.Palette
}

func (t fileTheme) Name() string            { return t.name }
func (t fileTheme) Palette() classy.Palette { return t.palette }

// hexFileTheme additionally carries brand hex values, making the loaded
// theme eligible for exact-value custom-property export.
type hexFileTheme struct {
	fileTheme
	hex map[classy.ColorToken]string
}

// HexValue returns the brand hex value for a token.
func (t hexFileTheme) HexValue(token classy.ColorToken) string {
	if hex, ok := t.hex[token]; ok {
		return hex
	}
	return "#000000"
}

// tokenByName resolves a kebab-case token name to its ColorToken.
func tokenByName(name string) (classy.ColorToken, bool) {
	for _, token := range classy.ColorTokens() {
		if token.String() == name {
			return token, true
		}
	}
	return 0, false
}

// setPaletteToken writes one palette entry by token.
func setPaletteToken(p *classy.Palette, token classy.ColorToken, value string) {
	switch token {
	case classy.Primary:
		p.Primary = value
	case classy.Secondary:
		p.Secondary = value
	case classy.Accent:
		p.Accent = value
	case classy.Success:
		p.Success = value
	case classy.Warning:
		p.Warning = value
	case classy.Error:
		p.Error = value
	case classy.Info:
		p.Info = value
	case classy.Surface:
		p.Surface = value
	case classy.Background:
		p.Background = value
	case classy.Foreground:
		p.Foreground = value
	case classy.Border:
		p.Border = value
	case classy.TextPrimary:
		p.TextPrimary = value
	case classy.TextSecondary:
		p.TextSecondary = value
	case classy.TextTertiary:
		p.TextTertiary = value
	case classy.TextInverse:
		p.TextInverse = value
	case classy.Interactive:
		p.Interactive = value
	case classy.InteractiveHover:
		p.InteractiveHover = value
	case classy.InteractiveActive:
		p.InteractiveActive = value
	case classy.InteractiveDisabled:
		p.InteractiveDisabled = value
	}
}
