package classy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteFallback(t *testing.T) {
	partial := Palette{Primary: "indigo-600"}

	assert.Equal(t, "indigo-600", partial.Resolve(Primary))

	// Unset entries fall back to the default palette; resolution never
	// returns an empty token.
	assert.Equal(t, "gray-200", partial.Resolve(Border))
	for _, token := range ColorTokens() {
		assert.NotEmpty(t, Palette{}.Resolve(token), "token %s", token)
	}
}

func TestColorHelperClasses(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "text-ocean-blue-500", TextClass(theme, Primary))
	assert.Equal(t, "bg-white", BgClass(theme, Surface))
	assert.Equal(t, "border-gray-200", BorderClass(theme, Border))
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"Ocean", true},
		{"Sunrise", true},
		{"Mono", true},
		{"Neon", true},
		{"ocean", false}, // case-sensitive
		{"Nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, ok := ThemeByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, theme)
				assert.Equal(t, tt.name, theme.Name())
			}
		})
	}
}

func TestThemeOverrides(t *testing.T) {
	theme := OceanThemeWith(func(p *Palette) {
		p.Primary = "indigo-600"
	})

	assert.Equal(t, "indigo-600", Resolve(theme, Primary))
	// Untouched entries keep the base palette.
	assert.Equal(t, "ocean-teal-500", Resolve(theme, Secondary))
}

func TestHexValues(t *testing.T) {
	sunrise := NewSunriseTheme()
	assert.Equal(t, "#F97316", sunrise.HexValue(Primary))
	assert.Equal(t, "#000000", sunrise.HexValue(Accent)) // no brand value defined

	mono := NewMonoTheme()
	assert.Equal(t, "#212121", mono.HexValue(Primary))

	// Ocean and Neon carry no hex values at all.
	var theme Theme = NewOceanTheme()
	_, ok := theme.(HexValuer)
	assert.False(t, ok)
}

func TestSunriseGradients(t *testing.T) {
	theme := NewSunriseTheme()

	assert.Contains(t, theme.PrimaryGradient(), "from-sunrise-orange-500")
	assert.Contains(t, theme.HeroGradient(), "via-sunrise-orange-500")
	assert.Contains(t, theme.BrandGradient(), "to-sunrise-gold-500")
}
