package classy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypographyHierarchyDefaults(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		pattern  TypographyPattern
		expected string
	}{
		{
			name:     "title",
			pattern:  TitleTypography(theme),
			expected: "font-bold leading-relaxed text-4xl text-gray-900 tracking-tight",
		},
		{
			name:     "heading",
			pattern:  HeadingTypography(theme),
			expected: "font-bold leading-relaxed text-3xl text-gray-900 tracking-tight",
		},
		{
			name:     "body is the constructor default",
			pattern:  Typography(theme),
			expected: "font-normal leading-relaxed text-base text-gray-900",
		},
		{
			name:     "caption auto color is secondary",
			pattern:  CaptionTypography(theme),
			expected: "font-medium leading-relaxed text-gray-600 text-sm",
		},
		{
			name:     "overline auto color is tertiary",
			pattern:  Typography(theme).Hierarchy(HierarchyOverline),
			expected: "font-medium leading-relaxed text-gray-400 text-xs tracking-wider uppercase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pattern.Classes())
		})
	}
}

func TestTypographyOverridePrecedence(t *testing.T) {
	theme := DefaultTheme()

	classes := TitleTypography(theme).Size(TypeSizeLG).Classes()
	tokens := strings.Fields(classes)
	assert.Contains(t, tokens, "text-lg")
	assert.NotContains(t, tokens, "text-4xl", "explicit size must suppress the hierarchy default")

	classes = TitleTypography(theme).Weight(WeightLight).Classes()
	tokens = strings.Fields(classes)
	assert.Contains(t, tokens, "font-light")
	assert.NotContains(t, tokens, "font-bold")

	// Only one text-size token ever survives.
	classes = TitleTypography(theme).Size(TypeSizeSM).Size(TypeSizeXL).Classes()
	sizes := 0
	for _, token := range strings.Fields(classes) {
		switch token {
		case "text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl", "text-3xl", "text-4xl":
			sizes++
		}
	}
	assert.Equal(t, 1, sizes)
}

func TestTypographyColors(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		color    TextColor
		expected string
	}{
		{"primary", TextColorPrimary, "text-ocean-blue-500"},
		{"muted", TextColorMuted, "text-gray-600"},
		{"error", TextColorError, "text-red-500"},
		{"white", TextColorWhite, "text-white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := BodyTypography(theme).Color(tt.color).Classes()
			assert.Contains(t, strings.Fields(classes), tt.expected)
		})
	}
}

func TestTypographyTag(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "h1", TitleTypography(theme).Tag())
	assert.Equal(t, "h2", HeadingTypography(theme).Tag())
	assert.Equal(t, "span", CaptionTypography(theme).Tag())
	assert.Equal(t, "code", CodeTypography(theme).Tag())
	assert.Equal(t, "p", BodyTypography(theme).Tag())

	// Explicit element wins over the hierarchy mapping.
	assert.Equal(t, "div", TitleTypography(theme).Element(ElementDiv).Tag())
}

func TestTypographyOverflow(t *testing.T) {
	theme := DefaultTheme()

	assert.Contains(t, strings.Fields(BodyTypography(theme).Truncate().Classes()), "truncate")

	clamped := BodyTypography(theme).Clamp(3)
	assert.Equal(t,
		"display: -webkit-box; -webkit-line-clamp: 3; -webkit-box-orient: vertical; overflow: hidden;",
		clamped.ClampStyle())
	assert.Empty(t, BodyTypography(theme).ClampStyle())
}

func TestTypographyRepeatedTerminal(t *testing.T) {
	theme := DefaultTheme()
	pattern := TitleTypography(theme).Align(TextAlignCenter)

	first := pattern.Classes()
	second := pattern.Classes()
	assert.Equal(t, first, second)
}
