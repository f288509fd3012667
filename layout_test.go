package classy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutSectionPresets(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t,
		"border-gray-200 border-t flex flex-row items-center justify-between p-4",
		CardFooterLayout(theme).Classes())

	header := strings.Fields(CardHeaderLayout(theme).Classes())
	assert.Contains(t, header, "border-b")
	assert.Contains(t, header, "border-gray-200")
	assert.Contains(t, header, "p-4")
	assert.NotContains(t, header, "flex")

	content := strings.Fields(CardContentLayout(theme).Classes())
	assert.Contains(t, content, "space-y-4")
	assert.NotContains(t, content, "border-b")
}

func TestLayoutDefaultsOmitFlex(t *testing.T) {
	theme := DefaultTheme()

	// Direction and alignment only emit classes once set.
	assert.Equal(t, "p-4", Layout(theme).Classes())

	tokens := strings.Fields(Layout(theme).Direction(DirectionVertical).Classes())
	assert.Contains(t, tokens, "flex")
	assert.Contains(t, tokens, "flex-col")
}

func TestLayoutSpacingScale(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name    string
		spacing LayoutSpacing
		want    string
	}{
		{"none", LayoutSpacingNone, ""},
		{"xs", LayoutSpacingXS, "p-1"},
		{"sm", LayoutSpacingSM, "p-2"},
		{"md", LayoutSpacingMD, "p-4"},
		{"lg", LayoutSpacingLG, "p-6"},
		{"xl", LayoutSpacingXL, "p-8"},
		{"2xl", LayoutSpacingXL2, "p-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Layout(theme).Spacing(tt.spacing).Classes())
		})
	}
}

func TestLayoutBuilderPresets(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, CardHeaderLayout(theme).Classes(), CardHeaderStyles(theme).Classes())
	assert.Equal(t, CardContentLayout(theme).Classes(), CardContentStyles(theme).Classes())
	assert.Equal(t, CardFooterLayout(theme).Classes(), CardFooterStyles(theme).Classes())

	// Presets stay chainable.
	tokens := strings.Fields(CardFooterStyles(theme).SpacingStr("lg").Classes())
	assert.Contains(t, tokens, "p-6")
	assert.Contains(t, tokens, "justify-between")
}

func TestLayoutClassesFromStrings(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t,
		CardFooterLayout(theme).Classes(),
		LayoutClassesFromStrings(theme, "top", "md", "horizontal", "between", ""))

	// Unknown direction and alignment are ignored rather than defaulted.
	assert.Equal(t, "p-4", LayoutClassesFromStrings(theme, "nowhere", "roomy", "diagonal", "scattered", ""))

	tokens := strings.Fields(LayoutClassesFromStrings(theme, "none", "lg", "", "", "overflow-hidden"))
	assert.Contains(t, tokens, "p-6")
	assert.Contains(t, tokens, "overflow-hidden")
}
