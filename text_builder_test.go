package classy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStylesUnknownInputsNoOp(t *testing.T) {
	theme := DefaultTheme()

	// An unrecognized size is identical to omitting the size entirely.
	withInvalid := Text(theme).Title().SizeStr("gigantic").Classes()
	without := Text(theme).Title().Classes()
	assert.Equal(t, without, withInvalid)

	assert.Equal(t,
		Text(theme).Classes(),
		Text(theme).WeightStr("heavy").ColorStr("chartreuse").AlignStr("diagonal").Classes())

	// Unknown hierarchy falls back to Body rather than no-opping.
	assert.Equal(t,
		Text(theme).Body().Classes(),
		Text(theme).HierarchyStr("mega-title").Classes())
}

func TestTextStylesShorthands(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t,
		Text(theme).Hierarchy(HierarchyTitle).Weight(WeightBold).Align(TextAlignCenter).Classes(),
		Text(theme).Title().Bold().Center().Classes())

	assert.Equal(t,
		Text(theme).Color(TextColorMuted).Classes(),
		Text(theme).Muted().Classes())
}

func TestTextClassesFromStrings(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		opts     TextOptions
		expected string
	}{
		{
			name:     "hierarchy only",
			opts:     TextOptions{Hierarchy: "title"},
			expected: TitleTypography(theme).Classes(),
		},
		{
			name:     "overrides applied",
			opts:     TextOptions{Hierarchy: "title", Size: "lg", Weight: "light"},
			expected: TitleTypography(theme).Size(TypeSizeLG).Weight(WeightLight).Classes(),
		},
		{
			name:     "unknown values degrade",
			opts:     TextOptions{Hierarchy: "nope", Size: "huge"},
			expected: BodyTypography(theme).Classes(),
		},
		{
			name:     "custom classes appended",
			opts:     TextOptions{Hierarchy: "body", Custom: "mt-4"},
			expected: Text(theme).Body().Custom("mt-4").Classes(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextClassesFromStrings(theme, tt.opts))
		})
	}
}

func TestTextElementFromHierarchy(t *testing.T) {
	assert.Equal(t, "h1", TextElementFromHierarchy("title"))
	assert.Equal(t, "h3", TextElementFromHierarchy("subheading"))
	assert.Equal(t, "span", TextElementFromHierarchy("overline"))
	assert.Equal(t, "code", TextElementFromHierarchy("code"))
	assert.Equal(t, "p", TextElementFromHierarchy("anything-else"))
}

func TestTextClampStyle(t *testing.T) {
	assert.Empty(t, TextClampStyle(0))
	assert.Empty(t, TextClampStyle(-2))
	assert.Contains(t, TextClampStyle(2), "-webkit-line-clamp: 2")
}
