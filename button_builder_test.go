package classy

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonClassesFromStrings(t *testing.T) {
	theme := DefaultTheme()

	classes := ButtonClassesFromStrings(theme, "primary", "md", false, false, false)
	tokens := strings.Fields(classes)

	// Canonical output: sorted ascending with no duplicates.
	assert.True(t, sort.StringsAreSorted(tokens))
	seen := make(map[string]bool)
	for _, token := range tokens {
		assert.False(t, seen[token], "duplicate token %q", token)
		seen[token] = true
	}

	// Exactly one background token; the hover variant is a separate
	// hover:-prefixed token.
	backgrounds := 0
	for _, token := range tokens {
		if strings.HasPrefix(token, "bg-") {
			backgrounds++
		}
	}
	assert.Equal(t, 1, backgrounds)
	assert.Contains(t, tokens, "bg-ocean-blue-500")
	assert.Contains(t, tokens, "hover:bg-ocean-blue-600")
}

func TestButtonLoadingTakesPrecedenceOverDisabled(t *testing.T) {
	theme := DefaultTheme()

	classes := ButtonClassesFromStrings(theme, "primary", "md", true, true, false)
	tokens := strings.Fields(classes)

	assert.Contains(t, tokens, "cursor-wait")
	assert.NotContains(t, tokens, "cursor-not-allowed")
	assert.NotContains(t, tokens, "opacity-50")

	// Disabled alone renders the disabled treatment.
	classes = ButtonClassesFromStrings(theme, "primary", "md", true, false, false)
	tokens = strings.Fields(classes)
	assert.Contains(t, tokens, "cursor-not-allowed")
	assert.Contains(t, tokens, "opacity-50")
}

func TestButtonVariantAliases(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name      string
		variant   string
		canonical string
	}{
		{"outline is secondary", "outline", "secondary"},
		{"danger is error", "danger", "error"},
		{"unknown falls back to primary", "sparkly", "primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t,
				ButtonClassesFromStrings(theme, tt.canonical, "md", false, false, false),
				ButtonClassesFromStrings(theme, tt.variant, "md", false, false, false))
		})
	}
}

func TestButtonSizeFallback(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t,
		ButtonClassesFromStrings(theme, "primary", "md", false, false, false),
		ButtonClassesFromStrings(theme, "primary", "enormous", false, false, false))

	tokens := strings.Fields(Button(theme).ExtraLarge().Classes())
	assert.Contains(t, tokens, "px-8")
	assert.Contains(t, tokens, "text-lg")
}

func TestButtonSetterOrderIndependence(t *testing.T) {
	theme := DefaultTheme()

	a := Button(theme).Ghost().Large().FullWidth().Classes()
	b := Button(theme).FullWidth().Large().Ghost().Classes()
	assert.Equal(t, a, b)
}

func TestButtonVariantColors(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		variant  ButtonVariant
		contains []string
	}{
		{"secondary carries border", ButtonSecondary, []string{"bg-white", "border", "border-gray-200"}},
		{"ghost is transparent", ButtonGhost, []string{"bg-transparent", "hover:bg-gray-50"}},
		{"link underlines on hover", ButtonLink, []string{"bg-transparent", "hover:underline", "text-ocean-blue-500"}},
		{"error uses theme error", ButtonError, []string{"bg-red-500", "hover:bg-red-600"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := strings.Fields(Button(theme).Variant(tt.variant).Classes())
			for _, token := range tt.contains {
				assert.Contains(t, tokens, token)
			}
		})
	}
}

func TestButtonFullWidthAndIcon(t *testing.T) {
	theme := DefaultTheme()

	tokens := strings.Fields(Button(theme).FullWidth().WithIcon().Classes())
	assert.Contains(t, tokens, "w-full")
	assert.Contains(t, tokens, "space-x-2")
}
