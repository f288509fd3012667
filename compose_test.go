package classy

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonCompositionOrderIndependence(t *testing.T) {
	theme := DefaultTheme()

	a := ComposeButton(theme).
		PrimaryAction().
		Prominence(ActionHero).
		Interaction(IntensityProminent).
		Classes()

	b := ComposeButton(theme).
		Interaction(IntensityProminent).
		Prominence(ActionHero).
		PrimaryAction().
		Classes()

	assert.Equal(t, a, b)
}

func TestButtonCompositionCanonical(t *testing.T) {
	theme := DefaultTheme()

	tokens := strings.Fields(PrimaryButton(theme).Classes())
	assert.True(t, sort.StringsAreSorted(tokens))

	seen := make(map[string]bool)
	for _, token := range tokens {
		assert.False(t, seen[token], "duplicate token %q", token)
		seen[token] = true
	}
}

func TestButtonCompositionPresetsDiffer(t *testing.T) {
	theme := DefaultTheme()

	primary := PrimaryButton(theme).Classes()
	destructive := DestructiveButton(theme).Classes()
	hero := HeroButton(theme).Classes()

	assert.NotEqual(t, primary, destructive)
	assert.NotEqual(t, primary, hero)
}

func TestButtonCompositionAccessibility(t *testing.T) {
	theme := DefaultTheme()

	attrs := PrimaryButton(theme).
		Disabled(true).
		Loading(true).
		Selected(true).
		AccessibilityAttributes()

	byName := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		byName[attr.Name] = attr.Value
	}

	assert.Equal(t, "true", byName["aria-disabled"])
	assert.Equal(t, "true", byName["aria-busy"])
	assert.Equal(t, "true", byName["aria-pressed"])
	assert.Equal(t, "0", byName["tabindex"])
	assert.Equal(t, "button", byName["role"])
}

func TestButtonCompositionSelected(t *testing.T) {
	theme := DefaultTheme()

	tokens := strings.Fields(PrimaryButton(theme).Selected(true).Classes())
	assert.Contains(t, tokens, "bg-opacity-80")

	tokens = strings.Fields(PrimaryButton(theme).Classes())
	assert.NotContains(t, tokens, "bg-opacity-80")
}

func TestButtonCompositionSemanticInfo(t *testing.T) {
	theme := DefaultTheme()

	info := PrimaryButton(theme).SemanticInfo()
	assert.True(t, info.IsPrimary)
	assert.False(t, info.IsDestructive)

	info = DestructiveButton(theme).Loading(true).SemanticInfo()
	assert.True(t, info.IsDestructive)
	assert.True(t, info.IsLoading)
	assert.Equal(t, IntentDestructive, info.Intent)
}
