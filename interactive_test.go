package classy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractiveBuilderGrouping(t *testing.T) {
	theme := DefaultTheme()

	out := InteractiveElement(theme).
		Base("px-4 py-2").
		Hover().BgPrimary().Scale105().
		Focus().RingPrimary().
		Build()

	assert.Equal(t,
		"px-4 py-2 hover:(ocean-blue-500 scale-105) focus:(ring-2 ring-ocean-blue-300 ring-offset-2)",
		out)

	// Each state prefix appears exactly once however many fragments its
	// bucket holds.
	assert.Equal(t, 1, strings.Count(out, "hover:"))
	assert.Equal(t, 1, strings.Count(out, "focus:"))
}

func TestInteractiveBuilderBucketOrder(t *testing.T) {
	theme := DefaultTheme()

	// Focus configured before hover; emission order stays base, hover,
	// focus, active, disabled.
	out := InteractiveElement(theme).
		Focus().OutlineNone().
		Hover().ShadowMd().
		Active().Scale95().
		Disabled().Opacity50().CursorNotAllowed().
		Build()

	assert.Equal(t,
		"hover:(shadow-md) focus:(outline-none) active:(scale-95) disabled:(cursor-not-allowed opacity-50)",
		out)
}

func TestInteractiveBuilderEmptyBucketsOmitted(t *testing.T) {
	theme := DefaultTheme()

	out := InteractiveElement(theme).Base("p-4").Build()
	assert.Equal(t, "p-4", out)
	assert.NotContains(t, out, "hover:")

	assert.Empty(t, InteractiveElement(theme).Build())
}

func TestInteractiveBuilderBaseCanonicalized(t *testing.T) {
	theme := DefaultTheme()

	out := InteractiveElement(theme).
		Base("py-2 px-4 py-2").
		Base("block").
		Build()
	assert.Equal(t, "block px-4 py-2", out)
}

func TestInteractiveBuilderValueSemantics(t *testing.T) {
	theme := DefaultTheme()

	base := InteractiveElement(theme).Base("p-4")
	withHover := base.Hover().ShadowLg()

	// The original builder is unchanged by the derived one.
	assert.Equal(t, "p-4", base.Build())
	assert.Equal(t, "p-4 hover:(shadow-lg)", withHover.Build())
}

func TestInputBuilderStandardStyle(t *testing.T) {
	theme := DefaultTheme()

	out := InteractiveInput(theme).
		StandardStyle().
		Hover().BorderPrimary().
		Focus().RingPrimary().OutlineNone().
		Build()

	assert.Contains(t, out, "border-gray-200")
	assert.Contains(t, out, "bg-white")
	assert.Contains(t, out, "hover:(ocean-blue-500)")
	assert.Contains(t, out, "focus:(outline-none ring-2 ring-ocean-blue-300 ring-offset-2)")
}

func TestButtonBuilderPresets(t *testing.T) {
	theme := DefaultTheme()

	primary := InteractiveButton(theme).Primary().Hover().Darken().Build()
	tokens := strings.Fields(primary)
	assert.Contains(t, tokens, "bg-ocean-blue-500")
	assert.Contains(t, tokens, "text-white")
	assert.Contains(t, tokens, "hover:(ocean-blue-600)")

	secondary := InteractiveButton(theme).Secondary().Build()
	assert.Contains(t, strings.Fields(secondary), "border-gray-200")

	ghost := InteractiveButton(theme).Ghost().Build()
	assert.Contains(t, strings.Fields(ghost), "bg-transparent")
}
