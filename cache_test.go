package classy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCache(t *testing.T) {
	cache := NewRenderCache(0)
	theme := DefaultTheme()
	key := RenderKey(theme, "button", "primary", "md")

	calls := 0
	render := RenderFunc(func() string {
		calls++
		return Button(theme).Classes()
	})

	first := cache.Render(key, render)
	second := cache.Render(key, render)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second lookup must hit the cache")
	assert.Equal(t, 1, cache.Len())

	// Distinct keys render independently.
	other := RenderKey(theme, "button", "ghost", "md")
	cache.Render(other, RenderFunc(func() string {
		return Button(theme).Ghost().Classes()
	}))
	assert.Equal(t, 2, cache.Len())

	cache.Flush()
	assert.Equal(t, 0, cache.Len())
}

func TestRenderKeyIncludesTheme(t *testing.T) {
	ocean := RenderKey(NewOceanTheme(), "card")
	neon := RenderKey(NewNeonTheme(), "card")
	assert.NotEqual(t, ocean, neon)
}
