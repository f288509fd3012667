package classy

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Renderer is anything that renders a class string, which is every pattern
// and builder terminal in this package.
type Renderer interface {
	Classes() string
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func() string

// Classes calls f.
func (f RenderFunc) Classes() string { return f() }

// RenderCache memoizes rendered class strings. Rendering is deterministic,
// so entries never go stale; the TTL only bounds memory on long-lived
// processes that render many distinct configurations.
type RenderCache struct {
	cache *gocache.Cache
}

// NewRenderCache returns a cache whose entries expire after ttl. A ttl of
// zero keeps entries forever.
func NewRenderCache(ttl time.Duration) *RenderCache {
	expiry := ttl
	if expiry == 0 {
		expiry = gocache.NoExpiration
	}
	return &RenderCache{cache: gocache.New(expiry, 10*time.Minute)}
}

// Render returns the cached class string for key, rendering and storing it
// on a miss.
func (rc *RenderCache) Render(key string, r Renderer) string {
	if cached, ok := rc.cache.Get(key); ok {
		return cached.(string)
	}
	classes := r.Classes()
	rc.cache.SetDefault(key, classes)
	return classes
}

// RenderKey builds a cache key from a theme and configuration parts.
func RenderKey(theme Theme, parts ...string) string {
	return theme.Name() + "|" + strings.Join(parts, "|")
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int { return rc.cache.ItemCount() }

// Flush drops all cached entries.
func (rc *RenderCache) Flush() { rc.cache.Flush() }
