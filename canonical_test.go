package classy

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		expected  string
	}{
		{
			name:      "empty input",
			fragments: nil,
			expected:  "",
		},
		{
			name:      "single token",
			fragments: []string{"p-4"},
			expected:  "p-4",
		},
		{
			name:      "dedupes exact tokens",
			fragments: []string{"p-4 bg-white p-4"},
			expected:  "bg-white p-4",
		},
		{
			name:      "dedupes across fragments",
			fragments: []string{"p-4 bg-white", "bg-white rounded"},
			expected:  "bg-white p-4 rounded",
		},
		{
			name:      "sorts lexicographically",
			fragments: []string{"text-white", "bg-blue-600", "rounded"},
			expected:  "bg-blue-600 rounded text-white",
		},
		{
			name:      "collapses internal whitespace",
			fragments: []string{"  p-4\t bg-white\n"},
			expected:  "bg-white p-4",
		},
		{
			name:      "drops empty fragments",
			fragments: []string{"", "p-4", "   "},
			expected:  "p-4",
		},
		{
			name:      "near-duplicates stay distinct",
			fragments: []string{"p-4 p-40"},
			expected:  "p-4 p-40",
		},
		{
			name:      "pseudo-prefixed tokens are plain tokens",
			fragments: []string{"hover:bg-blue-600 bg-blue-600"},
			expected:  "bg-blue-600 hover:bg-blue-600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonicalize(tt.fragments...))
		})
	}
}

func TestCanonicalizeProperties(t *testing.T) {
	tokenGen := rapid.StringMatching(`[a-z][a-z0-9:-]{0,11}`)
	fragmentsGen := rapid.SliceOfN(tokenGen, 0, 20)

	t.Run("deterministic", rapid.MakeCheck(func(t *rapid.T) {
		fragments := fragmentsGen.Draw(t, "fragments")
		assert.Equal(t, Canonicalize(fragments...), Canonicalize(fragments...))
	}))

	t.Run("idempotent", rapid.MakeCheck(func(t *rapid.T) {
		fragments := fragmentsGen.Draw(t, "fragments")
		once := Canonicalize(fragments...)
		assert.Equal(t, once, Canonicalize(once))
	}))

	t.Run("sorted with no duplicates", rapid.MakeCheck(func(t *rapid.T) {
		fragments := fragmentsGen.Draw(t, "fragments")
		tokens := strings.Fields(Canonicalize(fragments...))

		assert.True(t, sort.StringsAreSorted(tokens))

		seen := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			assert.False(t, seen[token], "duplicate token %q", token)
			seen[token] = true
		}
	}))

	t.Run("order independent", rapid.MakeCheck(func(t *rapid.T) {
		fragments := fragmentsGen.Draw(t, "fragments")

		reversed := make([]string, len(fragments))
		for i, fragment := range fragments {
			reversed[len(fragments)-1-i] = fragment
		}

		assert.Equal(t, Canonicalize(fragments...), Canonicalize(reversed...))
	}))
}
