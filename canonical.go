package classy

import (
	"sort"
	"strings"
)

// Canonicalize merges class fragments into one deduplicated, deterministically
// ordered class string. Fragments are split on whitespace, empty tokens are
// dropped, exact duplicates are removed, and the remaining tokens are sorted
// lexicographically and joined with single spaces.
//
// The same token multiset always yields a byte-identical result, regardless of
// fragment ordering or internal whitespace, and canonicalizing an already
// canonical string returns it unchanged.
func Canonicalize(fragments ...string) string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, fragment := range fragments {
		for _, token := range strings.Fields(fragment) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
