// Package classy generates deduplicated utility CSS class strings from
// semantic design intents and an active theme.
//
// classy resolves semantic color tokens through a theme, composes them with
// pattern defaults (typography, actions, cards, states, selections,
// products, layout), and canonicalizes the result so the same configuration
// always renders the same class string.
//
// # Patterns
//
// Patterns capture design intent and render theme-aware classes:
//
//	theme := classy.DefaultTheme()
//	classes := classy.Text(theme).Title().Bold().Classes()
//
// # Builders
//
// Builders target raw CSS composition, including pseudo-class state
// grouping and a string-convenience surface for stringly-typed callers:
//
//	input := classy.InteractiveInput(theme).
//		StandardStyle().
//		Hover().BorderPrimary().
//		Focus().RingPrimary().OutlineNone().
//		Build()
//
// # CLI Tool
//
// classy also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/classy/cmd/classy@latest
package classy
