package classy

import (
	"strconv"
	"strings"
)

// ringColor derives the focus-ring color token from a palette entry,
// lightening the 500 shade to 300 so the ring reads as an outline rather
// than a fill.
func ringColor(theme Theme, token ColorToken) string {
	resolved := Resolve(theme, token)
	resolved = strings.ReplaceAll(resolved, "bg-", "")
	return strings.ReplaceAll(resolved, "-500", "-300")
}

// FocusBehavior selects how visible keyboard focus should be.
type FocusBehavior int

// Focus behaviors.
const (
	// FocusStandard is the standard focus ring.
	FocusStandard FocusBehavior = iota
	// FocusSubtle is a thin, border-colored ring for dense UI.
	FocusSubtle
	// FocusProminent is a heavy ring for critical actions.
	FocusProminent
	// FocusNone removes the visible ring. Ensure other indicators exist.
	FocusNone
	// FocusCustom emits no ring classes; the caller supplies its own.
	FocusCustom
)

// KeyboardPattern names the keyboard interaction contract of an element.
type KeyboardPattern int

// Keyboard patterns.
const (
	KeyboardButton KeyboardPattern = iota
	KeyboardLink
	KeyboardMenuItem
	KeyboardTab
	KeyboardToggle
	KeyboardExpandable
)

// Attribute is a name/value pair for semantic markup.
type Attribute struct {
	Name  string
	Value string
}

// FocusPattern manages focus rings and the accessibility attributes that go
// with them.
type FocusPattern struct {
	theme      Theme
	behavior   FocusBehavior
	keyboard   KeyboardPattern
	keyboardOK bool
	focusable  bool
	tabIndex   int
	tabIndexOK bool
	custom     []string
}

// Focus returns a focusable pattern with the standard focus ring.
func Focus(theme Theme) FocusPattern {
	return FocusPattern{theme: theme, behavior: FocusStandard, focusable: true}
}

// Behavior sets the focus ring behavior.
func (p FocusPattern) Behavior(b FocusBehavior) FocusPattern {
	p.behavior = b
	return p
}

// Button configures button keyboard and screen-reader semantics.
func (p FocusPattern) Button() FocusPattern {
	p.keyboard = KeyboardButton
	p.keyboardOK = true
	p.behavior = FocusStandard
	return p
}

// Link configures link semantics.
func (p FocusPattern) Link() FocusPattern {
	p.keyboard = KeyboardLink
	p.keyboardOK = true
	p.behavior = FocusStandard
	return p
}

// MenuItem configures menu-item semantics with a subtle ring.
func (p FocusPattern) MenuItem() FocusPattern {
	p.keyboard = KeyboardMenuItem
	p.keyboardOK = true
	p.behavior = FocusSubtle
	return p
}

// Tab configures tab semantics.
func (p FocusPattern) Tab() FocusPattern {
	p.keyboard = KeyboardTab
	p.keyboardOK = true
	p.behavior = FocusStandard
	return p
}

// Toggle configures toggle-button semantics.
func (p FocusPattern) Toggle() FocusPattern {
	p.keyboard = KeyboardToggle
	p.keyboardOK = true
	p.behavior = FocusStandard
	return p
}

// Expandable configures expandable-section semantics.
func (p FocusPattern) Expandable() FocusPattern {
	p.keyboard = KeyboardExpandable
	p.keyboardOK = true
	p.behavior = FocusStandard
	return p
}

// TabIndex overrides the default tabindex attribute.
func (p FocusPattern) TabIndex(index int) FocusPattern {
	p.tabIndex = index
	p.tabIndexOK = true
	return p
}

// Custom appends arbitrary classes to the output.
func (p FocusPattern) Custom(classes string) FocusPattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the focus classes for the configuration.
func (p FocusPattern) Classes() string {
	var fragments []string

	if p.focusable {
		fragments = append(fragments, "focus:outline-none")

		switch p.behavior {
		case FocusStandard:
			fragments = append(fragments,
				"focus:ring-2 focus:ring-offset-2 focus:ring-"+ringColor(p.theme, Primary))
		case FocusSubtle:
			border := strings.ReplaceAll(Resolve(p.theme, Border), "border-", "")
			fragments = append(fragments,
				"focus:ring-1 focus:ring-offset-1 focus:ring-"+border)
		case FocusProminent:
			fragments = append(fragments,
				"focus:ring-4 focus:ring-offset-2 focus:ring-"+ringColor(p.theme, Primary))
		case FocusNone:
			fragments = append(fragments, "focus:ring-0")
		case FocusCustom:
		}
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}

// DataAttributes returns the semantic attributes for the configuration.
func (p FocusPattern) DataAttributes() []Attribute {
	var attrs []Attribute

	if p.tabIndexOK {
		attrs = append(attrs, Attribute{"tabindex", strconv.Itoa(p.tabIndex)})
	} else if p.focusable {
		attrs = append(attrs, Attribute{"tabindex", "0"})
	}

	if p.keyboardOK {
		role := "button"
		switch p.keyboard {
		case KeyboardLink:
			role = "link"
		case KeyboardMenuItem:
			role = "menuitem"
		case KeyboardTab:
			role = "tab"
		}
		attrs = append(attrs, Attribute{"role", role})

		switch p.keyboard {
		case KeyboardToggle:
			attrs = append(attrs, Attribute{"aria-pressed", "false"})
		case KeyboardExpandable:
			attrs = append(attrs, Attribute{"aria-expanded", "false"})
		}
	}

	return attrs
}
