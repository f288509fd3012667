package classy

// ButtonComposition assembles action semantics, interactive behavior, and
// focus management into one complete button treatment. It is the top of the
// pattern stack: each sub-pattern renders independently and the results are
// merged through the canonicalizer.
type ButtonComposition struct {
	theme    Theme
	disabled bool
	loading  bool
	selected bool

	action      ActionPattern
	interactive InteractivePattern
	focus       FocusPattern

	custom []string
}

// ComposeButton returns a button composition with secondary standalone
// defaults and full interactive behavior.
func ComposeButton(theme Theme) ButtonComposition {
	return ButtonComposition{
		theme: theme,
		action: Action(theme).
			Intent(IntentSecondary).
			Context(ContextStandalone),
		interactive: Interaction(theme).
			Hoverable().
			Focusable().
			Pressable().
			Intensity(IntensityStandard),
		focus: Focus(theme).Button(),
	}
}

// PrimaryButton returns a primary action composition.
func PrimaryButton(theme Theme) ButtonComposition {
	return ComposeButton(theme).
		PrimaryAction().
		Prominence(ActionPrimary).
		Interaction(IntensityStandard)
}

// SecondaryButton returns a secondary action composition.
func SecondaryButton(theme Theme) ButtonComposition {
	return ComposeButton(theme).
		SecondaryAction().
		Prominence(ActionSecondary).
		Interaction(IntensityStandard)
}

// DestructiveButton returns a destructive action composition.
func DestructiveButton(theme Theme) ButtonComposition {
	return ComposeButton(theme).
		DestructiveAction().
		Prominence(ActionSecondary).
		Interaction(IntensityStandard)
}

// HeroButton returns a hero call-to-action composition.
func HeroButton(theme Theme) ButtonComposition {
	return ComposeButton(theme).
		PrimaryAction().
		Prominence(ActionHero).
		Interaction(IntensityProminent).
		ProminentFocus()
}

// NavigationButton returns a navigation composition for menus.
func NavigationButton(theme Theme) ButtonComposition {
	return ComposeButton(theme).
		NavigationAction().
		Prominence(ActionTertiary).
		Interaction(IntensityGentle).
		MenuItemFocus()
}

// ButtonLinkComposition returns a link that behaves like a button.
func ButtonLinkComposition(theme Theme) ButtonComposition {
	c := ComposeButton(theme).
		SecondaryAction().
		Interaction(IntensityGentle).
		LinkFocus()
	c.action = c.action.Context(ContextInline)
	return c
}

// PrimaryAction sets the primary action intent.
func (c ButtonComposition) PrimaryAction() ButtonComposition {
	c.action = c.action.Intent(IntentPrimary)
	return c
}

// SecondaryAction sets the secondary action intent.
func (c ButtonComposition) SecondaryAction() ButtonComposition {
	c.action = c.action.Intent(IntentSecondary)
	return c
}

// DestructiveAction sets the destructive action intent.
func (c ButtonComposition) DestructiveAction() ButtonComposition {
	c.action = c.action.Intent(IntentDestructive)
	return c
}

// NavigationAction sets the navigation action intent.
func (c ButtonComposition) NavigationAction() ButtonComposition {
	c.action = c.action.Intent(IntentNavigation)
	return c
}

// Prominence sets the action hierarchy.
func (c ButtonComposition) Prominence(h ActionHierarchy) ButtonComposition {
	c.action = c.action.Hierarchy(h)
	return c
}

// Context sets the action context.
func (c ButtonComposition) Context(ctx ActionContext) ButtonComposition {
	c.action = c.action.Context(ctx)
	return c
}

// Urgent marks the action urgent.
func (c ButtonComposition) Urgent() ButtonComposition {
	c.action = c.action.Urgent()
	return c
}

// Interaction sets the interactive effect intensity.
func (c ButtonComposition) Interaction(i Intensity) ButtonComposition {
	c.interactive = c.interactive.Intensity(i)
	return c
}

// MenuItemFocus applies menu-item focus behavior.
func (c ButtonComposition) MenuItemFocus() ButtonComposition {
	c.focus = Focus(c.theme).MenuItem()
	return c
}

// LinkFocus applies link focus behavior.
func (c ButtonComposition) LinkFocus() ButtonComposition {
	c.focus = Focus(c.theme).Link()
	return c
}

// ToggleFocus applies toggle focus behavior.
func (c ButtonComposition) ToggleFocus() ButtonComposition {
	c.focus = Focus(c.theme).Toggle()
	return c
}

// SubtleFocus applies subtle focus behavior.
func (c ButtonComposition) SubtleFocus() ButtonComposition {
	c.focus = c.focus.Behavior(FocusSubtle)
	return c
}

// ProminentFocus applies prominent focus behavior.
func (c ButtonComposition) ProminentFocus() ButtonComposition {
	c.focus = c.focus.Behavior(FocusProminent)
	return c
}

// Disabled sets the disabled state.
func (c ButtonComposition) Disabled(disabled bool) ButtonComposition {
	c.disabled = disabled
	if disabled {
		c.interactive = c.interactive.Disabled()
	}
	return c
}

// Loading sets the loading state.
func (c ButtonComposition) Loading(loading bool) ButtonComposition {
	c.loading = loading
	if loading {
		c.interactive = c.interactive.Loading()
	}
	return c
}

// Selected sets the selected state.
func (c ButtonComposition) Selected(selected bool) ButtonComposition {
	c.selected = selected
	return c
}

// Hover puts the interactive element in the hover state.
func (c ButtonComposition) Hover() ButtonComposition {
	c.interactive = c.interactive.Hover()
	return c
}

// Active puts the interactive element in the active state.
func (c ButtonComposition) Active() ButtonComposition {
	c.interactive = c.interactive.Active()
	return c
}

// Focused puts the interactive element in the focused state.
func (c ButtonComposition) Focused() ButtonComposition {
	c.interactive = c.interactive.Focused()
	return c
}

// Custom appends arbitrary classes to the output.
func (c ButtonComposition) Custom(classes string) ButtonComposition {
	c.custom = append(c.custom[:len(c.custom):len(c.custom)], classes)
	return c
}

// Classes renders the composed configuration to a canonical class string.
func (c ButtonComposition) Classes() string {
	fragments := []string{
		c.action.Classes(),
		c.interactive.Classes(),
		c.focus.Classes(),
	}

	if c.selected {
		fragments = append(fragments, "bg-opacity-80")
	}

	fragments = append(fragments, c.custom...)
	return Canonicalize(fragments...)
}

// AccessibilityAttributes returns the semantic attributes for the button.
func (c ButtonComposition) AccessibilityAttributes() []Attribute {
	attrs := c.focus.DataAttributes()

	if c.disabled {
		attrs = append(attrs, Attribute{"aria-disabled", "true"})
	}
	if c.loading {
		attrs = append(attrs, Attribute{"aria-busy", "true"})
	}
	if c.selected {
		attrs = append(attrs, Attribute{"aria-pressed", "true"})
	}

	return attrs
}

// ButtonSemanticInfo summarizes a composition for callers that render
// semantics separately from styling.
type ButtonSemanticInfo struct {
	Intent        ActionIntent
	IsPrimary     bool
	IsDestructive bool
	IsDisabled    bool
	IsLoading     bool
	IsSelected    bool
}

// SemanticInfo returns the semantic summary of the composition.
func (c ButtonComposition) SemanticInfo() ButtonSemanticInfo {
	return ButtonSemanticInfo{
		Intent:        c.action.intent,
		IsPrimary:     c.action.intent == IntentPrimary,
		IsDestructive: c.action.intent == IntentDestructive,
		IsDisabled:    c.disabled,
		IsLoading:     c.loading,
		IsSelected:    c.selected,
	}
}
