package classy

// SelectionStyles is a string-convenience wrapper over the selection
// pattern. Unknown string inputs fall back to the pattern defaults.
type SelectionStyles struct {
	pattern SelectionPattern
}

// SelectionBuilder returns a selection styles builder for the theme.
func SelectionBuilder(theme Theme) SelectionStyles {
	return SelectionStyles{pattern: Selection(theme)}
}

// Behavior sets the selection behavior.
func (s SelectionStyles) Behavior(b SelectionBehavior) SelectionStyles {
	s.pattern = s.pattern.Behavior(b)
	return s
}

// BehaviorStr sets the behavior from its string name; unknown names fall
// back to Single.
func (s SelectionStyles) BehaviorStr(behavior string) SelectionStyles {
	b, ok := parseSelectionBehavior(behavior)
	if !ok {
		b = SelectSingle
	}
	return s.Behavior(b)
}

// State sets the item selection state.
func (s SelectionStyles) State(st SelectionState) SelectionStyles {
	s.pattern = s.pattern.State(st)
	return s
}

// StateStr sets the state from its string name. Accepts the aliases
// "inactive" and "active"; unknown names fall back to Unselected.
func (s SelectionStyles) StateStr(state string) SelectionStyles {
	st, ok := parseSelectionState(state)
	if !ok {
		st = Unselected
	}
	return s.State(st)
}

// Display sets the item display style.
func (s SelectionStyles) Display(d SelectionDisplay) SelectionStyles {
	s.pattern = s.pattern.Display(d)
	return s
}

// DisplayStr sets the display from its string name. Accepts "list" as an
// alias for "list-item"; unknown names fall back to Button.
func (s SelectionStyles) DisplayStr(display string) SelectionStyles {
	d, ok := parseSelectionDisplay(display)
	if !ok {
		d = DisplayButton
	}
	return s.Display(d)
}

// Layout sets the group layout.
func (s SelectionStyles) Layout(l SelectionLayout) SelectionStyles {
	s.pattern = s.pattern.Layout(l)
	return s
}

// LayoutStr sets the layout from its string name; unknown names fall back
// to Horizontal.
func (s SelectionStyles) LayoutStr(layout string) SelectionStyles {
	l, ok := parseSelectionLayout(layout)
	if !ok {
		l = LayoutHorizontal
	}
	return s.Layout(l)
}

// Size sets the item size.
func (s SelectionStyles) Size(size Size) SelectionStyles {
	s.pattern = s.pattern.Size(size)
	return s
}

// SizeStr sets the size from its string name; unknown names fall back to
// Medium.
func (s SelectionStyles) SizeStr(size string) SelectionStyles {
	sz, ok := parseSize(size)
	if !ok {
		sz = SizeMedium
	}
	return s.Size(sz)
}

// Interaction sets the interaction intensity.
func (s SelectionStyles) Interaction(i SelectionInteraction) SelectionStyles {
	s.pattern = s.pattern.Interaction(i)
	return s
}

// InteractionStr sets the interaction from its string name; unknown names
// fall back to Standard.
func (s SelectionStyles) InteractionStr(interaction string) SelectionStyles {
	i, ok := parseSelectionInteraction(interaction)
	if !ok {
		i = SelectionStandard
	}
	return s.Interaction(i)
}

// WithCounts toggles count badges on items.
func (s SelectionStyles) WithCounts(show bool) SelectionStyles {
	s.pattern = s.pattern.WithCounts(show)
	return s
}

// WithClearAll toggles the clear-all affordance.
func (s SelectionStyles) WithClearAll(show bool) SelectionStyles {
	s.pattern = s.pattern.WithClearAll(show)
	return s
}

// Custom appends arbitrary classes to the item output.
func (s SelectionStyles) Custom(classes string) SelectionStyles {
	s.pattern = s.pattern.Custom(classes)
	return s
}

// ContainerClasses renders the classes for the group container.
func (s SelectionStyles) ContainerClasses() string { return s.pattern.ContainerClasses() }

// ItemClasses renders the classes for an individual item.
func (s SelectionStyles) ItemClasses() string { return s.pattern.ItemClasses() }

// CountClasses renders the classes for the count badge, or "".
func (s SelectionStyles) CountClasses() string { return s.pattern.CountClasses() }

// AllowsMultiple reports whether more than one item may be selected.
func (s SelectionStyles) AllowsMultiple() bool { return s.pattern.AllowsMultiple() }

// IsInteractive reports whether the selection responds to input.
func (s SelectionStyles) IsInteractive() bool { return s.pattern.IsInteractive() }

// SelectionClassesFromStrings renders the container and item classes
// directly from string inputs.
func SelectionClassesFromStrings(theme Theme, behavior, state, display, layout, size, interaction string, showCounts bool) (container, item string) {
	builder := SelectionBuilder(theme).
		BehaviorStr(behavior).
		StateStr(state).
		DisplayStr(display).
		LayoutStr(layout).
		SizeStr(size).
		InteractionStr(interaction).
		WithCounts(showCounts)

	return builder.ContainerClasses(), builder.ItemClasses()
}
