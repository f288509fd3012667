package classy

// LayoutStyles is a string-convenience wrapper over the layout pattern.
type LayoutStyles struct {
	pattern LayoutPattern
}

// LayoutBuilder returns a layout styles builder for the theme.
func LayoutBuilder(theme Theme) LayoutStyles {
	return LayoutStyles{pattern: Layout(theme)}
}

// CardHeaderStyles returns a builder seeded with the card header layout.
func CardHeaderStyles(theme Theme) LayoutStyles {
	return LayoutStyles{pattern: CardHeaderLayout(theme)}
}

// CardContentStyles returns a builder seeded with the card content layout.
func CardContentStyles(theme Theme) LayoutStyles {
	return LayoutStyles{pattern: CardContentLayout(theme)}
}

// CardFooterStyles returns a builder seeded with the card footer layout.
func CardFooterStyles(theme Theme) LayoutStyles {
	return LayoutStyles{pattern: CardFooterLayout(theme)}
}

// Divider sets the edge divider.
func (l LayoutStyles) Divider(d LayoutDivider) LayoutStyles {
	l.pattern = l.pattern.Divider(d)
	return l
}

// DividerStr sets the divider from its string name ("none", "top",
// "bottom", "left", "right"); unknown names fall back to None.
func (l LayoutStyles) DividerStr(divider string) LayoutStyles {
	d, ok := parseLayoutDivider(divider)
	if !ok {
		d = DividerNone
	}
	return l.Divider(d)
}

// Spacing sets the internal padding.
func (l LayoutStyles) Spacing(s LayoutSpacing) LayoutStyles {
	l.pattern = l.pattern.Spacing(s)
	return l
}

// SpacingStr sets the spacing from its string name ("none", "xs".."2xl");
// unknown names fall back to MD.
func (l LayoutStyles) SpacingStr(spacing string) LayoutStyles {
	s, ok := parseLayoutSpacing(spacing)
	if !ok {
		s = LayoutSpacingMD
	}
	return l.Spacing(s)
}

// Direction sets the flex direction.
func (l LayoutStyles) Direction(d LayoutDirection) LayoutStyles {
	l.pattern = l.pattern.Direction(d)
	return l
}

// DirectionStr sets the direction from its string name ("vertical",
// "horizontal"); unknown names are ignored.
func (l LayoutStyles) DirectionStr(direction string) LayoutStyles {
	if d, ok := parseLayoutDirection(direction); ok {
		return l.Direction(d)
	}
	return l
}

// Alignment sets the item/content alignment.
func (l LayoutStyles) Alignment(a LayoutAlignment) LayoutStyles {
	l.pattern = l.pattern.Alignment(a)
	return l
}

// AlignmentStr sets the alignment from its string name ("start", "center",
// "end", "between", "around", "evenly"); unknown names are ignored.
func (l LayoutStyles) AlignmentStr(alignment string) LayoutStyles {
	if a, ok := parseLayoutAlignment(alignment); ok {
		return l.Alignment(a)
	}
	return l
}

// Custom appends arbitrary classes to the output.
func (l LayoutStyles) Custom(classes string) LayoutStyles {
	l.pattern = l.pattern.Custom(classes)
	return l
}

// Classes renders the configuration to a canonical class string.
func (l LayoutStyles) Classes() string { return l.pattern.Classes() }

// LayoutClassesFromStrings renders layout classes directly from string
// inputs.
func LayoutClassesFromStrings(theme Theme, divider, spacing, direction, alignment, custom string) string {
	builder := LayoutBuilder(theme).
		DividerStr(divider).
		SpacingStr(spacing).
		DirectionStr(direction).
		AlignmentStr(alignment)

	if custom != "" {
		builder = builder.Custom(custom)
	}

	return builder.Classes()
}
