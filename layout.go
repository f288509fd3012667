package classy

// LayoutDivider places a border on one edge of a layout section.
type LayoutDivider int

// Layout dividers.
const (
	DividerNone LayoutDivider = iota
	DividerTop
	DividerBottom
	DividerLeft
	DividerRight
)

// LayoutSpacing is the internal padding scale for layout sections.
type LayoutSpacing int

// Layout spacings.
const (
	LayoutSpacingNone LayoutSpacing = iota
	LayoutSpacingXS
	LayoutSpacingSM
	LayoutSpacingMD
	LayoutSpacingLG
	LayoutSpacingXL
	LayoutSpacingXL2
)

// LayoutDirection is the flex direction of a layout section.
type LayoutDirection int

// Layout directions.
const (
	DirectionVertical LayoutDirection = iota
	DirectionHorizontal
)

// LayoutAlignment combines item and content alignment for a section.
type LayoutAlignment int

// Layout alignments.
const (
	AlignStart LayoutAlignment = iota
	AlignCenter
	AlignEnd
	AlignBetween
	AlignAround
	AlignEvenly
)

// LayoutPattern generates layout classes for component sections such as
// card headers, bodies, and footers.
type LayoutPattern struct {
	theme        Theme
	divider      LayoutDivider
	spacing      LayoutSpacing
	direction    LayoutDirection
	directionSet bool
	alignment    LayoutAlignment
	alignmentSet bool
	custom       []string
}

// Layout returns a layout pattern with medium spacing and no divider.
func Layout(theme Theme) LayoutPattern {
	return LayoutPattern{theme: theme, spacing: LayoutSpacingMD}
}

// CardHeaderLayout returns the standard card header section layout.
func CardHeaderLayout(theme Theme) LayoutPattern {
	return Layout(theme).Divider(DividerBottom).Spacing(LayoutSpacingMD)
}

// CardContentLayout returns the standard card content section layout.
func CardContentLayout(theme Theme) LayoutPattern {
	return Layout(theme).Spacing(LayoutSpacingMD).Custom("space-y-4")
}

// CardFooterLayout returns the standard card footer section layout.
func CardFooterLayout(theme Theme) LayoutPattern {
	return Layout(theme).
		Divider(DividerTop).
		Spacing(LayoutSpacingMD).
		Direction(DirectionHorizontal).
		Alignment(AlignBetween)
}

// Divider sets the edge divider.
func (p LayoutPattern) Divider(d LayoutDivider) LayoutPattern {
	p.divider = d
	return p
}

// Spacing sets the internal padding.
func (p LayoutPattern) Spacing(s LayoutSpacing) LayoutPattern {
	p.spacing = s
	return p
}

// Direction sets the flex direction.
func (p LayoutPattern) Direction(d LayoutDirection) LayoutPattern {
	p.direction = d
	p.directionSet = true
	return p
}

// Alignment sets the item/content alignment.
func (p LayoutPattern) Alignment(a LayoutAlignment) LayoutPattern {
	p.alignment = a
	p.alignmentSet = true
	return p
}

// Custom appends arbitrary classes to the output.
func (p LayoutPattern) Custom(classes string) LayoutPattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the configuration to a canonical class string.
func (p LayoutPattern) Classes() string {
	var fragments []string

	if p.divider != DividerNone {
		border := BorderClass(p.theme, Border)
		switch p.divider {
		case DividerTop:
			fragments = append(fragments, "border-t "+border)
		case DividerBottom:
			fragments = append(fragments, "border-b "+border)
		case DividerLeft:
			fragments = append(fragments, "border-l "+border)
		case DividerRight:
			fragments = append(fragments, "border-r "+border)
		}
	}

	switch p.spacing {
	case LayoutSpacingXS:
		fragments = append(fragments, "p-1")
	case LayoutSpacingSM:
		fragments = append(fragments, "p-2")
	case LayoutSpacingMD:
		fragments = append(fragments, "p-4")
	case LayoutSpacingLG:
		fragments = append(fragments, "p-6")
	case LayoutSpacingXL:
		fragments = append(fragments, "p-8")
	case LayoutSpacingXL2:
		fragments = append(fragments, "p-12")
	}

	if p.directionSet {
		if p.direction == DirectionHorizontal {
			fragments = append(fragments, "flex flex-row")
		} else {
			fragments = append(fragments, "flex flex-col")
		}
	}

	if p.alignmentSet {
		switch p.alignment {
		case AlignStart:
			fragments = append(fragments, "items-start justify-start")
		case AlignCenter:
			fragments = append(fragments, "items-center justify-center")
		case AlignEnd:
			fragments = append(fragments, "items-end justify-end")
		case AlignBetween:
			fragments = append(fragments, "items-center justify-between")
		case AlignAround:
			fragments = append(fragments, "items-center justify-around")
		case AlignEvenly:
			fragments = append(fragments, "items-center justify-evenly")
		}
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}
