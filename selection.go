package classy

// SelectionBehavior defines how items in a group can be selected.
type SelectionBehavior int

// Selection behaviors.
const (
	SelectNone SelectionBehavior = iota
	SelectSingle
	SelectMultiple
	SelectToggle
)

// SelectionState is the selection state of an individual item.
type SelectionState int

// Selection states.
const (
	Unselected SelectionState = iota
	Selected
	PartiallySelected
	SelectionDisabled
)

// SelectionDisplay is the visual presentation of selection items.
type SelectionDisplay int

// Selection displays.
const (
	DisplayButton SelectionDisplay = iota
	DisplayChip
	DisplayListItem
	DisplayCard
	DisplayTab
)

// SelectionLayout organizes multiple selection items.
type SelectionLayout int

// Selection layouts.
const (
	LayoutHorizontal SelectionLayout = iota
	LayoutVertical
	LayoutGrid
	LayoutDropdown
	LayoutInline
)

// SelectionInteraction grades the hover/press effects of items.
type SelectionInteraction int

// Selection interactions.
const (
	SelectionSubtle SelectionInteraction = iota
	SelectionStandard
	SelectionProminent
)

// SelectionPattern describes an interactive selection interface such as a
// filter bar, chip group, tab strip, or selectable list.
type SelectionPattern struct {
	theme        Theme
	behavior     SelectionBehavior
	state        SelectionState
	display      SelectionDisplay
	layout       SelectionLayout
	size         Size
	interaction  SelectionInteraction
	showCounts   bool
	showClearAll bool
	custom       []string
}

// Selection returns a selection pattern with single-selection button
// defaults.
func Selection(theme Theme) SelectionPattern {
	return SelectionPattern{
		theme:       theme,
		behavior:    SelectSingle,
		display:     DisplayButton,
		layout:      LayoutHorizontal,
		size:        SizeMedium,
		interaction: SelectionStandard,
	}
}

// FilterSelection returns a filter bar: single selection, buttons, counts.
func FilterSelection(theme Theme) SelectionPattern {
	return Selection(theme).
		Behavior(SelectSingle).
		Display(DisplayButton).
		Layout(LayoutHorizontal).
		Interaction(SelectionStandard).
		WithCounts(true)
}

// ChipSelection returns a chip group: multiple selection, inline wrap.
func ChipSelection(theme Theme) SelectionPattern {
	return Selection(theme).
		Behavior(SelectMultiple).
		Display(DisplayChip).
		Layout(LayoutInline).
		Interaction(SelectionSubtle).
		WithClearAll(true)
}

// TabSelection returns a tab strip: single selection, tabs.
func TabSelection(theme Theme) SelectionPattern {
	return Selection(theme).
		Behavior(SelectSingle).
		Display(DisplayTab).
		Layout(LayoutHorizontal).
		Interaction(SelectionStandard)
}

// ListSelection returns a selectable list with counts.
func ListSelection(theme Theme) SelectionPattern {
	return Selection(theme).
		Behavior(SelectMultiple).
		Display(DisplayListItem).
		Layout(LayoutVertical).
		Interaction(SelectionStandard).
		WithCounts(true)
}

// CardSelection returns a selectable card grid.
func CardSelection(theme Theme) SelectionPattern {
	return Selection(theme).
		Behavior(SelectSingle).
		Display(DisplayCard).
		Layout(LayoutGrid).
		Interaction(SelectionProminent)
}

// Behavior sets the selection behavior.
func (p SelectionPattern) Behavior(b SelectionBehavior) SelectionPattern {
	p.behavior = b
	return p
}

// State sets the item selection state.
func (p SelectionPattern) State(s SelectionState) SelectionPattern {
	p.state = s
	return p
}

// Display sets the item display style.
func (p SelectionPattern) Display(d SelectionDisplay) SelectionPattern {
	p.display = d
	return p
}

// Layout sets the group layout.
func (p SelectionPattern) Layout(l SelectionLayout) SelectionPattern {
	p.layout = l
	return p
}

// Size sets the item size.
func (p SelectionPattern) Size(s Size) SelectionPattern {
	p.size = s
	return p
}

// Interaction sets the interaction intensity.
func (p SelectionPattern) Interaction(i SelectionInteraction) SelectionPattern {
	p.interaction = i
	return p
}

// WithCounts toggles count badges on items.
func (p SelectionPattern) WithCounts(show bool) SelectionPattern {
	p.showCounts = show
	return p
}

// WithClearAll toggles the clear-all affordance for multiple selections.
func (p SelectionPattern) WithClearAll(show bool) SelectionPattern {
	p.showClearAll = show
	return p
}

// Custom appends arbitrary classes to the item output.
func (p SelectionPattern) Custom(classes string) SelectionPattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// ContainerClasses renders the classes for the selection group container.
func (p SelectionPattern) ContainerClasses() string {
	fragments := []string{"selection-pattern"}

	switch p.layout {
	case LayoutHorizontal:
		fragments = append(fragments, "flex flex-row gap-2 items-center")
	case LayoutVertical:
		fragments = append(fragments, "flex flex-col gap-2")
	case LayoutGrid:
		fragments = append(fragments, "grid grid-cols-auto gap-2")
	case LayoutDropdown:
		fragments = append(fragments, "relative")
	case LayoutInline:
		fragments = append(fragments, "flex flex-wrap gap-2 items-center")
	}

	switch p.size {
	case SizeXSmall:
		fragments = append(fragments, "gap-1")
	case SizeSmall:
		fragments = append(fragments, "gap-1.5")
	case SizeMedium:
		fragments = append(fragments, "gap-2")
	case SizeLarge:
		fragments = append(fragments, "gap-3")
	case SizeXLarge:
		fragments = append(fragments, "gap-4")
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}

// ItemClasses renders the classes for an individual selection item.
func (p SelectionPattern) ItemClasses() string {
	fragments := []string{"selection-item", p.displayClasses(), p.sizeClasses(),
		p.stateClasses(), p.interactionClasses()}
	return Canonicalize(fragments...)
}

// CountClasses renders the classes for the count badge, or "" when counts
// are disabled.
func (p SelectionPattern) CountClasses() string {
	if !p.showCounts {
		return ""
	}

	fragments := []string{"ml-2 px-2 py-0.5 text-xs rounded-full"}
	if p.state == Selected {
		fragments = append(fragments, BgClass(p.theme, Primary), TextClass(p.theme, TextInverse))
	} else {
		fragments = append(fragments, BgClass(p.theme, Background), TextClass(p.theme, TextSecondary))
	}
	return Canonicalize(fragments...)
}

// AllowsMultiple reports whether more than one item may be selected.
func (p SelectionPattern) AllowsMultiple() bool {
	return p.behavior == SelectMultiple || p.behavior == SelectToggle
}

// IsInteractive reports whether the pattern responds to input.
func (p SelectionPattern) IsInteractive() bool {
	return p.behavior != SelectNone && p.state != SelectionDisabled
}

func (p SelectionPattern) displayClasses() string {
	switch p.display {
	case DisplayButton:
		return "inline-flex items-center justify-center font-medium rounded-md transition-all duration-200"
	case DisplayChip:
		return "inline-flex items-center rounded-full transition-all duration-200"
	case DisplayListItem:
		return "flex items-center w-full px-3 py-2 transition-all duration-200"
	case DisplayCard:
		return "flex flex-col items-center p-4 rounded-lg border transition-all duration-200"
	case DisplayTab:
		return "flex items-center px-4 py-2 border-b-2 transition-all duration-200"
	}
	return ""
}

func (p SelectionPattern) sizeClasses() string {
	switch p.display {
	case DisplayButton:
		switch p.size {
		case SizeXSmall:
			return "px-2 py-1 text-xs"
		case SizeSmall:
			return "px-3 py-1.5 text-sm"
		case SizeMedium:
			return "px-4 py-2 text-base"
		case SizeLarge:
			return "px-6 py-3 text-lg"
		case SizeXLarge:
			return "px-8 py-4 text-xl"
		}
	case DisplayChip:
		switch p.size {
		case SizeXSmall:
			return "px-2 py-0.5 text-xs"
		case SizeSmall:
			return "px-3 py-1 text-sm"
		case SizeMedium:
			return "px-3 py-1.5 text-base"
		case SizeLarge:
			return "px-4 py-2 text-lg"
		case SizeXLarge:
			return "px-6 py-3 text-xl"
		}
	}
	return "px-4 py-2 text-base"
}

func (p SelectionPattern) stateClasses() string {
	switch p.state {
	case Unselected:
		return BgClass(p.theme, Surface) + " " +
			TextClass(p.theme, TextPrimary) + " " +
			BorderClass(p.theme, Border)
	case Selected:
		return BgClass(p.theme, Primary) + " " +
			TextClass(p.theme, TextInverse) + " " +
			BorderClass(p.theme, Primary)
	case PartiallySelected:
		return BgClass(p.theme, Background) + " " +
			TextClass(p.theme, Primary) + " " +
			BorderClass(p.theme, Primary)
	case SelectionDisabled:
		return BgClass(p.theme, InteractiveDisabled) + " " +
			TextClass(p.theme, TextTertiary) + " " +
			BorderClass(p.theme, InteractiveDisabled)
	}
	return ""
}

func (p SelectionPattern) interactionClasses() string {
	if p.state == SelectionDisabled {
		return "cursor-not-allowed"
	}

	fragments := []string{"cursor-pointer"}
	switch p.interaction {
	case SelectionSubtle:
		fragments = append(fragments, "hover:opacity-80")
	case SelectionStandard:
		if p.state == Unselected {
			fragments = append(fragments,
				"hover:"+BgClass(p.theme, Background),
				"hover:"+BorderClass(p.theme, Interactive))
		}
		fragments = append(fragments, "hover:scale-105 active:scale-95")
	case SelectionProminent:
		if p.state == Unselected {
			fragments = append(fragments,
				"hover:"+BgClass(p.theme, Interactive),
				"hover:"+TextClass(p.theme, TextInverse))
		}
		fragments = append(fragments, "hover:scale-110 active:scale-90 shadow-lg hover:shadow-xl")
	}
	return Canonicalize(fragments...)
}
