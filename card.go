package classy

// CardElevation is the visual elevation of a card.
type CardElevation int

// Card elevations.
const (
	ElevationFlat CardElevation = iota
	ElevationSubtle
	ElevationRaised
	ElevationFloating
	ElevationModal
)

// CardSurface is the visual treatment of a card background.
type CardSurface int

// Card surfaces.
const (
	SurfaceStandard CardSurface = iota
	SurfaceElevated
	SurfaceBranded
	SurfaceGlass
	SurfaceDark
	SurfaceTransparent
)

// CardSpacing is the internal padding of a card.
type CardSpacing int

// Card spacings.
const (
	SpacingNone CardSpacing = iota
	SpacingCompact
	SpacingStandard
	SpacingComfortable
	SpacingSpacious
)

// CardInteraction is how a card responds to the pointer and keyboard.
type CardInteraction int

// Card interactions.
const (
	InteractionStatic CardInteraction = iota
	InteractionHoverable
	InteractionClickable
	InteractionSelectable
	InteractionDraggable
)

// CardPattern combines elevation, surface, spacing, and interactivity into
// a complete card treatment.
type CardPattern struct {
	theme       Theme
	elevation   CardElevation
	surface     CardSurface
	spacing     CardSpacing
	interaction CardInteraction
	selected    bool

	interactive InteractivePattern
	focus       FocusPattern
	focusActive bool

	custom []string
}

// Card returns a card pattern with a subtle, standard, static default.
func Card(theme Theme) CardPattern {
	return CardPattern{
		theme:       theme,
		elevation:   ElevationSubtle,
		surface:     SurfaceStandard,
		spacing:     SpacingStandard,
		interaction: InteractionStatic,
		interactive: Interaction(theme),
		focus:       Focus(theme),
	}
}

// ContentCard returns a standard content card.
func ContentCard(theme Theme) CardPattern {
	return Card(theme).
		Surface(SurfaceStandard).
		Elevation(ElevationRaised).
		Spacing(SpacingStandard).
		Interaction(InteractionStatic)
}

// InteractiveCard returns a clickable, floating card.
func InteractiveCard(theme Theme) CardPattern {
	return Card(theme).
		Surface(SurfaceElevated).
		Elevation(ElevationFloating).
		Interaction(InteractionClickable).
		Spacing(SpacingComfortable)
}

// HeroCard returns a branded, spacious feature card.
func HeroCard(theme Theme) CardPattern {
	return Card(theme).
		Surface(SurfaceBranded).
		Elevation(ElevationModal).
		Spacing(SpacingSpacious).
		Interaction(InteractionHoverable)
}

// GlassCard returns a glass-morphism card.
func GlassCard(theme Theme) CardPattern {
	return Card(theme).
		Surface(SurfaceGlass).
		Elevation(ElevationFloating).
		Interaction(InteractionHoverable).
		Spacing(SpacingStandard)
}

// MinimalCard returns a flat, compact card.
func MinimalCard(theme Theme) CardPattern {
	return Card(theme).
		Surface(SurfaceStandard).
		Elevation(ElevationFlat).
		Spacing(SpacingCompact).
		Interaction(InteractionStatic)
}

// Elevation sets the card elevation.
func (p CardPattern) Elevation(e CardElevation) CardPattern {
	p.elevation = e
	return p
}

// Surface sets the card surface.
func (p CardPattern) Surface(s CardSurface) CardPattern {
	p.surface = s
	return p
}

// Spacing sets the card internal padding.
func (p CardPattern) Spacing(s CardSpacing) CardPattern {
	p.spacing = s
	return p
}

// Interaction sets the card interaction mode and configures the underlying
// interactive and focus behavior accordingly.
func (p CardPattern) Interaction(i CardInteraction) CardPattern {
	p.interaction = i
	p.focusActive = false

	switch i {
	case InteractionStatic:
		p.interactive = Interaction(p.theme)
	case InteractionHoverable:
		p.interactive = Interaction(p.theme).Hoverable().Intensity(IntensityGentle)
	case InteractionClickable:
		p.interactive = Interaction(p.theme).Hoverable().Focusable().Pressable().
			Intensity(IntensityStandard)
		p.focus = Focus(p.theme).Button()
		p.focusActive = true
	case InteractionSelectable:
		p.interactive = Interaction(p.theme).Hoverable().Focusable().Pressable().
			Intensity(IntensityGentle)
		p.focus = Focus(p.theme).Toggle()
		p.focusActive = true
	case InteractionDraggable:
		p.interactive = Interaction(p.theme).Hoverable().Focusable().
			Intensity(IntensityStandard)
	}
	return p
}

// Selected sets the selection state.
func (p CardPattern) Selected(selected bool) CardPattern {
	p.selected = selected
	return p
}

// Hover puts the underlying interactive element in the hover state.
func (p CardPattern) Hover() CardPattern {
	p.interactive = p.interactive.Hover()
	return p
}

// Active puts the underlying interactive element in the active state.
func (p CardPattern) Active() CardPattern {
	p.interactive = p.interactive.Active()
	return p
}

// Focused puts the underlying interactive element in the focused state.
func (p CardPattern) Focused() CardPattern {
	p.interactive = p.interactive.Focused()
	return p
}

// Custom appends arbitrary classes to the output.
func (p CardPattern) Custom(classes string) CardPattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the configuration to a canonical class string.
func (p CardPattern) Classes() string {
	fragments := []string{"rounded-lg border transition-all duration-300"}

	switch p.elevation {
	case ElevationFlat:
		fragments = append(fragments, "shadow-none")
	case ElevationSubtle:
		fragments = append(fragments, "shadow-sm")
	case ElevationRaised:
		fragments = append(fragments, "shadow-md")
	case ElevationFloating:
		fragments = append(fragments, "shadow-lg")
	case ElevationModal:
		fragments = append(fragments, "shadow-2xl")
	}

	fragments = append(fragments, p.surfaceClasses())

	switch p.spacing {
	case SpacingNone:
		fragments = append(fragments, "p-0")
	case SpacingCompact:
		fragments = append(fragments, "p-3")
	case SpacingStandard:
		fragments = append(fragments, "p-5")
	case SpacingComfortable:
		fragments = append(fragments, "p-6")
	case SpacingSpacious:
		fragments = append(fragments, "p-8")
	}

	fragments = append(fragments, p.interactive.Classes())
	if p.focusActive {
		fragments = append(fragments, p.focus.Classes())
	}

	if p.selected {
		fragments = append(fragments, "ring-2 ring-offset-2")
		fragments = append(fragments, "ring-"+ringColor(p.theme, Primary))
	}

	if p.interaction == InteractionHoverable || p.interaction == InteractionClickable {
		switch p.elevation {
		case ElevationSubtle:
			fragments = append(fragments, "hover:shadow-md")
		case ElevationRaised:
			fragments = append(fragments, "hover:shadow-lg")
		case ElevationFloating:
			fragments = append(fragments, "hover:shadow-xl")
		}
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}

func (p CardPattern) surfaceClasses() string {
	switch p.surface {
	case SurfaceStandard:
		return BgClass(p.theme, Surface) + " " +
			TextClass(p.theme, TextPrimary) + " " +
			BorderClass(p.theme, Border)
	case SurfaceElevated:
		return BgClass(p.theme, Background) + " " +
			TextClass(p.theme, TextPrimary) + " " +
			BorderClass(p.theme, Border)
	case SurfaceBranded:
		return "bg-gradient-to-br from-" + Resolve(p.theme, Primary) + "/80" +
			" to-" + Resolve(p.theme, Secondary) + "/80" +
			" border-white/10 text-white"
	case SurfaceGlass:
		return "bg-white/10 backdrop-blur-md border-white/20 text-white"
	case SurfaceDark:
		return "bg-gray-900 border-gray-700 text-white"
	case SurfaceTransparent:
		return "bg-transparent border-transparent"
	}
	return ""
}

// AccessibilityAttributes returns the semantic attributes for the card.
func (p CardPattern) AccessibilityAttributes() []Attribute {
	var attrs []Attribute
	if p.focusActive {
		attrs = p.focus.DataAttributes()
	}

	if p.selected {
		attrs = append(attrs, Attribute{"aria-selected", "true"})
	}

	switch p.interaction {
	case InteractionClickable:
		attrs = append(attrs, Attribute{"role", "button"})
	case InteractionSelectable:
		attrs = append(attrs, Attribute{"role", "option"})
	}

	return attrs
}
