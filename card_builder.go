package classy

// CardStyles is a chainable card class builder. Unlike the card pattern it
// keeps interaction effects self-contained rather than delegating to the
// interactive and focus patterns.
type CardStyles struct {
	theme       Theme
	elevation   CardElevation
	surface     CardSurface
	spacing     CardSpacing
	interaction CardInteraction
	selected    bool
	custom      []string
}

// CardBuilder returns a card styles builder with subtle/standard defaults.
func CardBuilder(theme Theme) CardStyles {
	return CardStyles{
		theme:     theme,
		elevation: ElevationSubtle,
		surface:   SurfaceStandard,
		spacing:   SpacingStandard,
	}
}

// Elevation sets the card elevation.
func (c CardStyles) Elevation(e CardElevation) CardStyles {
	c.elevation = e
	return c
}

// ElevationStr sets the elevation from its string name. Accepts the aliases
// "none", "low", "standard", "high", and "highest"; unknown names fall back
// to Subtle.
func (c CardStyles) ElevationStr(elevation string) CardStyles {
	e, ok := parseCardElevation(elevation)
	if !ok {
		e = ElevationSubtle
	}
	return c.Elevation(e)
}

// Surface sets the card surface.
func (c CardStyles) Surface(s CardSurface) CardStyles {
	c.surface = s
	return c
}

// SurfaceStr sets the surface from its string name. Accepts the aliases
// "white", "theme", and "clear"; unknown names fall back to Standard.
func (c CardStyles) SurfaceStr(surface string) CardStyles {
	s, ok := parseCardSurface(surface)
	if !ok {
		s = SurfaceStandard
	}
	return c.Surface(s)
}

// Spacing sets the card internal padding.
func (c CardStyles) Spacing(s CardSpacing) CardStyles {
	c.spacing = s
	return c
}

// SpacingStr sets the spacing from its string name. Accepts the aliases
// "sm", "md", "lg", and "xl"; unknown names fall back to Standard.
func (c CardStyles) SpacingStr(spacing string) CardStyles {
	s, ok := parseCardSpacing(spacing)
	if !ok {
		s = SpacingStandard
	}
	return c.Spacing(s)
}

// Interaction sets the card interaction mode.
func (c CardStyles) Interaction(i CardInteraction) CardStyles {
	c.interaction = i
	return c
}

// InteractionStr sets the interaction from its string name. Accepts the
// aliases "none", "hover", "click", "select", and "drag"; unknown names fall
// back to Static.
func (c CardStyles) InteractionStr(interaction string) CardStyles {
	i, ok := parseCardInteraction(interaction)
	if !ok {
		i = InteractionStatic
	}
	return c.Interaction(i)
}

// Selected sets the selection state.
func (c CardStyles) Selected(selected bool) CardStyles {
	c.selected = selected
	return c
}

// Custom appends arbitrary classes to the output.
func (c CardStyles) Custom(classes string) CardStyles {
	if classes != "" {
		c.custom = append(c.custom[:len(c.custom):len(c.custom)], classes)
	}
	return c
}

// Classes renders the configuration to a canonical class string.
func (c CardStyles) Classes() string {
	fragments := []string{"rounded-lg border transition-all duration-300"}

	switch c.elevation {
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

	fragments = append(fragments, c.surfaceClasses())

	switch c.spacing {
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

	if ic := c.interactionClasses(); ic != "" {
		fragments = append(fragments, ic)
	}

	if c.selected {
		fragments = append(fragments, "ring-2 ring-offset-2")
		fragments = append(fragments, "ring-"+ringColor(c.theme, Primary))
	}

	if c.interaction == InteractionHoverable || c.interaction == InteractionClickable {
		switch c.elevation {
		case ElevationSubtle:
			fragments = append(fragments, "hover:shadow-md")
		case ElevationRaised:
			fragments = append(fragments, "hover:shadow-lg")
		case ElevationFloating:
			fragments = append(fragments, "hover:shadow-xl")
		}
	}

	fragments = append(fragments, c.custom...)
	return Canonicalize(fragments...)
}

func (c CardStyles) surfaceClasses() string {
	switch c.surface {
	case SurfaceStandard:
		return BgClass(c.theme, Surface) + " " +
			TextClass(c.theme, TextPrimary) + " " +
			BorderClass(c.theme, Border)
	case SurfaceElevated:
		return BgClass(c.theme, Background) + " " +
			TextClass(c.theme, TextPrimary) + " " +
			BorderClass(c.theme, Border)
	case SurfaceBranded:
		return "bg-gradient-to-br from-" + Resolve(c.theme, Primary) + "/80" +
			" to-" + Resolve(c.theme, Secondary) + "/80" +
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

func (c CardStyles) interactionClasses() string {
	switch c.interaction {
	case InteractionHoverable:
		return "hover:scale-101 hover:shadow-sm"
	case InteractionClickable:
		return "cursor-pointer hover:scale-105 active:scale-95 focus:outline-none focus:ring-2 focus:ring-offset-2"
	case InteractionSelectable:
		return "cursor-pointer hover:scale-101 focus:outline-none focus:ring-2 focus:ring-offset-2"
	case InteractionDraggable:
		return "cursor-move hover:scale-105 active:scale-95"
	}
	return ""
}

// CardClassesFromStrings renders card classes directly from string inputs.
func CardClassesFromStrings(theme Theme, surface, elevation, spacing, interaction string, selected bool) string {
	return CardBuilder(theme).
		SurfaceStr(surface).
		ElevationStr(elevation).
		SpacingStr(spacing).
		InteractionStr(interaction).
		Selected(selected).
		Classes()
}
