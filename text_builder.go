package classy

// TextStyles is a chainable builder over the typography pattern with a
// string-convenience surface. Unrecognized string inputs are ignored, except
// for the hierarchy which falls back to Body.
type TextStyles struct {
	pattern TypographyPattern
	custom  []string
}

// Text returns a text styles builder for the theme.
func Text(theme Theme) TextStyles {
	return TextStyles{pattern: Typography(theme)}
}

// Hierarchy sets the typography hierarchy.
func (t TextStyles) Hierarchy(h TypographyHierarchy) TextStyles {
	t.pattern = t.pattern.Hierarchy(h)
	return t
}

// HierarchyStr sets the hierarchy from its string name, falling back to
// Body for unknown names.
func (t TextStyles) HierarchyStr(hierarchy string) TextStyles {
	h, ok := parseHierarchy(hierarchy)
	if !ok {
		h = HierarchyBody
	}
	return t.Hierarchy(h)
}

// Size overrides the hierarchy's default text size.
func (t TextStyles) Size(s TypographySize) TextStyles {
	t.pattern = t.pattern.Size(s)
	return t
}

// SizeStr sets the size from its string name; unknown names are ignored.
func (t TextStyles) SizeStr(size string) TextStyles {
	if s, ok := parseTypographySize(size); ok {
		return t.Size(s)
	}
	return t
}

// Weight overrides the hierarchy's default font weight.
func (t TextStyles) Weight(w FontWeight) TextStyles {
	t.pattern = t.pattern.Weight(w)
	return t
}

// WeightStr sets the weight from its string name; unknown names are ignored.
func (t TextStyles) WeightStr(weight string) TextStyles {
	if w, ok := parseFontWeight(weight); ok {
		return t.Weight(w)
	}
	return t
}

// Color sets the text color.
func (t TextStyles) Color(c TextColor) TextStyles {
	t.pattern = t.pattern.Color(c)
	return t
}

// ColorStr sets the color from its string name; unknown names are ignored.
func (t TextStyles) ColorStr(color string) TextStyles {
	if c, ok := parseTextColor(color); ok {
		return t.Color(c)
	}
	return t
}

// Align sets the text alignment.
func (t TextStyles) Align(a TextAlign) TextStyles {
	t.pattern = t.pattern.Align(a)
	return t
}

// AlignStr sets the alignment from its string name; unknown names are
// ignored.
func (t TextStyles) AlignStr(alignment string) TextStyles {
	if a, ok := parseTextAlign(alignment); ok {
		return t.Align(a)
	}
	return t
}

// Truncate enables single-line truncation.
func (t TextStyles) Truncate() TextStyles {
	t.pattern = t.pattern.Truncate()
	return t
}

// Clamp limits the text to the given number of lines.
func (t TextStyles) Clamp(lines int) TextStyles {
	t.pattern = t.pattern.Clamp(lines)
	return t
}

// Element overrides the auto-derived HTML element.
func (t TextStyles) Element(el TypographyElement) TextStyles {
	t.pattern = t.pattern.Element(el)
	return t
}

// Custom appends arbitrary classes to the output.
func (t TextStyles) Custom(classes string) TextStyles {
	if classes != "" {
		t.custom = append(t.custom[:len(t.custom):len(t.custom)], classes)
	}
	return t
}

// Hierarchy shorthands.

// Title sets the Title hierarchy.
func (t TextStyles) Title() TextStyles { return t.Hierarchy(HierarchyTitle) }

// Heading sets the Heading hierarchy.
func (t TextStyles) Heading() TextStyles { return t.Hierarchy(HierarchyHeading) }

// Subheading sets the Subheading hierarchy.
func (t TextStyles) Subheading() TextStyles { return t.Hierarchy(HierarchySubheading) }

// Body sets the Body hierarchy.
func (t TextStyles) Body() TextStyles { return t.Hierarchy(HierarchyBody) }

// BodyLarge sets the BodyLarge hierarchy.
func (t TextStyles) BodyLarge() TextStyles { return t.Hierarchy(HierarchyBodyLarge) }

// BodySmall sets the BodySmall hierarchy.
func (t TextStyles) BodySmall() TextStyles { return t.Hierarchy(HierarchyBodySmall) }

// Caption sets the Caption hierarchy.
func (t TextStyles) Caption() TextStyles { return t.Hierarchy(HierarchyCaption) }

// Overline sets the Overline hierarchy.
func (t TextStyles) Overline() TextStyles { return t.Hierarchy(HierarchyOverline) }

// Code sets the Code hierarchy.
func (t TextStyles) Code() TextStyles { return t.Hierarchy(HierarchyCode) }

// Weight shorthands.

// Light sets the light weight.
func (t TextStyles) Light() TextStyles { return t.Weight(WeightLight) }

// Normal sets the normal weight.
func (t TextStyles) Normal() TextStyles { return t.Weight(WeightNormal) }

// Medium sets the medium weight.
func (t TextStyles) Medium() TextStyles { return t.Weight(WeightMedium) }

// SemiBold sets the semibold weight.
func (t TextStyles) SemiBold() TextStyles { return t.Weight(WeightSemiBold) }

// Bold sets the bold weight.
func (t TextStyles) Bold() TextStyles { return t.Weight(WeightBold) }

// Color shorthands.

// Primary sets the primary text color.
func (t TextStyles) Primary() TextStyles { return t.Color(TextColorPrimary) }

// Secondary sets the secondary text color.
func (t TextStyles) Secondary() TextStyles { return t.Color(TextColorSecondary) }

// Accent sets the accent text color.
func (t TextStyles) Accent() TextStyles { return t.Color(TextColorAccent) }

// Muted sets the muted text color.
func (t TextStyles) Muted() TextStyles { return t.Color(TextColorMuted) }

// Success sets the success text color.
func (t TextStyles) Success() TextStyles { return t.Color(TextColorSuccess) }

// Warning sets the warning text color.
func (t TextStyles) Warning() TextStyles { return t.Color(TextColorWarning) }

// Error sets the error text color.
func (t TextStyles) Error() TextStyles { return t.Color(TextColorError) }

// Alignment shorthands.

// Left aligns text left.
func (t TextStyles) Left() TextStyles { return t.Align(TextAlignLeft) }

// Center centers text.
func (t TextStyles) Center() TextStyles { return t.Align(TextAlignCenter) }

// Right aligns text right.
func (t TextStyles) Right() TextStyles { return t.Align(TextAlignRight) }

// Justify justifies text.
func (t TextStyles) Justify() TextStyles { return t.Align(TextAlignJustify) }

// Classes renders the configuration to a canonical class string.
func (t TextStyles) Classes() string {
	fragments := append([]string{t.pattern.Classes()}, t.custom...)
	return Canonicalize(fragments...)
}

// Tag returns the HTML element for the configuration.
func (t TextStyles) Tag() string { return t.pattern.Tag() }

// ClampStyle returns the inline CSS for line clamping, or "".
func (t TextStyles) ClampStyle() string { return t.pattern.ClampStyle() }

// TextOptions is the stringly-typed configuration accepted by
// TextClassesFromStrings. Empty fields are skipped.
type TextOptions struct {
	Hierarchy  string
	Size       string
	Weight     string
	Color      string
	Align      string
	Truncate   bool
	ClampLines int
	Custom     string
}

// TextClassesFromStrings renders text classes directly from string options,
// for callers whose inputs are already stringly-typed.
func TextClassesFromStrings(theme Theme, opts TextOptions) string {
	builder := Text(theme).HierarchyStr(opts.Hierarchy)

	if opts.Size != "" {
		builder = builder.SizeStr(opts.Size)
	}
	if opts.Weight != "" {
		builder = builder.WeightStr(opts.Weight)
	}
	if opts.Color != "" {
		builder = builder.ColorStr(opts.Color)
	}
	if opts.Align != "" {
		builder = builder.AlignStr(opts.Align)
	}
	if opts.Truncate {
		builder = builder.Truncate()
	}
	if opts.ClampLines > 0 {
		builder = builder.Clamp(opts.ClampLines)
	}
	if opts.Custom != "" {
		builder = builder.Custom(opts.Custom)
	}

	return builder.Classes()
}

// TextElementFromHierarchy returns the HTML element for a hierarchy name.
func TextElementFromHierarchy(hierarchy string) string {
	switch hierarchy {
	case "title":
		return "h1"
	case "heading":
		return "h2"
	case "subheading":
		return "h3"
	case "h4":
		return "h4"
	case "caption", "overline":
		return "span"
	case "code":
		return "code"
	default:
		return "p"
	}
}

// TextClampStyle returns the inline CSS for clamping to the given number of
// lines, or "" when lines is not positive.
func TextClampStyle(lines int) string {
	if lines <= 0 {
		return ""
	}
	return Typography(nil).Clamp(lines).ClampStyle()
}
