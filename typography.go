package classy

import "fmt"

// TypographyHierarchy expresses the semantic role of a piece of text.
type TypographyHierarchy int

// Typography hierarchies.
const (
	HierarchyTitle TypographyHierarchy = iota
	HierarchyHeading
	HierarchySubheading
	HierarchyH4
	HierarchyBody
	HierarchyBodyLarge
	HierarchyBodySmall
	HierarchyCaption
	HierarchyOverline
	HierarchyCode
)

// TypographySize overrides the size implied by a hierarchy.
type TypographySize int

// Typography sizes.
const (
	TypeSizeXS TypographySize = iota
	TypeSizeSM
	TypeSizeBase
	TypeSizeLG
	TypeSizeXL
	TypeSizeXL2
	TypeSizeXL3
	TypeSizeXL4
)

// Class returns the text-size utility class.
func (s TypographySize) Class() string {
	switch s {
	case TypeSizeXS:
		return "text-xs"
	case TypeSizeSM:
		return "text-sm"
	case TypeSizeBase:
		return "text-base"
	case TypeSizeLG:
		return "text-lg"
	case TypeSizeXL:
		return "text-xl"
	case TypeSizeXL2:
		return "text-2xl"
	case TypeSizeXL3:
		return "text-3xl"
	case TypeSizeXL4:
		return "text-4xl"
	}
	return "text-base"
}

// TextColor names a semantic text color. TextColorAuto picks a color from
// the hierarchy.
type TextColor int

// Text colors.
const (
	TextColorAuto TextColor = iota
	TextColorPrimary
	TextColorSecondary
	TextColorAccent
	TextColorMuted
	TextColorDisabled
	TextColorWhite
	TextColorBlack
	TextColorSuccess
	TextColorWarning
	TextColorError
	TextColorInfo
)

// TextAlign is horizontal text alignment.
type TextAlign int

// Text alignments.
const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

// Class returns the text-align utility class.
func (a TextAlign) Class() string {
	switch a {
	case TextAlignLeft:
		return "text-left"
	case TextAlignCenter:
		return "text-center"
	case TextAlignRight:
		return "text-right"
	case TextAlignJustify:
		return "text-justify"
	}
	return "text-left"
}

// TextOverflow controls how overflowing text is handled.
type TextOverflow int

// Overflow modes.
const (
	OverflowNormal TextOverflow = iota
	OverflowTruncate
	OverflowClamp
)

// TypographyElement selects the HTML element a caller should render.
// ElementAuto derives the element from the hierarchy.
type TypographyElement int

// Typography elements.
const (
	ElementAuto TypographyElement = iota
	ElementH1
	ElementH2
	ElementH3
	ElementH4
	ElementH5
	ElementH6
	ElementP
	ElementSpan
	ElementDiv
)

// TypographyPattern is a theme-aware typography configuration. All setters
// return an updated copy, and Classes may be called repeatedly.
type TypographyPattern struct {
	theme      Theme
	hierarchy  TypographyHierarchy
	size       TypographySize
	sizeSet    bool
	weight     FontWeight
	weightSet  bool
	color      TextColor
	align      TextAlign
	alignSet   bool
	overflow   TextOverflow
	clampLines int
	element    TypographyElement
}

// Typography returns a typography pattern for the theme, preset to Body.
func Typography(theme Theme) TypographyPattern {
	return TypographyPattern{theme: theme, hierarchy: HierarchyBody}
}

// TitleTypography returns a typography pattern preset to Title.
func TitleTypography(theme Theme) TypographyPattern {
	return Typography(theme).Hierarchy(HierarchyTitle)
}

// HeadingTypography returns a typography pattern preset to Heading.
func HeadingTypography(theme Theme) TypographyPattern {
	return Typography(theme).Hierarchy(HierarchyHeading)
}

// BodyTypography returns a typography pattern preset to Body.
func BodyTypography(theme Theme) TypographyPattern {
	return Typography(theme).Hierarchy(HierarchyBody)
}

// CaptionTypography returns a typography pattern preset to Caption.
func CaptionTypography(theme Theme) TypographyPattern {
	return Typography(theme).Hierarchy(HierarchyCaption)
}

// CodeTypography returns a typography pattern preset to Code.
func CodeTypography(theme Theme) TypographyPattern {
	return Typography(theme).Hierarchy(HierarchyCode)
}

// Hierarchy sets the typography hierarchy.
func (p TypographyPattern) Hierarchy(h TypographyHierarchy) TypographyPattern {
	p.hierarchy = h
	return p
}

// Size overrides the hierarchy's default text size.
func (p TypographyPattern) Size(s TypographySize) TypographyPattern {
	p.size = s
	p.sizeSet = true
	return p
}

// Weight overrides the hierarchy's default font weight.
func (p TypographyPattern) Weight(w FontWeight) TypographyPattern {
	p.weight = w
	p.weightSet = true
	return p
}

// Color sets the text color.
func (p TypographyPattern) Color(c TextColor) TypographyPattern {
	p.color = c
	return p
}

// Align sets the text alignment.
func (p TypographyPattern) Align(a TextAlign) TypographyPattern {
	p.align = a
	p.alignSet = true
	return p
}

// Truncate enables single-line truncation.
func (p TypographyPattern) Truncate() TypographyPattern {
	p.overflow = OverflowTruncate
	return p
}

// Clamp limits the text to the given number of lines. The clamp itself is
// applied via ClampStyle, not a utility class.
func (p TypographyPattern) Clamp(lines int) TypographyPattern {
	p.overflow = OverflowClamp
	p.clampLines = lines
	return p
}

// Element overrides the auto-derived HTML element.
func (p TypographyPattern) Element(el TypographyElement) TypographyPattern {
	p.element = el
	return p
}

// Classes renders the configuration to a canonical class string.
func (p TypographyPattern) Classes() string {
	fragments := []string{"leading-relaxed", p.hierarchyClasses()}

	if p.sizeSet {
		fragments = append(fragments, p.size.Class())
	}
	if p.weightSet {
		fragments = append(fragments, p.weight.Class())
	}

	fragments = append(fragments, p.colorClasses())

	if p.alignSet {
		fragments = append(fragments, p.align.Class())
	}
	if p.overflow == OverflowTruncate {
		fragments = append(fragments, "truncate")
	}

	return Canonicalize(fragments...)
}

// hierarchyClasses returns the hierarchy defaults. An explicit size or
// weight override suppresses the corresponding default so that conflicting
// tokens like "text-base text-lg" never co-exist in the output.
func (p TypographyPattern) hierarchyClasses() string {
	var classes []string
	push := func(defaultSize, defaultWeight string) {
		if !p.sizeSet && defaultSize != "" {
			classes = append(classes, defaultSize)
		}
		if !p.weightSet && defaultWeight != "" {
			classes = append(classes, defaultWeight)
		}
	}

	switch p.hierarchy {
	case HierarchyTitle:
		classes = append(classes, "tracking-tight")
		push("text-4xl", "font-bold")
	case HierarchyHeading:
		classes = append(classes, "tracking-tight")
		push("text-3xl", "font-bold")
	case HierarchySubheading:
		classes = append(classes, "tracking-tight")
		push("text-2xl", "font-bold")
	case HierarchyH4:
		classes = append(classes, "tracking-tight")
		push("text-xl", "font-bold")
	case HierarchyBody:
		push("text-base", "font-normal")
	case HierarchyBodyLarge:
		push("text-lg", "font-normal")
	case HierarchyBodySmall:
		push("text-sm", "font-normal")
	case HierarchyCaption:
		push("text-sm", "font-medium")
	case HierarchyOverline:
		classes = append(classes, "uppercase", "tracking-wider")
		push("text-xs", "font-medium")
	case HierarchyCode:
		classes = append(classes, "font-mono", "bg-gray-100", "px-1", "py-0.5", "rounded")
		push("text-sm", "")
	}

	return Canonicalize(classes...)
}

func (p TypographyPattern) colorClasses() string {
	switch p.color {
	case TextColorPrimary:
		return TextClass(p.theme, Primary)
	case TextColorSecondary:
		return TextClass(p.theme, Secondary)
	case TextColorAccent:
		return TextClass(p.theme, Accent)
	case TextColorMuted:
		return TextClass(p.theme, TextSecondary)
	case TextColorDisabled:
		return TextClass(p.theme, InteractiveDisabled)
	case TextColorWhite:
		return TextClass(p.theme, TextInverse)
	case TextColorBlack:
		return TextClass(p.theme, Foreground)
	case TextColorSuccess:
		return TextClass(p.theme, Success)
	case TextColorWarning:
		return TextClass(p.theme, Warning)
	case TextColorError:
		return TextClass(p.theme, Error)
	case TextColorInfo:
		return TextClass(p.theme, Info)
	case TextColorAuto:
		switch p.hierarchy {
		case HierarchyCaption:
			return TextClass(p.theme, TextSecondary)
		case HierarchyOverline:
			return TextClass(p.theme, TextTertiary)
		default:
			return TextClass(p.theme, TextPrimary)
		}
	}
	return TextClass(p.theme, TextPrimary)
}

// Tag returns the HTML element for the configuration. ElementAuto derives
// it from the hierarchy.
func (p TypographyPattern) Tag() string {
	switch p.element {
	case ElementH1:
		return "h1"
	case ElementH2:
		return "h2"
	case ElementH3:
		return "h3"
	case ElementH4:
		return "h4"
	case ElementH5:
		return "h5"
	case ElementH6:
		return "h6"
	case ElementP:
		return "p"
	case ElementSpan:
		return "span"
	case ElementDiv:
		return "div"
	}

	switch p.hierarchy {
	case HierarchyTitle:
		return "h1"
	case HierarchyHeading:
		return "h2"
	case HierarchySubheading:
		return "h3"
	case HierarchyH4:
		return "h4"
	case HierarchyCaption, HierarchyOverline:
		return "span"
	case HierarchyCode:
		return "code"
	default:
		return "p"
	}
}

// ClampStyle returns the inline CSS for line clamping, or "" when the
// overflow mode is not Clamp.
func (p TypographyPattern) ClampStyle() string {
	if p.overflow != OverflowClamp {
		return ""
	}
	return fmt.Sprintf(
		"display: -webkit-box; -webkit-line-clamp: %d; -webkit-box-orient: vertical; overflow: hidden;",
		p.clampLines,
	)
}
