package classy

import "strings"

// InteractiveBuilder accumulates CSS fragments in per-state buckets and
// renders them with pseudo-class grouping. Entering a state returns a
// state-scoped builder; buckets are emitted in a fixed order (base, hover,
// focus, active, disabled) regardless of call order.
type InteractiveBuilder struct {
	theme    Theme
	base     []string
	hover    []string
	focus    []string
	active   []string
	disabled []string
}

// InteractiveElement returns an empty interactive builder.
func InteractiveElement(theme Theme) InteractiveBuilder {
	return InteractiveBuilder{theme: theme}
}

// Base appends classes that always apply.
func (b InteractiveBuilder) Base(classes string) InteractiveBuilder {
	b.base = appendClasses(b.base, classes)
	return b
}

// Hover enters the hover state builder.
func (b InteractiveBuilder) Hover() HoverBuilder { return HoverBuilder{b} }

// Focus enters the focus state builder.
func (b InteractiveBuilder) Focus() FocusBuilder { return FocusBuilder{b} }

// Active enters the active state builder.
func (b InteractiveBuilder) Active() ActiveBuilder { return ActiveBuilder{b} }

// Disabled enters the disabled state builder.
func (b InteractiveBuilder) Disabled() DisabledBuilder { return DisabledBuilder{b} }

// Build renders the accumulated buckets. The base bucket is canonicalized;
// each non-empty state bucket is canonicalized independently and appended as
// a single grouped fragment so state classes never interleave with the base.
func (b InteractiveBuilder) Build() string {
	parts := make([]string, 0, 5)
	if base := Canonicalize(b.base...); base != "" {
		parts = append(parts, base)
	}
	for _, bucket := range []struct {
		prefix  string
		classes []string
	}{
		{"hover", b.hover},
		{"focus", b.focus},
		{"active", b.active},
		{"disabled", b.disabled},
	} {
		if len(bucket.classes) == 0 {
			continue
		}
		parts = append(parts, bucket.prefix+":("+Canonicalize(bucket.classes...)+")")
	}
	return strings.Join(parts, " ")
}

// appendClasses splits classes on whitespace and appends the tokens without
// sharing the destination's backing array with earlier copies.
func appendClasses(dst []string, classes string) []string {
	return append(dst[:len(dst):len(dst)], strings.Fields(classes)...)
}

// HoverBuilder accumulates hover-state fragments.
type HoverBuilder struct {
	b InteractiveBuilder
}

// Classes appends arbitrary hover classes.
func (h HoverBuilder) Classes(classes string) HoverBuilder {
	h.b.hover = appendClasses(h.b.hover, classes)
	return h
}

// BorderPrimary sets the hover border to the theme primary color.
func (h HoverBuilder) BorderPrimary() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover,
		strings.ReplaceAll(BorderClass(h.b.theme, Primary), "border-", ""))
	return h
}

// BgPrimary sets the hover background to the theme primary color.
func (h HoverBuilder) BgPrimary() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover,
		strings.ReplaceAll(BgClass(h.b.theme, Primary), "bg-", ""))
	return h
}

// Darken shifts the hover background to the theme hover color.
func (h HoverBuilder) Darken() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover,
		strings.ReplaceAll(BgClass(h.b.theme, InteractiveHover), "bg-", ""))
	return h
}

// Scale105 grows the element slightly on hover.
func (h HoverBuilder) Scale105() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover, "scale-105")
	return h
}

// ShadowMd adds a medium shadow on hover.
func (h HoverBuilder) ShadowMd() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover, "shadow-md")
	return h
}

// ShadowLg adds a large shadow on hover.
func (h HoverBuilder) ShadowLg() HoverBuilder {
	h.b.hover = appendClasses(h.b.hover, "shadow-lg")
	return h
}

// Focus continues with the focus state builder.
func (h HoverBuilder) Focus() FocusBuilder { return FocusBuilder{h.b} }

// Active continues with the active state builder.
func (h HoverBuilder) Active() ActiveBuilder { return ActiveBuilder{h.b} }

// Disabled continues with the disabled state builder.
func (h HoverBuilder) Disabled() DisabledBuilder { return DisabledBuilder{h.b} }

// Build renders the accumulated buckets.
func (h HoverBuilder) Build() string { return h.b.Build() }

// FocusBuilder accumulates focus-state fragments.
type FocusBuilder struct {
	b InteractiveBuilder
}

// Classes appends arbitrary focus classes.
func (f FocusBuilder) Classes(classes string) FocusBuilder {
	f.b.focus = appendClasses(f.b.focus, classes)
	return f
}

// BorderPrimary sets the focus border to the theme primary color.
func (f FocusBuilder) BorderPrimary() FocusBuilder {
	f.b.focus = appendClasses(f.b.focus,
		strings.ReplaceAll(BorderClass(f.b.theme, Primary), "border-", ""))
	return f
}

// OutlineNone removes the browser focus outline.
func (f FocusBuilder) OutlineNone() FocusBuilder {
	f.b.focus = appendClasses(f.b.focus, "outline-none")
	return f
}

// RingPrimary adds an offset focus ring in a lightened primary color.
func (f FocusBuilder) RingPrimary() FocusBuilder {
	f.b.focus = appendClasses(f.b.focus, "ring-2 ring-offset-2")
	f.b.focus = appendClasses(f.b.focus, "ring-"+ringColor(f.b.theme, Primary))
	return f
}

// Hover continues with the hover state builder.
func (f FocusBuilder) Hover() HoverBuilder { return HoverBuilder{f.b} }

// Active continues with the active state builder.
func (f FocusBuilder) Active() ActiveBuilder { return ActiveBuilder{f.b} }

// Disabled continues with the disabled state builder.
func (f FocusBuilder) Disabled() DisabledBuilder { return DisabledBuilder{f.b} }

// Build renders the accumulated buckets.
func (f FocusBuilder) Build() string { return f.b.Build() }

// ActiveBuilder accumulates active-state fragments.
type ActiveBuilder struct {
	b InteractiveBuilder
}

// Classes appends arbitrary active classes.
func (a ActiveBuilder) Classes(classes string) ActiveBuilder {
	a.b.active = appendClasses(a.b.active, classes)
	return a
}

// Scale95 shrinks the element slightly while pressed.
func (a ActiveBuilder) Scale95() ActiveBuilder {
	a.b.active = appendClasses(a.b.active, "scale-95")
	return a
}

// Hover continues with the hover state builder.
func (a ActiveBuilder) Hover() HoverBuilder { return HoverBuilder{a.b} }

// Focus continues with the focus state builder.
func (a ActiveBuilder) Focus() FocusBuilder { return FocusBuilder{a.b} }

// Disabled continues with the disabled state builder.
func (a ActiveBuilder) Disabled() DisabledBuilder { return DisabledBuilder{a.b} }

// Build renders the accumulated buckets.
func (a ActiveBuilder) Build() string { return a.b.Build() }

// DisabledBuilder accumulates disabled-state fragments.
type DisabledBuilder struct {
	b InteractiveBuilder
}

// Classes appends arbitrary disabled classes.
func (d DisabledBuilder) Classes(classes string) DisabledBuilder {
	d.b.disabled = appendClasses(d.b.disabled, classes)
	return d
}

// Opacity50 dims the element while disabled.
func (d DisabledBuilder) Opacity50() DisabledBuilder {
	d.b.disabled = appendClasses(d.b.disabled, "opacity-50")
	return d
}

// CursorNotAllowed sets the blocked cursor while disabled.
func (d DisabledBuilder) CursorNotAllowed() DisabledBuilder {
	d.b.disabled = appendClasses(d.b.disabled, "cursor-not-allowed")
	return d
}

// Build renders the accumulated buckets.
func (d DisabledBuilder) Build() string { return d.b.Build() }

// InputBuilder is an interactive builder pre-shaped for text inputs.
type InputBuilder struct {
	b InteractiveBuilder
}

// InteractiveInput returns an input builder for the theme.
func InteractiveInput(theme Theme) InputBuilder {
	return InputBuilder{InteractiveElement(theme)}
}

// BaseStyle seeds the structural input classes without theme colors.
func (i InputBuilder) BaseStyle() InputBuilder {
	return i.BaseClasses("w-full px-4 py-3 border rounded-md transition-colors focus:outline-none")
}

// StandardStyle seeds the structural input classes plus theme border and
// surface colors.
func (i InputBuilder) StandardStyle() InputBuilder {
	return i.BaseClasses("w-full px-4 py-3 rounded-md transition-colors focus:outline-none " +
		BorderClass(i.b.theme, Border) + " " + BgClass(i.b.theme, Surface))
}

// BaseClasses appends classes that always apply.
func (i InputBuilder) BaseClasses(classes string) InputBuilder {
	i.b = i.b.Base(classes)
	return i
}

// Hover enters the hover state builder.
func (i InputBuilder) Hover() HoverBuilder { return i.b.Hover() }

// Focus enters the focus state builder.
func (i InputBuilder) Focus() FocusBuilder { return i.b.Focus() }

// Disabled enters the disabled state builder.
func (i InputBuilder) Disabled() DisabledBuilder { return i.b.Disabled() }

// Build renders the accumulated buckets.
func (i InputBuilder) Build() string { return i.b.Build() }

// ButtonBuilder is an interactive builder pre-shaped for buttons.
type ButtonBuilder struct {
	b InteractiveBuilder
}

// InteractiveButton returns a button builder for the theme.
func InteractiveButton(theme Theme) ButtonBuilder {
	return ButtonBuilder{InteractiveElement(theme)}
}

// Primary seeds the filled primary button treatment.
func (bb ButtonBuilder) Primary() ButtonBuilder {
	return bb.BaseClasses("inline-flex items-center justify-center px-4 py-2 font-medium rounded-md transition-colors " +
		BgClass(bb.b.theme, Primary) + " " + TextClass(bb.b.theme, TextInverse))
}

// Secondary seeds the outlined secondary button treatment.
func (bb ButtonBuilder) Secondary() ButtonBuilder {
	return bb.BaseClasses("inline-flex items-center justify-center px-4 py-2 font-medium rounded-md transition-colors border " +
		BgClass(bb.b.theme, Surface) + " " +
		TextClass(bb.b.theme, TextPrimary) + " " +
		BorderClass(bb.b.theme, Border))
}

// Ghost seeds the transparent ghost button treatment.
func (bb ButtonBuilder) Ghost() ButtonBuilder {
	return bb.BaseClasses("inline-flex items-center justify-center px-4 py-2 font-medium rounded-md transition-colors bg-transparent " +
		TextClass(bb.b.theme, TextPrimary))
}

// BaseClasses appends classes that always apply.
func (bb ButtonBuilder) BaseClasses(classes string) ButtonBuilder {
	bb.b = bb.b.Base(classes)
	return bb
}

// Hover enters the hover state builder.
func (bb ButtonBuilder) Hover() HoverBuilder { return bb.b.Hover() }

// Focus enters the focus state builder.
func (bb ButtonBuilder) Focus() FocusBuilder { return bb.b.Focus() }

// Active enters the active state builder.
func (bb ButtonBuilder) Active() ActiveBuilder { return bb.b.Active() }

// Disabled enters the disabled state builder.
func (bb ButtonBuilder) Disabled() DisabledBuilder { return bb.b.Disabled() }

// Build renders the accumulated buckets.
func (bb ButtonBuilder) Build() string { return bb.b.Build() }
