package classy

// ButtonVariant is the visual treatment of a button.
type ButtonVariant int

// Button variants.
const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonSuccess
	ButtonWarning
	ButtonError
	ButtonGhost
	ButtonLink
)

// ButtonState is the rendered interaction state of a button.
type ButtonState int

// Button states.
const (
	ButtonStateDefault ButtonState = iota
	ButtonStateHover
	ButtonStateActive
	ButtonStateDisabled
	ButtonStateLoading
)

// ButtonStyles is a chainable button class builder. It is a pure styling
// utility; variants and sizes resolve through the theme.
type ButtonStyles struct {
	theme     Theme
	variant   ButtonVariant
	size      Size
	state     ButtonState
	fullWidth bool
	withIcon  bool
	custom    []string
}

// Button returns a button styles builder with primary/medium defaults.
func Button(theme Theme) ButtonStyles {
	return ButtonStyles{theme: theme, variant: ButtonPrimary, size: SizeMedium}
}

// Variant sets the button variant.
func (b ButtonStyles) Variant(v ButtonVariant) ButtonStyles {
	b.variant = v
	return b
}

// VariantStr sets the variant from its string name. Accepts the aliases
// "outline" for Secondary and "danger" for Error; unknown names fall back
// to Primary.
func (b ButtonStyles) VariantStr(variant string) ButtonStyles {
	v, ok := parseButtonVariant(variant)
	if !ok {
		v = ButtonPrimary
	}
	return b.Variant(v)
}

// Primary sets the primary variant.
func (b ButtonStyles) Primary() ButtonStyles { return b.Variant(ButtonPrimary) }

// Secondary sets the secondary variant.
func (b ButtonStyles) Secondary() ButtonStyles { return b.Variant(ButtonSecondary) }

// Success sets the success variant.
func (b ButtonStyles) Success() ButtonStyles { return b.Variant(ButtonSuccess) }

// Warning sets the warning variant.
func (b ButtonStyles) Warning() ButtonStyles { return b.Variant(ButtonWarning) }

// Error sets the error variant.
func (b ButtonStyles) Error() ButtonStyles { return b.Variant(ButtonError) }

// Ghost sets the ghost variant.
func (b ButtonStyles) Ghost() ButtonStyles { return b.Variant(ButtonGhost) }

// Link sets the link variant.
func (b ButtonStyles) Link() ButtonStyles { return b.Variant(ButtonLink) }

// Size sets the button size.
func (b ButtonStyles) Size(s Size) ButtonStyles {
	b.size = s
	return b
}

// SizeStr sets the size from its string name ("xs".."xl" or long forms);
// unknown names fall back to Medium.
func (b ButtonStyles) SizeStr(size string) ButtonStyles {
	s, ok := parseSize(size)
	if !ok {
		s = SizeMedium
	}
	return b.Size(s)
}

// ExtraSmall sets the extra-small size.
func (b ButtonStyles) ExtraSmall() ButtonStyles { return b.Size(SizeXSmall) }

// Small sets the small size.
func (b ButtonStyles) Small() ButtonStyles { return b.Size(SizeSmall) }

// Medium sets the medium size.
func (b ButtonStyles) Medium() ButtonStyles { return b.Size(SizeMedium) }

// Large sets the large size.
func (b ButtonStyles) Large() ButtonStyles { return b.Size(SizeLarge) }

// ExtraLarge sets the extra-large size.
func (b ButtonStyles) ExtraLarge() ButtonStyles { return b.Size(SizeXLarge) }

// State sets the rendered interaction state.
func (b ButtonStyles) State(s ButtonState) ButtonStyles {
	b.state = s
	return b
}

// StateStr sets the state from its string name; unknown names fall back to
// Default.
func (b ButtonStyles) StateStr(state string) ButtonStyles {
	s, ok := parseButtonState(state)
	if !ok {
		s = ButtonStateDefault
	}
	return b.State(s)
}

// Hover sets the hover state.
func (b ButtonStyles) Hover() ButtonStyles { return b.State(ButtonStateHover) }

// Active sets the active state.
func (b ButtonStyles) Active() ButtonStyles { return b.State(ButtonStateActive) }

// Disabled sets the disabled state.
func (b ButtonStyles) Disabled() ButtonStyles { return b.State(ButtonStateDisabled) }

// Loading sets the loading state.
func (b ButtonStyles) Loading() ButtonStyles { return b.State(ButtonStateLoading) }

// FullWidth stretches the button to its container width.
func (b ButtonStyles) FullWidth() ButtonStyles {
	b.fullWidth = true
	return b
}

// WithIcon adds spacing for a leading or trailing icon.
func (b ButtonStyles) WithIcon() ButtonStyles {
	b.withIcon = true
	return b
}

// Custom appends arbitrary classes to the output.
func (b ButtonStyles) Custom(classes string) ButtonStyles {
	if classes != "" {
		b.custom = append(b.custom[:len(b.custom):len(b.custom)], classes)
	}
	return b
}

// Classes renders the configuration to a canonical class string.
func (b ButtonStyles) Classes() string {
	fragments := []string{
		"inline-flex items-center justify-center font-medium transition-colors duration-200 disabled:opacity-50 disabled:cursor-not-allowed",
		b.sizeClasses(),
		b.variantClasses(),
		b.stateClasses(),
	}
	if b.fullWidth {
		fragments = append(fragments, "w-full")
	}
	if b.withIcon {
		fragments = append(fragments, "space-x-2")
	}
	fragments = append(fragments, b.custom...)
	return Canonicalize(fragments...)
}

func (b ButtonStyles) sizeClasses() string {
	switch b.size {
	case SizeXSmall:
		return "px-2 py-1 text-xs rounded"
	case SizeSmall:
		return "px-3 py-1.5 text-sm rounded"
	case SizeMedium:
		return "px-4 py-2 text-sm rounded-md"
	case SizeLarge:
		return "px-6 py-3 text-base rounded-md"
	case SizeXLarge:
		return "px-8 py-4 text-lg rounded-lg"
	}
	return "px-4 py-2 text-sm rounded-md"
}

func (b ButtonStyles) variantClasses() string {
	switch b.variant {
	case ButtonPrimary:
		return BgClass(b.theme, Primary) + " " +
			TextClass(b.theme, TextInverse) + " " +
			"hover:" + BgClass(b.theme, InteractiveHover)
	case ButtonSecondary:
		return BgClass(b.theme, Surface) + " " +
			TextClass(b.theme, TextPrimary) + " " +
			BorderClass(b.theme, Border) + " border"
	case ButtonSuccess:
		return BgClass(b.theme, Success) + " " +
			TextClass(b.theme, TextInverse) + " hover:bg-green-600"
	case ButtonWarning:
		return BgClass(b.theme, Warning) + " " +
			TextClass(b.theme, TextInverse) + " hover:bg-amber-600"
	case ButtonError:
		return BgClass(b.theme, Error) + " " +
			TextClass(b.theme, TextInverse) + " hover:bg-red-600"
	case ButtonGhost:
		return "bg-transparent " +
			TextClass(b.theme, TextPrimary) + " " +
			"hover:" + BgClass(b.theme, Background)
	case ButtonLink:
		return "bg-transparent " +
			TextClass(b.theme, Primary) + " hover:underline"
	}
	return ""
}

func (b ButtonStyles) stateClasses() string {
	switch b.state {
	case ButtonStateHover:
		return "hover:scale-105"
	case ButtonStateActive:
		return "active:scale-95"
	case ButtonStateDisabled:
		return "opacity-50 cursor-not-allowed"
	case ButtonStateLoading:
		return "cursor-wait"
	}
	return ""
}

// ButtonClassesFromStrings renders button classes directly from string
// inputs. Loading takes precedence over disabled.
func ButtonClassesFromStrings(theme Theme, variant, size string, disabled, loading, fullWidth bool) string {
	builder := Button(theme).VariantStr(variant).SizeStr(size)

	if loading {
		builder = builder.Loading()
	} else if disabled {
		builder = builder.Disabled()
	}
	if fullWidth {
		builder = builder.FullWidth()
	}

	return builder.Classes()
}
