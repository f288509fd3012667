package classy

// StateStyles is a chainable state class builder with a string-convenience
// surface plus size helpers for the content, description, icon, and loading
// elements around the state display.
type StateStyles struct {
	theme      Theme
	intent     StateIntent
	prominence StateProminence
	size       Size
	alignment  StateAlignment
	action     ActionRequirement
	loading    LoadingVariant
	loadingOK  bool
	fullscreen bool
	custom     []string
}

// StateBuilder returns a state styles builder with informational, standard,
// centered defaults.
func StateBuilder(theme Theme) StateStyles {
	return StateStyles{
		theme:      theme,
		intent:     StateInformational,
		prominence: ProminenceStandard,
		size:       SizeMedium,
		alignment:  StateAlignCenter,
	}
}

// LoadingStateBuilder returns a centered loading builder with a spinner.
func LoadingStateBuilder(theme Theme) StateStyles {
	return StateBuilder(theme).Intent(StateLoadingIntent).Loading(LoadingSpinner)
}

// EmptyStateBuilder returns a centered empty-state builder with an optional
// action.
func EmptyStateBuilder(theme Theme) StateStyles {
	return StateBuilder(theme).Intent(StateEmpty).Action(ActionOptional)
}

// ErrorStateBuilder returns a prominent error builder with a recommended
// action.
func ErrorStateBuilder(theme Theme) StateStyles {
	return StateBuilder(theme).Intent(StateError).Prominence(ProminenceProminent).Action(ActionRecommended)
}

// SuccessStateBuilder returns a centered success builder.
func SuccessStateBuilder(theme Theme) StateStyles {
	return StateBuilder(theme).Intent(StateSuccess)
}

// Intent sets the state intent.
func (s StateStyles) Intent(i StateIntent) StateStyles {
	s.intent = i
	return s
}

// IntentStr sets the intent from its string name. Accepts the aliases
// "info" and "warn"; unknown names fall back to Informational.
func (s StateStyles) IntentStr(intent string) StateStyles {
	i, ok := parseStateIntent(intent)
	if !ok {
		i = StateInformational
	}
	return s.Intent(i)
}

// Prominence sets the state prominence.
func (s StateStyles) Prominence(p StateProminence) StateStyles {
	s.prominence = p
	return s
}

// ProminenceStr sets the prominence from its string name; unknown names
// fall back to Standard.
func (s StateStyles) ProminenceStr(prominence string) StateStyles {
	p, ok := parseStateProminence(prominence)
	if !ok {
		p = ProminenceStandard
	}
	return s.Prominence(p)
}

// Size sets the display size.
func (s StateStyles) Size(size Size) StateStyles {
	s.size = size
	return s
}

// SizeStr sets the size from its string name; unknown names fall back to
// Medium.
func (s StateStyles) SizeStr(size string) StateStyles {
	sz, ok := parseSize(size)
	if !ok {
		sz = SizeMedium
	}
	return s.Size(sz)
}

// Alignment sets the content alignment.
func (s StateStyles) Alignment(a StateAlignment) StateStyles {
	s.alignment = a
	return s
}

// AlignmentStr sets the alignment from its string name; unknown names fall
// back to Center.
func (s StateStyles) AlignmentStr(alignment string) StateStyles {
	a, ok := parseStateAlignment(alignment)
	if !ok {
		a = StateAlignCenter
	}
	return s.Alignment(a)
}

// Action sets the action requirement.
func (s StateStyles) Action(a ActionRequirement) StateStyles {
	s.action = a
	return s
}

// Loading sets the loading animation variant.
func (s StateStyles) Loading(v LoadingVariant) StateStyles {
	s.loading = v
	s.loadingOK = true
	return s
}

// LoadingStr sets the loading variant from its string name; unknown names
// clear the variant.
func (s StateStyles) LoadingStr(variant string) StateStyles {
	v, ok := parseLoadingVariant(variant)
	if !ok {
		s.loadingOK = false
		return s
	}
	return s.Loading(v)
}

// Fullscreen toggles full-viewport display.
func (s StateStyles) Fullscreen(fullscreen bool) StateStyles {
	s.fullscreen = fullscreen
	return s
}

// Custom appends arbitrary classes to the output.
func (s StateStyles) Custom(classes string) StateStyles {
	if classes != "" {
		s.custom = append(s.custom[:len(s.custom):len(s.custom)], classes)
	}
	return s
}

// Classes renders the configuration to a canonical class string.
func (s StateStyles) Classes() string {
	fragments := []string{"state-pattern"}

	switch s.alignment {
	case StateAlignLeft:
		fragments = append(fragments, "flex flex-col items-start text-left")
	case StateAlignCenter:
		fragments = append(fragments, "flex flex-col items-center text-center")
	case StateAlignRight:
		fragments = append(fragments, "flex flex-col items-end text-right")
	}

	if s.fullscreen {
		fragments = append(fragments, "min-h-screen justify-center")
	}

	switch s.size {
	case SizeXSmall:
		fragments = append(fragments, "px-4 py-8")
	case SizeSmall:
		fragments = append(fragments, "px-6 py-12")
	case SizeMedium:
		fragments = append(fragments, "px-8 py-16")
	case SizeLarge:
		fragments = append(fragments, "px-12 py-20")
	case SizeXLarge:
		fragments = append(fragments, "px-16 py-24")
	}

	fragments = append(fragments, s.intentClasses())

	if s.loadingOK {
		fragments = append(fragments, s.loadingClasses())
	}

	fragments = append(fragments, s.custom...)
	return Canonicalize(fragments...)
}

// SuggestedIcon returns the icon name commonly paired with the intent.
func (s StateStyles) SuggestedIcon() string {
	return State(s.theme).Intent(s.intent).SuggestedIcon()
}

// SuggestedActionText returns a default call-to-action label, or "".
func (s StateStyles) SuggestedActionText() string {
	return State(s.theme).Intent(s.intent).Action(s.action).SuggestedActionText()
}

// ContentSizeClasses returns the heading size classes for the display size.
func (s StateStyles) ContentSizeClasses() string {
	switch s.size {
	case SizeXSmall:
		return "text-lg"
	case SizeSmall:
		return "text-xl"
	case SizeLarge:
		return "text-3xl"
	case SizeXLarge:
		return "text-4xl"
	default:
		return "text-2xl"
	}
}

// DescriptionSizeClasses returns the description size classes.
func (s StateStyles) DescriptionSizeClasses() string {
	switch s.size {
	case SizeXSmall:
		return "text-sm"
	case SizeSmall:
		return "text-base"
	case SizeLarge:
		return "text-xl"
	case SizeXLarge:
		return "text-2xl"
	default:
		return "text-lg"
	}
}

// IconSizeClasses returns the icon dimension classes.
func (s StateStyles) IconSizeClasses() string {
	switch s.size {
	case SizeXSmall:
		return "w-8 h-8"
	case SizeSmall:
		return "w-12 h-12"
	case SizeLarge:
		return "w-20 h-20"
	case SizeXLarge:
		return "w-24 h-24"
	default:
		return "w-16 h-16"
	}
}

// LoadingSizeClasses returns the loading indicator dimension classes.
func (s StateStyles) LoadingSizeClasses() string {
	if !s.loadingOK {
		return "w-8 h-8"
	}
	switch s.loading {
	case LoadingSpinner:
		switch s.size {
		case SizeXSmall:
			return "w-6 h-6"
		case SizeSmall:
			return "w-8 h-8"
		case SizeLarge:
			return "w-16 h-16"
		case SizeXLarge:
			return "w-20 h-20"
		default:
			return "w-12 h-12"
		}
	case LoadingDots:
		switch s.size {
		case SizeXSmall:
			return "w-2 h-2"
		case SizeSmall:
			return "w-3 h-3"
		case SizeLarge:
			return "w-5 h-5"
		case SizeXLarge:
			return "w-6 h-6"
		default:
			return "w-4 h-4"
		}
	}
	return "w-8 h-8"
}

func (s StateStyles) intentClasses() string {
	switch s.intent {
	case StateLoadingIntent:
		return TextClass(s.theme, Primary) + " " + BgClass(s.theme, Background)
	case StateSuccess:
		return "text-green-600 bg-green-50"
	case StateWarning:
		return "text-orange-600 bg-orange-50"
	case StateError:
		return "text-red-600 bg-red-50"
	case StateEmpty:
		return TextClass(s.theme, TextSecondary) + " " + BgClass(s.theme, Background)
	default:
		return TextClass(s.theme, TextPrimary) + " " + BgClass(s.theme, Background)
	}
}

func (s StateStyles) loadingClasses() string {
	switch s.loading {
	case LoadingSpinner:
		return "animate-spin border-4 border-t-transparent rounded-full"
	case LoadingDots:
		return "animate-bounce rounded-full"
	case LoadingPulse:
		return "animate-pulse rounded-full"
	case LoadingBars:
		return "animate-pulse rounded-sm"
	case LoadingSkeleton:
		return "animate-pulse rounded"
	}
	return ""
}

// StateClassesFromStrings renders state classes directly from string inputs.
func StateClassesFromStrings(theme Theme, intent, prominence, size, alignment, loadingVariant string, fullscreen bool) string {
	builder := StateBuilder(theme).
		IntentStr(intent).
		ProminenceStr(prominence).
		SizeStr(size).
		AlignmentStr(alignment).
		Fullscreen(fullscreen)

	if loadingVariant != "" {
		builder = builder.LoadingStr(loadingVariant)
	}

	return builder.Classes()
}
