package classy

// StateIntent is the semantic meaning of a UI state display.
type StateIntent int

// State intents.
const (
	StateInformational StateIntent = iota
	StateLoadingIntent
	StateSuccess
	StateWarning
	StateError
	StateEmpty
)

// StateProminence grades how much attention the state display demands.
type StateProminence int

// State prominences.
const (
	ProminenceSubtle StateProminence = iota
	ProminenceStandard
	ProminenceProminent
)

// StateAlignment is the content alignment of a state display.
type StateAlignment int

// State alignments.
const (
	StateAlignLeft StateAlignment = iota
	StateAlignCenter
	StateAlignRight
)

// ActionRequirement indicates whether the state needs a user action.
type ActionRequirement int

// Action requirements.
const (
	ActionNone ActionRequirement = iota
	ActionOptional
	ActionRecommended
	ActionRequired
)

// LoadingVariant is the animation style of a loading state.
type LoadingVariant int

// Loading variants.
const (
	LoadingSpinner LoadingVariant = iota
	LoadingDots
	LoadingPulse
	LoadingBars
	LoadingSkeleton
)

// StatePattern describes full-area UI states: loading, empty, error,
// success, warning, and informational displays.
type StatePattern struct {
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

// State returns a state pattern with informational, standard, centered
// defaults.
func State(theme Theme) StatePattern {
	return StatePattern{
		theme:      theme,
		intent:     StateInformational,
		prominence: ProminenceStandard,
		size:       SizeMedium,
		alignment:  StateAlignCenter,
	}
}

// InfoState returns a centered informational state.
func InfoState(theme Theme) StatePattern {
	return State(theme).Intent(StateInformational).Action(ActionNone)
}

// LoadingState returns a centered loading state with a spinner.
func LoadingState(theme Theme) StatePattern {
	return State(theme).Intent(StateLoadingIntent).Loading(LoadingSpinner).Action(ActionNone)
}

// EmptyState returns a centered empty state with an optional action.
func EmptyState(theme Theme) StatePattern {
	return State(theme).Intent(StateEmpty).Action(ActionOptional)
}

// ErrorState returns a prominent error state with a recommended action.
func ErrorState(theme Theme) StatePattern {
	return State(theme).Intent(StateError).Prominence(ProminenceProminent).Action(ActionRecommended)
}

// SuccessState returns a centered success state.
func SuccessState(theme Theme) StatePattern {
	return State(theme).Intent(StateSuccess).Action(ActionNone)
}

// WarningState returns a prominent warning state with a recommended action.
func WarningState(theme Theme) StatePattern {
	return State(theme).Intent(StateWarning).Prominence(ProminenceProminent).Action(ActionRecommended)
}

// Intent sets the state intent.
func (p StatePattern) Intent(i StateIntent) StatePattern {
	p.intent = i
	return p
}

// Prominence sets the state prominence.
func (p StatePattern) Prominence(pr StateProminence) StatePattern {
	p.prominence = pr
	return p
}

// Size sets the state display size.
func (p StatePattern) Size(s Size) StatePattern {
	p.size = s
	return p
}

// Alignment sets the content alignment.
func (p StatePattern) Alignment(a StateAlignment) StatePattern {
	p.alignment = a
	return p
}

// Action sets the action requirement.
func (p StatePattern) Action(a ActionRequirement) StatePattern {
	p.action = a
	return p
}

// Loading sets the loading animation variant.
func (p StatePattern) Loading(v LoadingVariant) StatePattern {
	p.loading = v
	p.loadingOK = true
	return p
}

// Fullscreen toggles full-viewport display.
func (p StatePattern) Fullscreen(fullscreen bool) StatePattern {
	p.fullscreen = fullscreen
	return p
}

// Custom appends arbitrary classes to the output.
func (p StatePattern) Custom(classes string) StatePattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the configuration to a canonical class string.
func (p StatePattern) Classes() string {
	fragments := []string{"state-pattern"}

	switch p.alignment {
	case StateAlignLeft:
		fragments = append(fragments, "flex flex-col items-start text-left")
	case StateAlignCenter:
		fragments = append(fragments, "flex flex-col items-center text-center")
	case StateAlignRight:
		fragments = append(fragments, "flex flex-col items-end text-right")
	}

	if p.fullscreen {
		fragments = append(fragments, "min-h-screen justify-center")
	}

	switch p.size {
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

	fragments = append(fragments, p.intentClasses())

	if p.loadingOK {
		fragments = append(fragments, p.loadingClasses())
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}

// SuggestedIcon returns the icon name commonly paired with the intent.
func (p StatePattern) SuggestedIcon() string {
	switch p.intent {
	case StateLoadingIntent:
		return "loader"
	case StateSuccess:
		return "check-circle"
	case StateWarning:
		return "alert-triangle"
	case StateError:
		return "alert-circle"
	case StateEmpty:
		return "inbox"
	default:
		return "info"
	}
}

// SuggestedActionText returns a default call-to-action label for the
// intent/action combination, or "" when none applies.
func (p StatePattern) SuggestedActionText() string {
	switch {
	case p.intent == StateError && p.action == ActionRecommended:
		return "Try Again"
	case p.intent == StateEmpty && p.action == ActionOptional:
		return "Refresh"
	case p.intent == StateEmpty && p.action == ActionRecommended:
		return "Add Item"
	case p.intent == StateWarning && p.action == ActionRequired:
		return "Take Action"
	}
	return ""
}

// RequiresAction reports whether the state demands a user action.
func (p StatePattern) RequiresAction() bool { return p.action == ActionRequired }

func (p StatePattern) intentClasses() string {
	switch p.intent {
	case StateLoadingIntent:
		return TextClass(p.theme, Primary) + " " + BgClass(p.theme, Background)
	case StateSuccess:
		return "text-green-600 bg-green-50"
	case StateWarning:
		return "text-orange-600 bg-orange-50"
	case StateError:
		return "text-red-600 bg-red-50"
	case StateEmpty:
		return TextClass(p.theme, TextSecondary) + " " + BgClass(p.theme, Background)
	default:
		return TextClass(p.theme, TextPrimary) + " " + BgClass(p.theme, Background)
	}
}

func (p StatePattern) loadingClasses() string {
	switch p.loading {
	case LoadingSpinner:
		return "animate-spin"
	case LoadingDots:
		return "animate-bounce"
	default:
		return "animate-pulse"
	}
}
