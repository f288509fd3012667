package classy

// ActionIntent expresses what an action does, independent of styling.
type ActionIntent int

// Action intents.
const (
	IntentPrimary ActionIntent = iota
	IntentSecondary
	IntentConstructive
	IntentDestructive
	IntentNavigation
	IntentInformational
)

// ActionHierarchy expresses how prominent an action should be.
type ActionHierarchy int

// Action hierarchies.
const (
	ActionHero ActionHierarchy = iota
	ActionPrimary
	ActionSecondary
	ActionTertiary
	ActionMinimal
)

// ActionContext adjusts an action for its surroundings.
type ActionContext int

// Action contexts.
const (
	ContextStandalone ActionContext = iota
	ContextForm
	ContextNavigation
	ContextInline
	ContextToolbar
	ContextFloating
)

// ActionPattern captures the semantics of a user action (intent, prominence,
// context) and renders them to theme-aware classes.
type ActionPattern struct {
	theme     Theme
	intent    ActionIntent
	hierarchy ActionHierarchy
	context   ActionContext
	urgent    bool
	custom    []string
}

// Action returns an action pattern for the theme, defaulting to a
// primary-intent, primary-hierarchy, standalone action.
func Action(theme Theme) ActionPattern {
	return ActionPattern{theme: theme, intent: IntentPrimary, hierarchy: ActionPrimary}
}

// Intent sets the action intent.
func (p ActionPattern) Intent(i ActionIntent) ActionPattern {
	p.intent = i
	return p
}

// Hierarchy sets the action prominence.
func (p ActionPattern) Hierarchy(h ActionHierarchy) ActionPattern {
	p.hierarchy = h
	return p
}

// Context sets the action context.
func (p ActionPattern) Context(c ActionContext) ActionPattern {
	p.context = c
	return p
}

// Urgent marks the action as urgent, adding a pulse animation.
func (p ActionPattern) Urgent() ActionPattern {
	p.urgent = true
	return p
}

// Destructive is shorthand for a destructive intent.
func (p ActionPattern) Destructive() ActionPattern {
	p.intent = IntentDestructive
	return p
}

// Hero is shorthand for a primary-intent hero action.
func (p ActionPattern) Hero() ActionPattern {
	p.intent = IntentPrimary
	p.hierarchy = ActionHero
	return p
}

// Navigation is shorthand for a navigation action in a navigation context.
func (p ActionPattern) Navigation() ActionPattern {
	p.intent = IntentNavigation
	p.context = ContextNavigation
	return p
}

// Custom appends arbitrary classes to the output.
func (p ActionPattern) Custom(classes string) ActionPattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the configuration to a canonical class string.
func (p ActionPattern) Classes() string {
	fragments := []string{p.intentColors(), p.hierarchyWeight(), p.contextAdjustments()}
	if p.urgent {
		fragments = append(fragments, "animate-pulse")
	}
	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}

func (p ActionPattern) intentColors() string {
	switch p.intent {
	case IntentPrimary:
		return BgClass(p.theme, Primary) + " " +
			TextClass(p.theme, TextInverse) + " " +
			"hover:" + BgClass(p.theme, InteractiveHover)
	case IntentSecondary:
		return BgClass(p.theme, Surface) + " " +
			TextClass(p.theme, TextPrimary) + " " +
			BorderClass(p.theme, Border) + " border"
	case IntentConstructive:
		return BgClass(p.theme, Success) + " " +
			TextClass(p.theme, TextInverse) + " hover:bg-green-600"
	case IntentDestructive:
		return BgClass(p.theme, Error) + " " +
			TextClass(p.theme, TextInverse) + " hover:bg-red-600"
	case IntentNavigation:
		return "bg-transparent " +
			TextClass(p.theme, TextPrimary) + " " +
			"hover:" + BgClass(p.theme, Background)
	case IntentInformational:
		return "bg-transparent " +
			TextClass(p.theme, TextSecondary) + " hover:underline"
	}
	return ""
}

func (p ActionPattern) hierarchyWeight() string {
	switch p.hierarchy {
	case ActionHero:
		return "text-xl font-bold px-8 py-4 rounded-lg shadow-lg"
	case ActionPrimary:
		return "text-base font-semibold px-6 py-3 rounded-md shadow-md"
	case ActionSecondary:
		return "text-sm font-medium px-4 py-2 rounded-md shadow-sm"
	case ActionTertiary:
		return "text-sm font-normal px-3 py-1.5 rounded"
	case ActionMinimal:
		return "text-xs font-normal px-2 py-1 rounded"
	}
	return ""
}

func (p ActionPattern) contextAdjustments() string {
	switch p.context {
	case ContextForm:
		return "min-w-24"
	case ContextNavigation:
		return "w-full justify-start"
	case ContextInline:
		return "inline underline-offset-2"
	case ContextToolbar:
		return "h-8 px-2 text-xs"
	case ContextFloating:
		return "rounded-full w-14 h-14 shadow-xl"
	}
	return ""
}
