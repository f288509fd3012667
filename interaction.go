package classy

// InteractiveState is the current state of an interactive element.
type InteractiveState int

// Interactive states.
const (
	StateDefault InteractiveState = iota
	StateHover
	StateActive
	StateFocused
	StateDisabled
	StateLoading
)

// Intensity grades how strong interactive effects should be.
type Intensity int

// Interaction intensities.
const (
	// IntensityGentle suits cards and menu items.
	IntensityGentle Intensity = iota
	// IntensityStandard suits most buttons.
	IntensityStandard
	// IntensityProminent suits primary actions.
	IntensityProminent
)

// InteractivePattern describes hover, press, and focus behavior that can be
// applied to any clickable element.
type InteractivePattern struct {
	theme     Theme
	state     InteractiveState
	hoverable bool
	focusable bool
	pressable bool
	intensity Intensity
	custom    []string
}

// Interaction returns an interactive pattern for the theme with standard
// intensity and no behaviors enabled.
func Interaction(theme Theme) InteractivePattern {
	return InteractivePattern{theme: theme, intensity: IntensityStandard}
}

// Hoverable enables hover effects.
func (p InteractivePattern) Hoverable() InteractivePattern {
	p.hoverable = true
	return p
}

// Focusable enables keyboard focus effects.
func (p InteractivePattern) Focusable() InteractivePattern {
	p.focusable = true
	return p
}

// Pressable enables press/active effects.
func (p InteractivePattern) Pressable() InteractivePattern {
	p.pressable = true
	return p
}

// Intensity sets the effect intensity.
func (p InteractivePattern) Intensity(i Intensity) InteractivePattern {
	p.intensity = i
	return p
}

// State sets the current interactive state.
func (p InteractivePattern) State(s InteractiveState) InteractivePattern {
	p.state = s
	return p
}

// Hover is shorthand for State(StateHover).
func (p InteractivePattern) Hover() InteractivePattern { return p.State(StateHover) }

// Active is shorthand for State(StateActive).
func (p InteractivePattern) Active() InteractivePattern { return p.State(StateActive) }

// Focused is shorthand for State(StateFocused).
func (p InteractivePattern) Focused() InteractivePattern { return p.State(StateFocused) }

// Disabled is shorthand for State(StateDisabled).
func (p InteractivePattern) Disabled() InteractivePattern { return p.State(StateDisabled) }

// Loading is shorthand for State(StateLoading).
func (p InteractivePattern) Loading() InteractivePattern { return p.State(StateLoading) }

// Custom appends arbitrary classes to the output.
func (p InteractivePattern) Custom(classes string) InteractivePattern {
	p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	return p
}

// Classes renders the configuration to a canonical class string.
func (p InteractivePattern) Classes() string {
	var fragments []string

	if p.hoverable || p.focusable || p.pressable {
		fragments = append(fragments, "transition-all duration-200 ease-in-out")
	}

	switch {
	case p.state == StateDisabled:
		fragments = append(fragments, "cursor-not-allowed")
	case p.state == StateLoading:
		fragments = append(fragments, "cursor-wait")
	case p.hoverable || p.pressable:
		fragments = append(fragments, "cursor-pointer")
	}

	if p.hoverable && p.state != StateDisabled {
		switch p.intensity {
		case IntensityGentle:
			fragments = append(fragments, "hover:scale-101 hover:shadow-sm")
		case IntensityStandard:
			fragments = append(fragments, "hover:scale-105 hover:shadow-md")
		case IntensityProminent:
			fragments = append(fragments, "hover:scale-110 hover:shadow-lg")
		}
	}

	if p.pressable && p.state != StateDisabled {
		if p.intensity == IntensityGentle {
			fragments = append(fragments, "active:scale-100")
		} else {
			fragments = append(fragments, "active:scale-95")
		}
	}

	if p.focusable {
		fragments = append(fragments, "focus:outline-none focus:ring-2 focus:ring-offset-2")
		fragments = append(fragments, "focus:ring-"+ringColor(p.theme, Primary))
	}

	switch p.state {
	case StateFocused:
		if p.focusable {
			fragments = append(fragments, "ring-2 ring-offset-2")
			fragments = append(fragments, "ring-"+ringColor(p.theme, Primary))
		}
	case StateDisabled:
		fragments = append(fragments, "opacity-50 pointer-events-none")
	case StateLoading:
		fragments = append(fragments, "opacity-75")
	}

	fragments = append(fragments, p.custom...)
	return Canonicalize(fragments...)
}
