package classy

// Size is the shared sizing scale used by buttons, selections, and states.
type Size int

// Sizing scale.
const (
	SizeXSmall Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeXLarge
)

// String returns the short name of the size ("xs" ... "xl").
func (s Size) String() string {
	switch s {
	case SizeXSmall:
		return "xs"
	case SizeSmall:
		return "sm"
	case SizeMedium:
		return "md"
	case SizeLarge:
		return "lg"
	case SizeXLarge:
		return "xl"
	}
	return "md"
}

// FontWeight is the typographic weight scale.
type FontWeight int

// Font weights.
const (
	WeightLight FontWeight = iota
	WeightNormal
	WeightMedium
	WeightSemiBold
	WeightBold
	WeightExtraBold
)

// Class returns the font-weight utility class.
func (w FontWeight) Class() string {
	switch w {
	case WeightLight:
		return "font-light"
	case WeightNormal:
		return "font-normal"
	case WeightMedium:
		return "font-medium"
	case WeightSemiBold:
		return "font-semibold"
	case WeightBold:
		return "font-bold"
	case WeightExtraBold:
		return "font-extrabold"
	}
	return "font-normal"
}
