package classy

// ProductDisplay is how a product card presents itself.
type ProductDisplay int

// Product displays.
const (
	ProductListItem ProductDisplay = iota
	ProductFeatured
	ProductTile
	ProductShowcase
	ProductPreview
)

// ProductState is the interaction state of a product card.
type ProductState int

// Product interaction states.
const (
	ProductDefault ProductState = iota
	ProductFocused
	ProductSelected
	ProductLoading
	ProductDisabled
)

// ProductAvailability is the stock status of a product.
type ProductAvailability int

// Product availabilities.
const (
	ProductAvailable ProductAvailability = iota
	ProductOutOfStock
	ProductBackorder
	ProductDiscontinued
	ProductLimited
)

// ProductProminence grades how much attention a product card demands.
type ProductProminence int

// Product prominences.
const (
	ProductSubtle ProductProminence = iota
	ProductStandard
	ProductProminent
	ProductHero
)

// ProductImageShape is the aspect treatment of a product image.
type ProductImageShape int

// Product image shapes.
const (
	ImageStandard ProductImageShape = iota
	ImageSquare
	ImageWide
	ImagePortrait
	ImageCircle
)

// ProductPattern describes a commerce product card: display mode,
// interaction state, availability, and prominence. Card structure uses
// BEM-style component classes; colors come from the theme.
type ProductPattern struct {
	theme        Theme
	display      ProductDisplay
	state        ProductState
	availability ProductAvailability
	prominence   ProductProminence
	image        ProductImageShape
}

// Product returns a product pattern with list-item, available, standard
// defaults.
func Product(theme Theme) ProductPattern {
	return ProductPattern{theme: theme, prominence: ProductStandard}
}

// Display sets the display mode.
func (p ProductPattern) Display(d ProductDisplay) ProductPattern {
	p.display = d
	return p
}

// State sets the interaction state.
func (p ProductPattern) State(s ProductState) ProductPattern {
	p.state = s
	return p
}

// Availability sets the stock status.
func (p ProductPattern) Availability(a ProductAvailability) ProductPattern {
	p.availability = a
	return p
}

// Prominence sets the attention level.
func (p ProductPattern) Prominence(pr ProductProminence) ProductPattern {
	p.prominence = pr
	return p
}

// Image sets the image shape.
func (p ProductPattern) Image(shape ProductImageShape) ProductPattern {
	p.image = shape
	return p
}

// Classes renders the configuration to a canonical class string.
func (p ProductPattern) Classes() string {
	fragments := []string{"product-card"}

	switch p.display {
	case ProductListItem:
		fragments = append(fragments, "product-card--list")
	case ProductFeatured:
		fragments = append(fragments, "product-card--featured")
	case ProductTile:
		fragments = append(fragments, "product-card--tile")
	case ProductShowcase:
		fragments = append(fragments, "product-card--showcase")
	case ProductPreview:
		fragments = append(fragments, "product-card--preview")
	}

	switch p.state {
	case ProductFocused:
		fragments = append(fragments, "product-card--focused")
	case ProductSelected:
		fragments = append(fragments, "product-card--selected")
	case ProductLoading:
		fragments = append(fragments, "product-card--loading")
	case ProductDisabled:
		fragments = append(fragments, "product-card--disabled")
	}

	switch p.availability {
	case ProductOutOfStock:
		fragments = append(fragments, "product-card--out-of-stock")
	case ProductBackorder:
		fragments = append(fragments, "product-card--backorder")
	case ProductDiscontinued:
		fragments = append(fragments, "product-card--discontinued")
	case ProductLimited:
		fragments = append(fragments, "product-card--limited")
	}

	switch p.prominence {
	case ProductSubtle:
		fragments = append(fragments, "product-card--subtle")
	case ProductProminent:
		fragments = append(fragments, "product-card--prominent")
	case ProductHero:
		fragments = append(fragments, "product-card--hero")
	}

	if p.availability != ProductAvailable {
		fragments = append(fragments, TextClass(p.theme, InteractiveDisabled))
	} else {
		switch p.prominence {
		case ProductHero:
			fragments = append(fragments, BgClass(p.theme, Primary))
		case ProductProminent:
			fragments = append(fragments, BgClass(p.theme, Secondary))
		default:
			fragments = append(fragments, BgClass(p.theme, Surface))
		}
	}

	return Canonicalize(fragments...)
}

// ImageAspectRatio returns the aspect-ratio classes for the image shape.
func (p ProductPattern) ImageAspectRatio() string {
	switch p.image {
	case ImageSquare:
		return "aspect-square"
	case ImageWide:
		return "aspect-[16/9]"
	case ImagePortrait:
		return "aspect-[3/4]"
	case ImageCircle:
		return "aspect-square rounded-full"
	default:
		return "aspect-[4/3]"
	}
}

// ImageSizes returns the image dimension classes for the display mode.
func (p ProductPattern) ImageSizes() string {
	switch p.display {
	case ProductFeatured:
		return "h-64 w-64"
	case ProductTile:
		return "h-40 w-40"
	case ProductShowcase:
		return "h-80 w-80"
	case ProductPreview:
		return "h-32 w-32"
	default:
		return "h-48 w-48"
	}
}

// ContainerPadding returns the container padding class for the display mode.
func (p ProductPattern) ContainerPadding() string {
	switch p.display {
	case ProductFeatured:
		return "p-6"
	case ProductTile:
		return "p-3"
	case ProductShowcase:
		return "p-8"
	case ProductPreview:
		return "p-2"
	default:
		return "p-4"
	}
}

// ContentSpacing returns the vertical rhythm class for the display mode.
func (p ProductPattern) ContentSpacing() string {
	switch p.display {
	case ProductFeatured:
		return "space-y-4"
	case ProductTile:
		return "space-y-2"
	case ProductShowcase:
		return "space-y-6"
	case ProductPreview:
		return "space-y-1"
	default:
		return "space-y-3"
	}
}
