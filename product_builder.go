package classy

// ProductStyles is a chainable wrapper over the product pattern that adds
// section-level class helpers for the container, image, info, actions, and
// badge areas of a product card.
type ProductStyles struct {
	pattern ProductPattern
	custom  []string
}

// ProductBuilder returns a product styles builder for the theme.
func ProductBuilder(theme Theme) ProductStyles {
	return ProductStyles{pattern: Product(theme)}
}

// FeaturedProductStyles returns a prominent featured-product builder.
func FeaturedProductStyles(theme Theme) ProductStyles {
	return ProductBuilder(theme).Display(ProductFeatured).Prominence(ProductProminent)
}

// ProductTileStyles returns a compact tile builder.
func ProductTileStyles(theme Theme) ProductStyles {
	return ProductBuilder(theme).Display(ProductTile)
}

// ProductShowcaseStyles returns a large showcase builder.
func ProductShowcaseStyles(theme Theme) ProductStyles {
	return ProductBuilder(theme).Display(ProductShowcase)
}

// ProductPreviewStyles returns a minimal preview builder.
func ProductPreviewStyles(theme Theme) ProductStyles {
	return ProductBuilder(theme).Display(ProductPreview)
}

// Display sets the display mode.
func (p ProductStyles) Display(d ProductDisplay) ProductStyles {
	p.pattern = p.pattern.Display(d)
	return p
}

// DisplayStr sets the display mode from its string name; unknown names fall
// back to ListItem.
func (p ProductStyles) DisplayStr(display string) ProductStyles {
	d, ok := parseProductDisplay(display)
	if !ok {
		d = ProductListItem
	}
	return p.Display(d)
}

// State sets the interaction state.
func (p ProductStyles) State(s ProductState) ProductStyles {
	p.pattern = p.pattern.State(s)
	return p
}

// StateStr sets the state from its string name; unknown names fall back to
// Default.
func (p ProductStyles) StateStr(state string) ProductStyles {
	s, ok := parseProductState(state)
	if !ok {
		s = ProductDefault
	}
	return p.State(s)
}

// Availability sets the stock status.
func (p ProductStyles) Availability(a ProductAvailability) ProductStyles {
	p.pattern = p.pattern.Availability(a)
	return p
}

// AvailabilityStr sets the availability from its string name; unknown names
// fall back to Available.
func (p ProductStyles) AvailabilityStr(availability string) ProductStyles {
	a, ok := parseProductAvailability(availability)
	if !ok {
		a = ProductAvailable
	}
	return p.Availability(a)
}

// Prominence sets the attention level.
func (p ProductStyles) Prominence(pr ProductProminence) ProductStyles {
	p.pattern = p.pattern.Prominence(pr)
	return p
}

// ProminenceStr sets the prominence from its string name; unknown names
// fall back to Standard.
func (p ProductStyles) ProminenceStr(prominence string) ProductStyles {
	pr, ok := parseProductProminence(prominence)
	if !ok {
		pr = ProductStandard
	}
	return p.Prominence(pr)
}

// Image sets the image shape.
func (p ProductStyles) Image(shape ProductImageShape) ProductStyles {
	p.pattern = p.pattern.Image(shape)
	return p
}

// ImageStr sets the image shape from its string name; unknown names fall
// back to Standard.
func (p ProductStyles) ImageStr(shape string) ProductStyles {
	sh, ok := parseProductImageShape(shape)
	if !ok {
		sh = ImageStandard
	}
	return p.Image(sh)
}

// Custom appends arbitrary classes to the card output.
func (p ProductStyles) Custom(classes string) ProductStyles {
	if classes != "" {
		p.custom = append(p.custom[:len(p.custom):len(p.custom)], classes)
	}
	return p
}

// Classes renders the card classes.
func (p ProductStyles) Classes() string {
	fragments := append([]string{p.pattern.Classes()}, p.custom...)
	return Canonicalize(fragments...)
}

// ContainerClasses renders the card classes plus padding and rhythm.
func (p ProductStyles) ContainerClasses() string {
	return Canonicalize(p.Classes(), p.pattern.ContainerPadding(), p.pattern.ContentSpacing())
}

// ImageClasses renders the classes for the image area.
func (p ProductStyles) ImageClasses() string {
	return Canonicalize("product-image", p.pattern.ImageAspectRatio(), p.pattern.ImageSizes())
}

// InfoClasses renders the classes for the info section.
func (p ProductStyles) InfoClasses() string {
	return Canonicalize("product-info", p.pattern.ContentSpacing())
}

// ActionsClasses renders the classes for the action row.
func (p ProductStyles) ActionsClasses() string {
	gap := "gap-3"
	switch p.pattern.display {
	case ProductTile:
		gap = "gap-2"
	case ProductPreview:
		gap = "gap-1"
	}
	return Canonicalize("product-actions flex items-center", gap)
}

// BadgesClasses renders the classes for the badge overlay.
func (p ProductStyles) BadgesClasses() string {
	return Canonicalize("product-badges absolute top-2 right-2 flex flex-col gap-1")
}

// ProductClassesFromStrings renders product card classes directly from
// string inputs.
func ProductClassesFromStrings(theme Theme, display, state, availability, prominence string) string {
	return ProductBuilder(theme).
		DisplayStr(display).
		StateStr(state).
		AvailabilityStr(availability).
		ProminenceStr(prominence).
		Classes()
}
