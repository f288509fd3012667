package classy

// Lookup tables for the string-convenience surface. Parsers report whether
// the input was recognized; callers decide the fallback.

var hierarchyNames = map[string]TypographyHierarchy{
	"title":      HierarchyTitle,
	"heading":    HierarchyHeading,
	"subheading": HierarchySubheading,
	"h4":         HierarchyH4,
	"body":       HierarchyBody,
	"body-large": HierarchyBodyLarge,
	"body-small": HierarchyBodySmall,
	"caption":    HierarchyCaption,
	"overline":   HierarchyOverline,
	"code":       HierarchyCode,
}

func parseHierarchy(s string) (TypographyHierarchy, bool) {
	h, ok := hierarchyNames[s]
	return h, ok
}

var typographySizeNames = map[string]TypographySize{
	"xs":  TypeSizeXS,
	"sm":  TypeSizeSM,
	"md":  TypeSizeBase,
	"lg":  TypeSizeLG,
	"xl":  TypeSizeXL,
	"2xl": TypeSizeXL2,
	"3xl": TypeSizeXL3,
	"4xl": TypeSizeXL4,
}

func parseTypographySize(s string) (TypographySize, bool) {
	size, ok := typographySizeNames[s]
	return size, ok
}

var fontWeightNames = map[string]FontWeight{
	"light":     WeightLight,
	"normal":    WeightNormal,
	"medium":    WeightMedium,
	"semibold":  WeightSemiBold,
	"bold":      WeightBold,
	"extrabold": WeightExtraBold,
}

func parseFontWeight(s string) (FontWeight, bool) {
	w, ok := fontWeightNames[s]
	return w, ok
}

var textColorNames = map[string]TextColor{
	"auto":      TextColorAuto,
	"primary":   TextColorPrimary,
	"secondary": TextColorSecondary,
	"accent":    TextColorAccent,
	"muted":     TextColorMuted,
	"disabled":  TextColorDisabled,
	"white":     TextColorWhite,
	"black":     TextColorBlack,
	"success":   TextColorSuccess,
	"warning":   TextColorWarning,
	"error":     TextColorError,
	"info":      TextColorInfo,
}

func parseTextColor(s string) (TextColor, bool) {
	c, ok := textColorNames[s]
	return c, ok
}

var textAlignNames = map[string]TextAlign{
	"left":    TextAlignLeft,
	"center":  TextAlignCenter,
	"right":   TextAlignRight,
	"justify": TextAlignJustify,
}

func parseTextAlign(s string) (TextAlign, bool) {
	a, ok := textAlignNames[s]
	return a, ok
}

var sizeNames = map[string]Size{
	"xs":          SizeXSmall,
	"extra_small": SizeXSmall,
	"sm":          SizeSmall,
	"small":       SizeSmall,
	"md":          SizeMedium,
	"medium":      SizeMedium,
	"lg":          SizeLarge,
	"large":       SizeLarge,
	"xl":          SizeXLarge,
	"extra_large": SizeXLarge,
}

func parseSize(s string) (Size, bool) {
	size, ok := sizeNames[s]
	return size, ok
}

var stateIntentNames = map[string]StateIntent{
	"informational": StateInformational,
	"info":          StateInformational,
	"loading":       StateLoadingIntent,
	"success":       StateSuccess,
	"warning":       StateWarning,
	"warn":          StateWarning,
	"error":         StateError,
	"empty":         StateEmpty,
}

func parseStateIntent(s string) (StateIntent, bool) {
	i, ok := stateIntentNames[s]
	return i, ok
}

var stateProminenceNames = map[string]StateProminence{
	"subtle":    ProminenceSubtle,
	"standard":  ProminenceStandard,
	"prominent": ProminenceProminent,
}

func parseStateProminence(s string) (StateProminence, bool) {
	p, ok := stateProminenceNames[s]
	return p, ok
}

var stateAlignmentNames = map[string]StateAlignment{
	"left":   StateAlignLeft,
	"center": StateAlignCenter,
	"right":  StateAlignRight,
}

func parseStateAlignment(s string) (StateAlignment, bool) {
	a, ok := stateAlignmentNames[s]
	return a, ok
}

var loadingVariantNames = map[string]LoadingVariant{
	"spinner":  LoadingSpinner,
	"dots":     LoadingDots,
	"pulse":    LoadingPulse,
	"bars":     LoadingBars,
	"skeleton": LoadingSkeleton,
}

func parseLoadingVariant(s string) (LoadingVariant, bool) {
	v, ok := loadingVariantNames[s]
	return v, ok
}

var buttonVariantNames = map[string]ButtonVariant{
	"primary":   ButtonPrimary,
	"secondary": ButtonSecondary,
	"outline":   ButtonSecondary,
	"success":   ButtonSuccess,
	"warning":   ButtonWarning,
	"error":     ButtonError,
	"danger":    ButtonError,
	"ghost":     ButtonGhost,
	"link":      ButtonLink,
}

func parseButtonVariant(s string) (ButtonVariant, bool) {
	v, ok := buttonVariantNames[s]
	return v, ok
}

var layoutDividerNames = map[string]LayoutDivider{
	"none":   DividerNone,
	"top":    DividerTop,
	"bottom": DividerBottom,
	"left":   DividerLeft,
	"right":  DividerRight,
}

func parseLayoutDivider(s string) (LayoutDivider, bool) {
	d, ok := layoutDividerNames[s]
	return d, ok
}

var layoutSpacingNames = map[string]LayoutSpacing{
	"none": LayoutSpacingNone,
	"xs":   LayoutSpacingXS,
	"sm":   LayoutSpacingSM,
	"md":   LayoutSpacingMD,
	"lg":   LayoutSpacingLG,
	"xl":   LayoutSpacingXL,
	"2xl":  LayoutSpacingXL2,
}

func parseLayoutSpacing(s string) (LayoutSpacing, bool) {
	sp, ok := layoutSpacingNames[s]
	return sp, ok
}

var layoutDirectionNames = map[string]LayoutDirection{
	"vertical":   DirectionVertical,
	"horizontal": DirectionHorizontal,
}

func parseLayoutDirection(s string) (LayoutDirection, bool) {
	d, ok := layoutDirectionNames[s]
	return d, ok
}

var layoutAlignmentNames = map[string]LayoutAlignment{
	"start":   AlignStart,
	"center":  AlignCenter,
	"end":     AlignEnd,
	"between": AlignBetween,
	"around":  AlignAround,
	"evenly":  AlignEvenly,
}

func parseLayoutAlignment(s string) (LayoutAlignment, bool) {
	a, ok := layoutAlignmentNames[s]
	return a, ok
}

var productDisplayNames = map[string]ProductDisplay{
	"list":      ProductListItem,
	"list-item": ProductListItem,
	"featured":  ProductFeatured,
	"tile":      ProductTile,
	"showcase":  ProductShowcase,
	"preview":   ProductPreview,
}

func parseProductDisplay(s string) (ProductDisplay, bool) {
	d, ok := productDisplayNames[s]
	return d, ok
}

var productStateNames = map[string]ProductState{
	"default":  ProductDefault,
	"focused":  ProductFocused,
	"selected": ProductSelected,
	"loading":  ProductLoading,
	"disabled": ProductDisabled,
}

func parseProductState(s string) (ProductState, bool) {
	st, ok := productStateNames[s]
	return st, ok
}

var productAvailabilityNames = map[string]ProductAvailability{
	"available":    ProductAvailable,
	"out-of-stock": ProductOutOfStock,
	"backorder":    ProductBackorder,
	"discontinued": ProductDiscontinued,
	"limited":      ProductLimited,
}

func parseProductAvailability(s string) (ProductAvailability, bool) {
	a, ok := productAvailabilityNames[s]
	return a, ok
}

var productProminenceNames = map[string]ProductProminence{
	"subtle":    ProductSubtle,
	"standard":  ProductStandard,
	"prominent": ProductProminent,
	"hero":      ProductHero,
}

func parseProductProminence(s string) (ProductProminence, bool) {
	p, ok := productProminenceNames[s]
	return p, ok
}

var productImageShapeNames = map[string]ProductImageShape{
	"standard": ImageStandard,
	"square":   ImageSquare,
	"wide":     ImageWide,
	"portrait": ImagePortrait,
	"circle":   ImageCircle,
}

func parseProductImageShape(s string) (ProductImageShape, bool) {
	sh, ok := productImageShapeNames[s]
	return sh, ok
}

var selectionBehaviorNames = map[string]SelectionBehavior{
	"none":     SelectNone,
	"single":   SelectSingle,
	"multiple": SelectMultiple,
	"toggle":   SelectToggle,
}

func parseSelectionBehavior(s string) (SelectionBehavior, bool) {
	b, ok := selectionBehaviorNames[s]
	return b, ok
}

var selectionStateNames = map[string]SelectionState{
	"unselected": Unselected,
	"inactive":   Unselected,
	"selected":   Selected,
	"active":     Selected,
	"partial":    PartiallySelected,
	"disabled":   SelectionDisabled,
}

func parseSelectionState(s string) (SelectionState, bool) {
	st, ok := selectionStateNames[s]
	return st, ok
}

var selectionDisplayNames = map[string]SelectionDisplay{
	"button":    DisplayButton,
	"chip":      DisplayChip,
	"list":      DisplayListItem,
	"list-item": DisplayListItem,
	"card":      DisplayCard,
	"tab":       DisplayTab,
}

func parseSelectionDisplay(s string) (SelectionDisplay, bool) {
	d, ok := selectionDisplayNames[s]
	return d, ok
}

var selectionLayoutNames = map[string]SelectionLayout{
	"horizontal": LayoutHorizontal,
	"vertical":   LayoutVertical,
	"grid":       LayoutGrid,
	"dropdown":   LayoutDropdown,
	"inline":     LayoutInline,
}

func parseSelectionLayout(s string) (SelectionLayout, bool) {
	l, ok := selectionLayoutNames[s]
	return l, ok
}

var selectionInteractionNames = map[string]SelectionInteraction{
	"subtle":    SelectionSubtle,
	"standard":  SelectionStandard,
	"prominent": SelectionProminent,
}

func parseSelectionInteraction(s string) (SelectionInteraction, bool) {
	i, ok := selectionInteractionNames[s]
	return i, ok
}

var cardElevationNames = map[string]CardElevation{
	"flat":     ElevationFlat,
	"none":     ElevationFlat,
	"subtle":   ElevationSubtle,
	"low":      ElevationSubtle,
	"raised":   ElevationRaised,
	"standard": ElevationRaised,
	"floating": ElevationFloating,
	"high":     ElevationFloating,
	"modal":    ElevationModal,
	"highest":  ElevationModal,
}

func parseCardElevation(s string) (CardElevation, bool) {
	e, ok := cardElevationNames[s]
	return e, ok
}

var cardSurfaceNames = map[string]CardSurface{
	"standard":    SurfaceStandard,
	"white":       SurfaceStandard,
	"elevated":    SurfaceElevated,
	"branded":     SurfaceBranded,
	"theme":       SurfaceBranded,
	"glass":       SurfaceGlass,
	"dark":        SurfaceDark,
	"transparent": SurfaceTransparent,
	"clear":       SurfaceTransparent,
}

func parseCardSurface(s string) (CardSurface, bool) {
	sf, ok := cardSurfaceNames[s]
	return sf, ok
}

var cardSpacingNames = map[string]CardSpacing{
	"none":        SpacingNone,
	"compact":     SpacingCompact,
	"sm":          SpacingCompact,
	"standard":    SpacingStandard,
	"md":          SpacingStandard,
	"comfortable": SpacingComfortable,
	"lg":          SpacingComfortable,
	"spacious":    SpacingSpacious,
	"xl":          SpacingSpacious,
}

func parseCardSpacing(s string) (CardSpacing, bool) {
	sp, ok := cardSpacingNames[s]
	return sp, ok
}

var cardInteractionNames = map[string]CardInteraction{
	"static":     InteractionStatic,
	"none":       InteractionStatic,
	"hoverable":  InteractionHoverable,
	"hover":      InteractionHoverable,
	"clickable":  InteractionClickable,
	"click":      InteractionClickable,
	"selectable": InteractionSelectable,
	"select":     InteractionSelectable,
	"draggable":  InteractionDraggable,
	"drag":       InteractionDraggable,
}

func parseCardInteraction(s string) (CardInteraction, bool) {
	i, ok := cardInteractionNames[s]
	return i, ok
}

var buttonStateNames = map[string]ButtonState{
	"default":  ButtonStateDefault,
	"hover":    ButtonStateHover,
	"active":   ButtonStateActive,
	"disabled": ButtonStateDisabled,
	"loading":  ButtonStateLoading,
}

func parseButtonState(s string) (ButtonState, bool) {
	st, ok := buttonStateNames[s]
	return st, ok
}
