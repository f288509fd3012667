package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classy"
)

var classesCmd = &cobra.Command{
	Use:   "classes [component]",
	Short: "Render the class string for a component configuration",
	Long: `Render the canonical utility class string for a component kind from
string-valued options. Unknown option values degrade to the component's
defaults instead of failing.`,
	ValidArgs: []string{"text", "button", "card", "state", "selection", "product", "layout"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runClasses,
}

func init() {
	f := classesCmd.Flags()

	// Shared vocabulary
	f.String("size", "", "Size (xs|sm|md|lg|xl)")
	f.String("state", "", "Component state")
	f.String("interaction", "", "Interaction mode")
	f.String("spacing", "", "Spacing scale")
	f.String("alignment", "", "Content alignment")
	f.String("custom", "", "Extra classes appended to the output")
	f.Bool("selected", false, "Render the selected state")

	// Text
	f.String("hierarchy", "", "Text hierarchy (title|heading|body|caption|...)")
	f.String("weight", "", "Font weight (light|normal|medium|semibold|bold)")
	f.String("text-color", "", "Text color (primary|secondary|muted|...)")
	f.String("align", "", "Text alignment (left|center|right|justify)")
	f.Bool("truncate", false, "Truncate overflowing text")
	f.Int("clamp", 0, "Clamp text to N lines")

	// Button
	f.String("variant", "", "Button variant (primary|secondary|outline|danger|ghost|link)")
	f.Bool("disabled", false, "Render the disabled state")
	f.Bool("loading", false, "Render the loading state")
	f.Bool("full-width", false, "Stretch to the container width")

	// Card
	f.String("elevation", "", "Card elevation (flat|subtle|raised|floating|modal)")
	f.String("surface", "", "Card surface (standard|elevated|branded|glass|dark|transparent)")

	// State
	f.String("intent", "", "State intent (loading|empty|error|success|warning|info)")
	f.String("prominence", "", "Prominence (subtle|standard|prominent)")
	f.String("loading-variant", "", "Loading variant (spinner|dots|pulse|bars|skeleton)")
	f.Bool("fullscreen", false, "Render fullscreen")

	// Selection
	f.String("behavior", "", "Selection behavior (single|multiple)")
	f.String("display", "", "Display mode (chip|tab|list|card|...)")
	f.String("layout", "", "Layout (horizontal|vertical|grid|...)")
	f.Bool("counts", false, "Show selection counts")

	// Product
	f.String("availability", "", "Availability (available|out-of-stock|backorder|...)")

	// Layout
	f.String("divider", "", "Divider edge (none|top|bottom|left|right)")
	f.String("direction", "", "Direction (vertical|horizontal)")
}

func runClasses(cmd *cobra.Command, args []string) error {
	theme, err := activeTheme()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	str := func(name string) string { v, _ := f.GetString(name); return v }
	boolean := func(name string) bool { v, _ := f.GetBool(name); return v }

	switch args[0] {
	case "text":
		clamp, _ := f.GetInt("clamp")
		classes := classy.TextClassesFromStrings(theme, classy.TextOptions{
			Hierarchy:  str("hierarchy"),
			Size:       str("size"),
			Weight:     str("weight"),
			Color:      str("text-color"),
			Align:      str("align"),
			Truncate:   boolean("truncate"),
			ClampLines: clamp,
			Custom:     str("custom"),
		})
		fmt.Fprintln(cmd.OutOrStdout(), classes)

	case "button":
		classes := classy.ButtonClassesFromStrings(theme,
			str("variant"), str("size"),
			boolean("disabled"), boolean("loading"), boolean("full-width"))
		fmt.Fprintln(cmd.OutOrStdout(), classes)

	case "card":
		classes := classy.CardClassesFromStrings(theme,
			str("surface"), str("elevation"), str("spacing"), str("interaction"),
			boolean("selected"))
		fmt.Fprintln(cmd.OutOrStdout(), classes)

	case "state":
		classes := classy.StateClassesFromStrings(theme,
			str("intent"), str("prominence"), str("size"), str("alignment"),
			str("loading-variant"), boolean("fullscreen"))
		fmt.Fprintln(cmd.OutOrStdout(), classes)

	case "selection":
		container, item := classy.SelectionClassesFromStrings(theme,
			str("behavior"), str("state"), str("display"), str("layout"),
			str("size"), str("interaction"), boolean("counts"))
		fmt.Fprintf(cmd.OutOrStdout(), "container: %s\nitem: %s\n", container, item)

	case "product":
		classes := classy.ProductClassesFromStrings(theme,
			str("display"), str("state"), str("availability"), str("prominence"))
		fmt.Fprintln(cmd.OutOrStdout(), classes)

	case "layout":
		classes := classy.LayoutClassesFromStrings(theme,
			str("divider"), str("spacing"), str("direction"), str("alignment"),
			str("custom"))
		fmt.Fprintln(cmd.OutOrStdout(), classes)
	}

	return nil
}
