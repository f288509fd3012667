package main

import (
	"github.com/spf13/cobra"

	tool "github.com/yacobolo/classy/internal/classy"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a theme's palette and sample components",
	Long: `Print the resolved palette of the active theme along with one sample
class string per library surface.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("output-format", "text", "Output format: text|json")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	theme, err := activeTheme()
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := tool.DetermineOutputFormat(getStringWithFallback("output-format", "preview.output-format", "text"))
	if format == tool.OutputJSON {
		return tool.WritePreviewJSON(cmd.OutOrStdout(), theme)
	}

	useColors := tool.ShouldUseColors(getBoolWithFallback("color", "color", false))
	reporter := tool.NewReporter(cmd.OutOrStdout(), useColors)
	reporter.PrintPalette(theme)
	reporter.PrintComponents(theme)
	return nil
}
