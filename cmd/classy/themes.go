package main

import (
	"github.com/spf13/cobra"

	tool "github.com/yacobolo/classy/internal/classy"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in and discovered themes",
	Long: `List the themes that ship with the library plus every theme YAML file
found under the theme directories.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runThemes,
}

func init() {
	themesCmd.Flags().String("output-format", "text", "Output format: text|json")
}

func runThemes(cmd *cobra.Command, _ []string) error {
	infos, err := tool.ListThemes(themeDirs(), nil)
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := tool.DetermineOutputFormat(getStringWithFallback("output-format", "themes.output-format", "text"))
	if format == tool.OutputJSON {
		return tool.WriteThemesJSON(cmd.OutOrStdout(), infos)
	}

	useColors := tool.ShouldUseColors(getBoolWithFallback("color", "color", false))
	tool.NewReporter(cmd.OutOrStdout(), useColors).PrintThemes(infos)
	return nil
}
