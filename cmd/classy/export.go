package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tool "github.com/yacobolo/classy/internal/classy"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a theme as CSS custom properties",
	Long: `Emit a :root block mapping every semantic color token of the active
theme to a CSS custom property. Themes with exact brand hex values emit
those; other themes reference their style-token variables.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("prefix", "color", "Custom property prefix (--<prefix>-<token>)")
	f.Bool("check", false, "Validate the emitted block by tokenizing it")
}

func runExport(cmd *cobra.Command, _ []string) error {
	config := buildExportConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)

	w := cmd.OutOrStdout()
	outputPath := getStringWithFallback("output", "export.output", "-")
	if outputPath != "-" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	result, err := tool.Export(w, config)
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}

	useColors := tool.ShouldUseColors(getBoolWithFallback("color", "color", false))
	reporter := tool.NewReporter(cmd.ErrOrStderr(), useColors)

	if config.Check {
		reporter.PrintFindings(result.Findings)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d custom properties for %s", result.VariablesWritten, result.ThemeName)
	if result.HexVariables > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), " (%d hex-backed)", result.HexVariables)
	}
	fmt.Fprintln(cmd.ErrOrStderr())

	return nil
}
