package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classy",
	Short: "Design-token utility class generator",
	Long: `Render deduplicated utility class strings from semantic design intents
and a theme. Classes for the same configuration are always identical,
whatever order the options were given in.`,
	// Default behavior: run preview when no subcommand is given.
	// loadConfig must happen here because PreRunE of previewCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runPreview(previewCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().StringP("theme", "t", "", "Theme name (built-in or from a theme file)")
	rootCmd.PersistentFlags().StringSlice("theme-dir", []string{"themes"}, "Directories searched for theme YAML files")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".classy.yaml", "Config file path")

	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
