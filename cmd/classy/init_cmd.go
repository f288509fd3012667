package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a theme YAML file",
	Long:  `Create a starter theme YAML file in the first theme directory, ready to edit and pick up with --theme.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		name := "Custom"
		if len(args) == 1 {
			name = args[0]
		}

		dir := themeDirs()[0]
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating theme directory: %w", err)
		}

		path := filepath.Join(dir, "custom.yaml")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(fmt.Sprintf(defaultThemeFile, name)), 0644); err != nil {
			return fmt.Errorf("writing theme file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultThemeFile = `# classy theme definition
# Palette keys are kebab-case token names, values are style tokens.
name: %s
base: Ocean # built-in theme supplying unset tokens

palette:
  primary: indigo-600
  secondary: violet-500
  interactive: indigo-600
  interactive-hover: indigo-700

# Optional exact brand values, used by classy export.
hex:
  primary: "#4F46E5"
  secondary: "#8B5CF6"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing theme file")
}
