package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/classy"
	tool "github.com/yacobolo/classy/internal/classy"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".classy.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence - only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	tool.SetVerbose(getBoolWithFallback("verbose", "verbose", false))

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLASSY_* prefix)
	if err := k.Load(env.Provider("CLASSY_", ".", func(s string) string {
		// CLASSY_EXPORT_PREFIX -> export.prefix
		// CLASSY_THEME -> theme
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CLASSY_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// themeDirs returns the directories searched for theme YAML files.
func themeDirs() []string {
	if dirs := k.Strings("theme-dir"); len(dirs) > 0 {
		return dirs
	}
	if dirs := k.Strings("themes.dirs"); len(dirs) > 0 {
		return dirs
	}
	return []string{"themes"}
}

// activeTheme resolves the theme selected by flags, env, or config file.
func activeTheme() (classy.Theme, error) {
	name := getStringWithFallback("theme", "theme", "")
	return tool.ResolveTheme(name, themeDirs(), nil)
}

// buildExportConfig constructs the export pipeline config from koanf state.
func buildExportConfig() tool.ExportConfig {
	return tool.ExportConfig{
		ThemeName: getStringWithFallback("theme", "theme", ""),
		ThemeDirs: themeDirs(),
		Prefix:    getStringWithFallback("prefix", "export.prefix", "color"),
		Check:     getBoolWithFallback("check", "export.check", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
