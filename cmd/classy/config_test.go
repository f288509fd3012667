package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classy.yaml")
	configContent := `
theme: Sunrise
verbose: true

themes:
  dirs:
    - custom/themes

export:
  prefix: brand
  check: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "Sunrise", k.String("theme"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"custom/themes"}, k.Strings("themes.dirs"))
	assert.Equal(t, "brand", k.String("export.prefix"))
	assert.True(t, k.Bool("export.check"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.classy.yaml"))

	config := buildExportConfig()
	assert.Empty(t, config.ThemeName)
	assert.Equal(t, "color", config.Prefix)
	assert.False(t, config.Check)
	assert.Equal(t, []string{"themes"}, config.ThemeDirs)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classy.yaml")
	configContent := `
theme: from-file
export:
  check: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CLASSY_THEME", "from-env")
	t.Setenv("CLASSY_EXPORT_CHECK", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("theme"))
	assert.True(t, k.Bool("export.check"))
}

func TestBuildExportConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classy.yaml")
	configContent := `
theme: Mono
export:
  prefix: ui
  check: true
themes:
  dirs:
    - design/themes
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildExportConfig()
	assert.Equal(t, "Mono", config.ThemeName)
	assert.Equal(t, "ui", config.Prefix)
	assert.True(t, config.Check)
	assert.Equal(t, []string{"design/themes"}, config.ThemeDirs)
}

func TestActiveTheme_DefaultsToOcean(t *testing.T) {
	resetKoanf()

	theme, err := activeTheme()
	require.NoError(t, err)
	assert.Equal(t, "Ocean", theme.Name())
}

func TestInitCommand_CreatesThemeFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "Brand"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(filepath.Join("themes", "custom.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Brand")
	assert.Contains(t, string(data), "base: Ocean")
	assert.Contains(t, string(data), "palette:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.MkdirAll("themes", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("themes", "custom.yaml"), []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
