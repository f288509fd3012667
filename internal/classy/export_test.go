package classy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/classy"
)

func TestExportHexTheme(t *testing.T) {
	var buf bytes.Buffer

	result, err := Export(&buf, ExportConfig{ThemeName: "Sunrise", Check: true})
	require.NoError(t, err)

	assert.Equal(t, "Sunrise", result.ThemeName)
	assert.Equal(t, len(classy.ColorTokens()), result.VariablesWritten)
	assert.Equal(t, result.VariablesWritten, result.HexVariables)
	assert.Empty(t, result.Findings)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "/* Sunrise theme */\n:root {\n"))
	assert.Contains(t, out, "--color-primary: #F97316;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestExportStyleTokenTheme(t *testing.T) {
	var buf bytes.Buffer

	result, err := Export(&buf, ExportConfig{ThemeName: "Ocean", Prefix: "c"})
	require.NoError(t, err)

	assert.Zero(t, result.HexVariables)
	assert.Contains(t, buf.String(), "--c-primary: var(--ocean-blue-500);")
}

func TestExportDefaultsToOcean(t *testing.T) {
	var buf bytes.Buffer

	result, err := Export(&buf, ExportConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Ocean", result.ThemeName)
}

func TestExportUnknownTheme(t *testing.T) {
	var buf bytes.Buffer

	_, err := Export(&buf, ExportConfig{ThemeName: "Atlantis"})
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing may be written on failure")
}

func TestResolveThemeFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "name: Forest\npalette:\n  primary: emerald-600\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forest.yaml"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("palette: 12\n"), 0o644))

	theme, err := ResolveTheme("Forest", []string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Forest", theme.Name())
	assert.Equal(t, "emerald-600", classy.Resolve(theme, classy.Primary))

	// Built-ins win over files and never touch the directories.
	theme, err = ResolveTheme("Mono", []string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mono", theme.Name())

	_, err = ResolveTheme("Atlantis", []string{dir}, nil)
	assert.Error(t, err)
}

func TestListThemes(t *testing.T) {
	dir := t.TempDir()
	content := "name: Forest\nhex:\n  primary: \"#059669\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forest.yaml"), []byte(content), 0o644))

	infos, err := ListThemes([]string{dir}, nil)
	require.NoError(t, err)
	require.Len(t, infos, len(classy.BuiltinThemes())+1)

	byName := make(map[string]ThemeInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	assert.Equal(t, "built-in", byName["Ocean"].Source)
	assert.False(t, byName["Ocean"].HasHex)
	assert.True(t, byName["Sunrise"].HasHex)

	forest := byName["Forest"]
	assert.Equal(t, filepath.Join(dir, "forest.yaml"), forest.Source)
	assert.True(t, forest.HasHex)
}
