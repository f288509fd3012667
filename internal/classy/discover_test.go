package classy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverThemeFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.yaml"), 0o755))

	for _, name := range []string{"a.yaml", "b.yml", "notes.txt", "nested/c.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("name: X\n"), 0o644))
	}

	// Passing the same directory twice must not duplicate results.
	files, err := DiscoverThemeFiles([]string{dir, dir}, nil)
	require.NoError(t, err)

	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(dir, "a.yaml"))
	assert.Contains(t, files, filepath.Join(dir, "b.yml"))
	assert.Contains(t, files, filepath.Join(dir, "nested", "c.yaml"))
	assert.NotContains(t, files, filepath.Join(dir, "notes.txt"))
	assert.NotContains(t, files, filepath.Join(dir, "dir.yaml"))
}

func TestDiscoverThemeFilesCustomIncludes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.theme"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("name: X\n"), 0o644))
	}

	files, err := DiscoverThemeFiles([]string{dir}, []string{"*.theme"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.theme")}, files)
}

func TestDiscoverThemeFilesMissingDir(t *testing.T) {
	files, err := DiscoverThemeFiles([]string{filepath.Join(t.TempDir(), "absent")}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
