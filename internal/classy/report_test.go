package classy

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/classy"
)

func TestSampleComponents(t *testing.T) {
	for _, theme := range classy.BuiltinThemes() {
		components := SampleComponents(theme)
		require.Len(t, components, 10, "theme %s", theme.Name())
		for _, component := range components {
			assert.NotEmpty(t, component.Name)
			assert.NotEmpty(t, component.Classes, "component %s", component.Name)
		}
	}
}

func TestReporterPrintPalette(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintPalette(classy.NewSunriseTheme())

	out := buf.String()
	assert.Contains(t, out, "Sunrise palette")
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "sunrise-orange-500")
	assert.Contains(t, out, "#F97316")
}

func TestReporterPrintFindings(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false)

	reporter.PrintFindings(nil)
	assert.Contains(t, buf.String(), "check passed")

	buf.Reset()
	reporter.PrintFindings([]Finding{
		{Text: "second", Severity: SeverityWarning, Pos: FindingPos{Line: 3, Offset: 40}},
		{Text: "first", Severity: SeverityError, Pos: FindingPos{Line: 2, Offset: 10}},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.Contains(t, out, "line 2: error: first")
	assert.Contains(t, out, "line 3: warning: second")
}

func TestWritePreviewJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePreviewJSON(&buf, classy.NewSunriseTheme()))

	var preview JSONPreview
	require.NoError(t, json.Unmarshal(buf.Bytes(), &preview))

	assert.Equal(t, "1.0", preview.Version)
	assert.Equal(t, "Sunrise", preview.Theme)
	assert.Equal(t, "sunrise-orange-500", preview.Palette["primary"])
	assert.Equal(t, "#F97316", preview.Hex["primary"])
	assert.Len(t, preview.Components, 10)

	// Ocean has no brand hex values; the field is omitted entirely.
	buf.Reset()
	require.NoError(t, WritePreviewJSON(&buf, classy.NewOceanTheme()))
	assert.NotContains(t, buf.String(), `"hex"`)
}
