package classy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleHeader, "plain", false))
	assert.Contains(t, RenderStyle(StyleHeader, "styled", true), "styled")
}

func TestSeverityStyle(t *testing.T) {
	assert.Equal(t, StyleError, severityStyle(SeverityError))
	assert.Equal(t, StyleWarning, severityStyle(SeverityWarning))
	assert.Equal(t, StyleWarning, severityStyle("unknown"))
}

func TestSwatch(t *testing.T) {
	assert.Empty(t, Swatch("#F97316", false))
	assert.Contains(t, Swatch("#F97316", true), "██")
}
