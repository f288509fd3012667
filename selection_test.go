package classy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionPresets(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name      string
		pattern   SelectionPattern
		container []string
		item      []string
		multiple  bool
	}{
		{
			name:      "filter bar",
			pattern:   FilterSelection(theme),
			container: []string{"flex-row", "gap-2", "items-center"},
			item:      []string{"rounded-md", "font-medium", "bg-white", "border-gray-200"},
		},
		{
			name:      "chip group",
			pattern:   ChipSelection(theme),
			container: []string{"flex-wrap", "gap-2"},
			item:      []string{"rounded-full", "hover:opacity-80"},
			multiple:  true,
		},
		{
			name:      "tab strip",
			pattern:   TabSelection(theme),
			container: []string{"flex-row"},
			item:      []string{"border-b-2", "px-4", "py-2"},
		},
		{
			name:      "card grid",
			pattern:   CardSelection(theme),
			container: []string{"grid", "grid-cols-auto"},
			item:      []string{"rounded-lg", "shadow-lg", "hover:shadow-xl", "hover:scale-110"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := strings.Fields(tt.pattern.ContainerClasses())
			for _, token := range tt.container {
				assert.Contains(t, container, token)
			}

			item := strings.Fields(tt.pattern.ItemClasses())
			for _, token := range tt.item {
				assert.Contains(t, item, token)
			}

			assert.Equal(t, tt.multiple, tt.pattern.AllowsMultiple())
		})
	}
}

func TestSelectionStateClasses(t *testing.T) {
	theme := DefaultTheme()

	tokens := strings.Fields(Selection(theme).State(Selected).ItemClasses())
	assert.Contains(t, tokens, "bg-ocean-blue-500")
	assert.Contains(t, tokens, "text-white")
	assert.Contains(t, tokens, "border-ocean-blue-500")

	tokens = strings.Fields(Selection(theme).State(SelectionDisabled).ItemClasses())
	assert.Contains(t, tokens, "bg-gray-300")
	assert.Contains(t, tokens, "cursor-not-allowed")
	assert.NotContains(t, tokens, "cursor-pointer")
}

func TestSelectionCountBadge(t *testing.T) {
	theme := DefaultTheme()

	assert.Empty(t, Selection(theme).CountClasses())

	tokens := strings.Fields(FilterSelection(theme).CountClasses())
	assert.Contains(t, tokens, "rounded-full")
	assert.Contains(t, tokens, "bg-gray-50")
	assert.Contains(t, tokens, "text-gray-600")

	tokens = strings.Fields(FilterSelection(theme).State(Selected).CountClasses())
	assert.Contains(t, tokens, "bg-ocean-blue-500")
	assert.Contains(t, tokens, "text-white")
}

func TestSelectionInteractivity(t *testing.T) {
	theme := DefaultTheme()

	assert.True(t, Selection(theme).IsInteractive())
	assert.False(t, Selection(theme).Behavior(SelectNone).IsInteractive())
	assert.False(t, Selection(theme).State(SelectionDisabled).IsInteractive())
}

func TestSelectionClassesFromStrings(t *testing.T) {
	theme := DefaultTheme()

	container, item := SelectionClassesFromStrings(theme, "multiple", "active", "chip", "inline", "sm", "subtle", false)
	wantContainer := ChipSelection(theme).WithClearAll(false).Size(SizeSmall).State(Selected).ContainerClasses()
	wantItem := ChipSelection(theme).WithClearAll(false).Size(SizeSmall).State(Selected).ItemClasses()
	assert.Equal(t, wantContainer, container)
	assert.Equal(t, wantItem, item)

	// Unknown inputs fall back to the single-selection button defaults.
	container, item = SelectionClassesFromStrings(theme, "septuple", "glowing", "hologram", "spiral", "giant", "violent", false)
	assert.Equal(t, Selection(theme).ContainerClasses(), container)
	assert.Equal(t, Selection(theme).ItemClasses(), item)
}
