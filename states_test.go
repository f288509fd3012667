package classy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatePatternPresets(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		pattern  StatePattern
		contains []string
	}{
		{"loading", LoadingState(theme), []string{
			"state-pattern", "animate-spin", "text-ocean-blue-500", "bg-gray-50",
		}},
		{"empty", EmptyState(theme), []string{"text-gray-600", "bg-gray-50"}},
		{"error", ErrorState(theme), []string{"text-red-600", "bg-red-50"}},
		{"success", SuccessState(theme), []string{"text-green-600", "bg-green-50"}},
		{"warning", WarningState(theme), []string{"text-orange-600", "bg-orange-50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := strings.Fields(tt.pattern.Classes())
			for _, token := range tt.contains {
				assert.Contains(t, tokens, token)
			}
			// Centered layout is the shared default.
			assert.Contains(t, tokens, "items-center")
			assert.Contains(t, tokens, "text-center")
		})
	}
}

func TestStatePatternSuggestions(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name       string
		pattern    StatePattern
		icon       string
		actionText string
	}{
		{"error recommends retry", ErrorState(theme), "alert-circle", "Try Again"},
		{"empty offers refresh", EmptyState(theme), "inbox", "Refresh"},
		{"empty recommends add", EmptyState(theme).Action(ActionRecommended), "inbox", "Add Item"},
		{"warning requires action", WarningState(theme).Action(ActionRequired), "alert-triangle", "Take Action"},
		{"success needs nothing", SuccessState(theme), "check-circle", ""},
		{"loading needs nothing", LoadingState(theme), "loader", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.icon, tt.pattern.SuggestedIcon())
			assert.Equal(t, tt.actionText, tt.pattern.SuggestedActionText())
		})
	}
}

func TestStatePatternRequiresAction(t *testing.T) {
	theme := DefaultTheme()

	assert.False(t, ErrorState(theme).RequiresAction())
	assert.True(t, ErrorState(theme).Action(ActionRequired).RequiresAction())
}

func TestStatePatternFullscreen(t *testing.T) {
	theme := DefaultTheme()

	tokens := strings.Fields(LoadingState(theme).Fullscreen(true).Classes())
	assert.Contains(t, tokens, "min-h-screen")
	assert.Contains(t, tokens, "justify-center")
}

func TestStatePatternSizes(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name    string
		size    Size
		padding []string
	}{
		{"xs", SizeXSmall, []string{"px-4", "py-8"}},
		{"sm", SizeSmall, []string{"px-6", "py-12"}},
		{"md", SizeMedium, []string{"px-8", "py-16"}},
		{"lg", SizeLarge, []string{"px-12", "py-20"}},
		{"xl", SizeXLarge, []string{"px-16", "py-24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := strings.Fields(State(theme).Size(tt.size).Classes())
			for _, token := range tt.padding {
				assert.Contains(t, tokens, token)
			}
		})
	}
}
