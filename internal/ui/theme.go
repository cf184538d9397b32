package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ScaffoldTheme returns the huh theme used by every prompt.
func ScaffoldTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state (when item is selected/active)
	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color(ColorPrimary))
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(ColorPrimaryLight)).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color(ColorMuted))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(lipgloss.Color(ColorPrimary))
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(lipgloss.Color(ColorPrimary))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color(ColorCode))
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(lipgloss.Color(ColorSuccess))
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(lipgloss.Color(ColorMuted))
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorPrimaryDark))
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color(ColorSurface))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color(ColorError))
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(lipgloss.Color(ColorPrimary))
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(lipgloss.Color(ColorMuted))
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(lipgloss.Color(ColorPrimary))

	// Blurred state (when not focused)
	t.Blurred.Base = t.Blurred.Base.BorderForeground(lipgloss.Color(ColorSubtle))
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color(ColorMuted))
	t.Blurred.Description = t.Blurred.Description.Foreground(lipgloss.Color(ColorSubtle))

	return t
}
