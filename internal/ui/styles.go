package ui

import "github.com/charmbracelet/lipgloss"

// Palette tuned for dark terminal backgrounds.
const (
	ColorWhite        = "#FFFFFF"
	ColorPrimary      = "#2E7BFF"
	ColorPrimaryLight = "#639CFF"
	ColorPrimaryDark  = "#0D5DFF"
	ColorCode         = "#97C1FF"
	ColorMuted        = "#6C7585"
	ColorSubtle       = "#4E5560"
	ColorSurface      = "#212732"
	ColorSuccess      = "#63D78E"
	ColorError        = "#F87171"
	ColorWarning      = "#F9C424"
	ColorAccent       = "#A787FF"
)

var (
	// TitleStyle - for main headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorError))

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	// BoxStyle - for template notes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPrimary)).
			Padding(0, 1)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))

	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryLight))

	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCode))

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent))
)
