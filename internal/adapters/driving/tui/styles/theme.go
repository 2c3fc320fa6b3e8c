// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for the evaluate key.
	Primary lipgloss.Color

	// Secondary colours operator keys.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning colours the control keys (AC, backspace).
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Pressed is the background of a flashed key.
	Pressed lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Pressed:    lipgloss.Color("#585B70"), // Surface gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Display frames the readout.
	Display lipgloss.Style

	// Readout renders the buffer.
	Readout lipgloss.Style

	// Formula renders the expression above a result.
	Formula lipgloss.Style

	// Button is a digit key.
	Button lipgloss.Style

	// Operator is an operator key.
	Operator lipgloss.Style

	// Control is a clear or backspace key.
	Control lipgloss.Style

	// Equals is the evaluate key.
	Equals lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// ButtonWidth is the rendered width of a keypad key, borders included.
const ButtonWidth = 7

// ButtonHeight is the rendered height of a keypad key, borders included.
const ButtonHeight = 3

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	button := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground).
		Width(ButtonWidth - 2).
		Align(lipgloss.Center)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Display: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Readout: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Formula: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button: button,

		Operator: button.
			Foreground(theme.Secondary),

		Control: button.
			Foreground(theme.Warning),

		Equals: button.
			Bold(true).
			Foreground(theme.Primary),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PressedKey returns base highlighted as a flashed key.
func (s *Styles) PressedKey(base lipgloss.Style) lipgloss.Style {
	return base.
		Bold(true).
		Background(s.theme.Pressed).
		BorderForeground(s.theme.Primary)
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
