// Package styles provides colour themes and styling for schematic output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used to draw schematics.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for separators and less important text.
	Muted lipgloss.Color

	// Part marks numbers adjacent to a symbol.
	Part lipgloss.Color

	// Gear marks gear cells meshing exactly two numbers.
	Gear lipgloss.Color

	// Symbol marks every other symbol cell.
	Symbol lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Part:       lipgloss.Color("#A6E3A1"), // Green
		Gear:       lipgloss.Color("#F9E2AF"), // Yellow
		Symbol:     lipgloss.Color("#06B6D4"), // Cyan
		Error:      lipgloss.Color("#F38BA8"), // Red
		Bar:        lipgloss.Color("#181825"), // Near black
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

	// Help style for help text.
	Help lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// PartNumber style for numbers adjacent to a symbol.
	PartNumber lipgloss.Style

	// Number style for numbers that touch no symbol.
	Number lipgloss.Style

	// Gear style for qualifying gear cells.
	Gear lipgloss.Style

	// Symbol style for all other symbol cells.
	Symbol lipgloss.Style

	// Separator style for '.' cells.
	Separator lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Bar).
			Padding(0, 1),

		PartNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Part),

		Number: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Strikethrough(true),

		Gear: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Bar).
			Background(theme.Gear),

		Symbol: lipgloss.NewStyle().
			Foreground(theme.Symbol),

		Separator: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged, for pipes and
// terminals without colour.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:      DefaultTheme(),
		Title:      plain,
		Normal:     plain,
		Muted:      plain,
		Help:       plain,
		Error:      plain,
		StatusBar:  plain,
		PartNumber: plain,
		Number:     plain,
		Gear:       plain,
		Symbol:     plain,
		Separator:  plain,
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
