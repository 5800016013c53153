// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Link is the colour of display URLs.
	Link lipgloss.Color

	// Highlight marks result numbers.
	Highlight lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Link:       lipgloss.Color("#89B4FA"), // Blue
		Highlight:  lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the header.
	Title lipgloss.Style

	// Query style for the echoed search query.
	Query lipgloss.Style

	// Number style for result numbers.
	Number lipgloss.Style

	// ResultTitle style for unselected result titles.
	ResultTitle lipgloss.Style

	// Selected style for the highlighted result title.
	Selected lipgloss.Style

	// URL style for display URLs.
	URL lipgloss.Style

	// Muted style for descriptions and hints.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// NormalBadge marks normal mode in the status bar.
	NormalBadge lipgloss.Style

	// InsertBadge marks insert mode in the status bar.
	InsertBadge lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Query: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Number: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		ResultTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		URL: lipgloss.NewStyle().
			Foreground(theme.Link),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		NormalBadge: badge.
			Foreground(theme.Bar).
			Background(theme.Secondary),

		InsertBadge: badge.
			Foreground(theme.Bar).
			Background(theme.Highlight),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
