package ui

import (
	"chromamem/internal/palette"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focus markers, borders
	ColorDanger    = "196" // Red - for reset confirmation
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorInk       = "16"  // Black - text drawn on top of swatches
	ColorButton    = "238" // Dark gray - reset button background
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for the app title
	TitleWarning lipgloss.Style // Bold danger color - for the reset modal

	Box       lipgloss.Style // Standard box with rounded border (help overlay)
	BoxDanger lipgloss.Style // Warning box (reset confirmation)

	Section lipgloss.Style // Unfocused panel header
	Focused lipgloss.Style // Focused panel header and cursor marker
	Muted   lipgloss.Style // Dimmed text
	Hint    lipgloss.Style // Help/hint text
	Status  lipgloss.Style // Status line
	Empty   lipgloss.Style // Empty state placeholder
	Button  lipgloss.Style // Reset control
	Label   lipgloss.Style // Modal label/content
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Focused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorButton)),
	Label: lipgloss.NewStyle(),
}

// swatchStyle paints a palette cell. Focused cells are bold and underlined.
func swatchStyle(c palette.Color, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(c.Swatch()).
		Foreground(lipgloss.Color(ColorInk))
	if focused {
		s = s.Bold(true).Underline(true)
	}
	return s
}
