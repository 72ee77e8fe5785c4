// Package theme holds the Catppuccin Mocha palette shared by the widgets and
// the demo page.
package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Red      lipgloss.Color = "#f38ba8"
	Yellow   lipgloss.Color = "#f9e2af"
	Green    lipgloss.Color = "#a6e3a1"
	Blue     lipgloss.Color = "#89b4fa"
	Lavender lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface2 lipgloss.Color = "#585b70"
	Surface1 lipgloss.Color = "#45475a"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	Accent  = Blue
	Focus   = Lavender
	Success = Green
	Error   = Red
	Warning = Yellow
	Muted   = Subtext0
	Border  = Surface2
)

// Palette returns every palette color for validation / iteration.
func Palette() []lipgloss.Color {
	return []lipgloss.Color{
		Red, Yellow, Green, Blue, Lavender,
		Text, Subtext0, Overlay1, Overlay0,
		Surface2, Surface1, Surface0, Base, Mantle,
	}
}
