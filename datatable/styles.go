package datatable

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fieldkit/internal/theme"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
	placeholderStyle = lipgloss.NewStyle().
				Foreground(theme.Muted).
				Padding(1, 2)
	spinnerStyle = lipgloss.NewStyle().Foreground(theme.Accent)
)

func gridStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(theme.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Bold(true).
		Foreground(theme.Base).
		Background(theme.Accent)
	return styles
}
