package inputfield

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fieldkit/internal/theme"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	helperStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	errorStyle   = lipgloss.NewStyle().Foreground(theme.Error)
	actionStyle  = lipgloss.NewStyle().Foreground(theme.Overlay1)
	toggleStyle  = lipgloss.NewStyle().Foreground(theme.Accent)
	spinnerStyle = lipgloss.NewStyle().Foreground(theme.Accent)
)

func sizePadding(s Size) (vertical, horizontal int) {
	switch s {
	case SizeSm:
		return 0, 1
	case SizeLg:
		return 1, 2
	default:
		return 0, 2
	}
}

// boxStyle builds the input chrome. Invalid wins over focus for the border color.
func boxStyle(l Layout, focused bool) lipgloss.Style {
	v, h := sizePadding(l.Size)
	st := lipgloss.NewStyle().Padding(v, h)

	border := theme.Overlay0
	if focused {
		border = theme.Accent
	}
	if l.Invalid {
		border = theme.Error
	}

	switch l.Variant {
	case VariantFilled:
		st = st.Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Background(theme.Surface0)
		if focused || l.Invalid {
			st = st.BorderForeground(border)
		}
	case VariantGhost:
		if focused || l.Invalid {
			st = st.Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(border)
		}
	default:
		st = st.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	}

	if l.Disabled {
		st = st.Faint(true)
	}
	return st
}

// chromeWidth is the horizontal space the box style takes around the content.
func chromeWidth(l Layout) int {
	_, h := sizePadding(l.Size)
	w := 2 * h
	if l.Variant != VariantGhost {
		w += 2
	}
	return w
}
