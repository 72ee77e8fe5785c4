package inputfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (f *Field) View(p Props) string {
	l := Describe(p, f.state)
	f.sync(p)

	var trailing []string
	if l.ShowClear {
		trailing = append(trailing, actionStyle.Render("✕"))
	}
	if l.ShowToggle {
		trailing = append(trailing, toggleStyle.Render(l.ToggleLabel))
	}
	if l.ShowSpinner {
		trailing = append(trailing, f.spin.View())
	}
	actions := strings.Join(trailing, " ")

	inner := f.width - chromeWidth(l)
	if actions != "" {
		inner -= lipgloss.Width(actions) + 1
	}
	f.input.Width = max(4, inner-1)

	content := f.input.View()
	if actions != "" {
		gap := max(1, inner-lipgloss.Width(content)+1)
		content += strings.Repeat(" ", gap) + actions
	}

	rows := make([]string, 0, 3)
	if l.Label != "" {
		rows = append(rows, labelStyle.Render(l.Label))
	}
	rows = append(rows, boxStyle(l, f.input.Focused()).Render(content))
	if l.Message != "" {
		if l.MessageIsErr {
			rows = append(rows, errorStyle.Render(l.Message))
		} else {
			rows = append(rows, helperStyle.Render(l.Message))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
