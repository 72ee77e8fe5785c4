package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/fieldkit/internal/theme"
)

// section is the titled frame around one part of the page.
type section struct {
	Title   string
	Content string
	Focused bool
}

func (s section) Render(width int) string {
	if width < 6 {
		width = 6
	}
	border := theme.Overlay0
	titlePrefix := "  "
	if s.Focused {
		border = theme.Success
		titlePrefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := " " + strings.TrimSpace(titlePrefix+s.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = ansi.Truncate(titleText, innerWidth, "")
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)

	v := borderStyle.Render("│")
	rows := []string{
		borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
			titleStyle.Render(titleText) +
			borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮"),
	}
	for _, line := range strings.Split(s.Content, "\n") {
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
