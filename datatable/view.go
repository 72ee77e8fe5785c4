package datatable

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
)

const (
	checkboxWidth = 3
	maxAutoWidth  = 40
	headerMarker  = "▸ "
)

func (t *Table[T]) View(p Props[T]) string {
	l := Describe(p, t.state)
	if l.Loading {
		return frameStyle.Render(placeholderStyle.Render(t.spin.View() + " " + l.Placeholder))
	}
	if l.Placeholder != "" {
		return frameStyle.Render(placeholderStyle.Render(l.Placeholder))
	}
	t.sync(p, l)
	return frameStyle.Render(t.grid.View())
}

// sync pushes the described layout into the bubbles table.
func (t *Table[T]) sync(p Props[T], l Layout[T]) {
	if l.Placeholder != "" {
		return
	}
	if t.col >= len(p.Columns) {
		t.col = max(0, len(p.Columns)-1)
	}

	cols := make([]table.Column, 0, len(l.Headers)+1)
	if l.Checkbox {
		cols = append(cols, table.Column{Title: "", Width: checkboxWidth})
	}
	for i, h := range l.Headers {
		w := columnWidth(p.Columns[i], h, l.Cells, i)
		if i == t.col && t.grid.Focused() {
			h = headerMarker + h
		}
		cols = append(cols, table.Column{Title: h, Width: w})
	}

	rows := make([]table.Row, 0, len(l.Cells))
	for r, cells := range l.Cells {
		row := make(table.Row, 0, len(cols))
		if l.Checkbox {
			box := "[ ]"
			if l.Checked[r] {
				box = "[x]"
			}
			row = append(row, box)
		}
		rows = append(rows, append(row, cells...))
	}

	// Rows are cleared first so the grid never renders old rows against a
	// different column count.
	t.grid.SetRows(nil)
	t.grid.SetColumns(cols)
	t.grid.SetRows(rows)
	if c := t.grid.Cursor(); len(rows) > 0 && c >= len(rows) {
		t.grid.SetCursor(len(rows) - 1)
	}

	width := 0
	for _, c := range cols {
		width += c.Width + 2
	}
	t.grid.SetWidth(width)
}

func columnWidth[T any](c Column[T], header string, cells [][]string, i int) int {
	if c.Width > 0 {
		return c.Width
	}
	w := ansi.StringWidth(header) + ansi.StringWidth(headerMarker)
	for _, row := range cells {
		w = max(w, ansi.StringWidth(row[i]))
	}
	return min(w, maxAutoWidth)
}
