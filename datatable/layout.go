package datatable

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	LoadingText = "Loading..."
	EmptyText   = "No data available"
)

// Props is the caller-owned configuration of one render.
type Props[T comparable] struct {
	Data       []T
	Columns    []Column[T]
	Loading    bool
	Selectable SelectMode
	// OnRowSelect builds the message carrying the full selection after each
	// change. When nil the table emits a SelectMsg.
	OnRowSelect func(rows []T) tea.Msg
}

// SelectMsg reports the full selection of the table identified by ID.
type SelectMsg[T comparable] struct {
	ID   string
	Rows []T
}

// State is everything a table keeps between renders.
type State[T comparable] struct {
	Sort      Sort
	Selection Selection[T]
	Query     string
}

// Layout describes what a table renders for a given Props and State. When
// Placeholder is set it is rendered instead of the grid.
type Layout[T comparable] struct {
	Placeholder string
	Loading     bool

	Checkbox bool
	Headers  []string
	Rows     []T
	Cells    [][]string
	Checked  []bool
}

// VisibleRows filters and then sorts data for display.
func VisibleRows[T comparable](p Props[T], st State[T]) []T {
	return SortRows(FilterRows(p.Data, p.Columns, st.Query), p.Columns, st.Sort)
}

func Describe[T comparable](p Props[T], st State[T]) Layout[T] {
	switch {
	case p.Loading:
		return Layout[T]{Placeholder: LoadingText, Loading: true}
	case len(p.Data) == 0:
		return Layout[T]{Placeholder: EmptyText}
	}

	l := Layout[T]{
		Checkbox: p.Selectable != SelectNone,
		Headers:  make([]string, 0, len(p.Columns)),
		Rows:     VisibleRows(p, st),
	}
	for _, c := range p.Columns {
		l.Headers = append(l.Headers, c.Title+st.Sort.Indicator(c.Key, c.Sortable))
	}
	l.Cells = make([][]string, 0, len(l.Rows))
	l.Checked = make([]bool, 0, len(l.Rows))
	for _, row := range l.Rows {
		cells := make([]string, 0, len(p.Columns))
		for _, c := range p.Columns {
			cells = append(cells, c.Cell(row))
		}
		l.Cells = append(l.Cells, cells)
		l.Checked = append(l.Checked, st.Selection.Contains(row))
	}
	return l
}
