package datatable

import (
	"slices"
	"strings"
)

type SelectMode int

const (
	SelectNone SelectMode = iota
	SelectSingle
	SelectMultiple
)

func (m SelectMode) String() string {
	switch m {
	case SelectSingle:
		return "single"
	case SelectMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// ParseSelectMode maps "single" and "multiple"; anything else disables
// selection.
func ParseSelectMode(s string) SelectMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SelectSingle
	case "multiple":
		return SelectMultiple
	default:
		return SelectNone
	}
}

// Selection is the ordered set of selected rows. The zero value is empty.
type Selection[T comparable] struct {
	rows []T
}

func NewSelection[T comparable](rows ...T) Selection[T] {
	return Selection[T]{rows: slices.Clone(rows)}
}

func (s Selection[T]) Rows() []T { return append(make([]T, 0, len(s.rows)), s.rows...) }

func (s Selection[T]) Len() int { return len(s.rows) }

func (s Selection[T]) Contains(row T) bool { return slices.Contains(s.rows, row) }

// Toggle applies a checkbox toggle on row. Multiple mode flips membership and
// keeps insertion order; single mode clears when row is the selection and
// otherwise replaces it. It reports false, leaving s unchanged, when selection
// is disabled.
func (s Selection[T]) Toggle(row T, mode SelectMode) (Selection[T], bool) {
	switch mode {
	case SelectMultiple:
		if s.Contains(row) {
			return Selection[T]{rows: slices.DeleteFunc(slices.Clone(s.rows), func(r T) bool { return r == row })}, true
		}
		return Selection[T]{rows: append(slices.Clone(s.rows), row)}, true
	case SelectSingle:
		if s.Contains(row) {
			return Selection[T]{}, true
		}
		return Selection[T]{rows: []T{row}}, true
	default:
		return s, false
	}
}
