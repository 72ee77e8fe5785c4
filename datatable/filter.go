package datatable

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// minFuzzyLen is the shortest word that may match with one typo.
const minFuzzyLen = 4

// FilterRows keeps the rows whose rendered cells match query. Every query word
// must appear in some cell, either as a case-insensitive substring or, for
// words of minFuzzyLen runes or more, as a cell word at edit distance one.
func FilterRows[T any](rows []T, cols []Column[T], query string) []T {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return append([]T(nil), rows...)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, cols, terms) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches[T any](row T, cols []Column[T], terms []string) bool {
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		if cell := c.Cell(row); cell != "" {
			cells = append(cells, strings.ToLower(cell))
		}
	}
	for _, term := range terms {
		if !termMatches(term, cells) {
			return false
		}
	}
	return true
}

func termMatches(term string, cells []string) bool {
	for _, cell := range cells {
		if strings.Contains(cell, term) {
			return true
		}
	}
	if utf8.RuneCountInString(term) < minFuzzyLen {
		return false
	}
	for _, cell := range cells {
		for _, word := range strings.Fields(cell) {
			if levenshtein.ComputeDistance(term, word) <= 1 {
				return true
			}
		}
	}
	return false
}
