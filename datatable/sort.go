package datatable

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"time"
)

// Sort is the active sort column. An empty Key means unsorted and Asc is
// ignored.
type Sort struct {
	Key string
	Asc bool
}

func (s Sort) Active() bool { return s.Key != "" }

// Toggle applies a header click on the column key. Clicking the active column
// flips the direction, clicking another sortable column sorts it ascending and
// non-sortable columns are ignored.
func (s Sort) Toggle(key string, sortable bool) Sort {
	if !sortable || key == "" {
		return s
	}
	if s.Key == key {
		return Sort{Key: key, Asc: !s.Asc}
	}
	return Sort{Key: key, Asc: true}
}

// Indicator is the header suffix for a column under s.
func (s Sort) Indicator(key string, sortable bool) string {
	if !sortable {
		return ""
	}
	if s.Key != key {
		return " ↕"
	}
	if s.Asc {
		return " ↑"
	}
	return " ↓"
}

// SortRows returns a sorted copy of rows. Equal values keep their input order.
func SortRows[T any](rows []T, cols []Column[T], s Sort) []T {
	out := slices.Clone(rows)
	if !s.Active() {
		return out
	}
	col, ok := columnByKey(cols, s.Key)
	if !ok || col.Field == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(col.value(a), col.value(b))
		if !s.Asc {
			c = -c
		}
		return c
	})
	return out
}

// Compare orders two cell values. Numbers compare numerically (including named
// numeric types), strings lexically, bools false before true and times
// chronologically. Values of other or mismatched types compare by their
// printed form. A nil value compares equal to anything.
func Compare(a, b any) int {
	if a == nil || b == nil {
		return 0
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return isInt(v) || isUint(v)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
