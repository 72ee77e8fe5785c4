package datatable

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnknownField = errors.New("datatable: unknown field")

// Column describes one table column. Field extracts the cell value from a row;
// a nil Field renders blank cells and never sorts.
type Column[T any] struct {
	Key      string
	Title    string
	Field    func(row T) any
	Sortable bool
	// Width is the rendered width in cells; zero sizes the column to its content.
	Width int
}

// FieldColumn builds a column reading the exported struct field named field.
// T must be a struct or a pointer to one; the field is checked here so a typo
// fails at construction rather than rendering blank cells.
func FieldColumn[T any](key, title, field string, sortable bool) (Column[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	ptr := rt.Kind() == reflect.Pointer
	if ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return Column[T]{}, fmt.Errorf("column %q: %s is not a struct: %w", key, rt, ErrUnknownField)
	}
	sf, ok := rt.FieldByName(field)
	if !ok || !sf.IsExported() {
		return Column[T]{}, fmt.Errorf("column %q: %s has no exported field %q: %w", key, rt, field, ErrUnknownField)
	}
	index := sf.Index
	return Column[T]{
		Key:      key,
		Title:    title,
		Sortable: sortable,
		Field: func(row T) any {
			v := reflect.ValueOf(row)
			if ptr {
				if v.IsNil() {
					return nil
				}
				v = v.Elem()
			}
			fv, err := v.FieldByIndexErr(index)
			if err != nil {
				return nil
			}
			return fv.Interface()
		},
	}, nil
}

// value returns the cell value for row. Typed nils come back as nil so they
// render blank and sort like a missing value.
func (c Column[T]) value(row T) any {
	if c.Field == nil {
		return nil
	}
	v := c.Field(row)
	if isNil(v) {
		return nil
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Cell renders the column value for row; missing values render blank.
func (c Column[T]) Cell(row T) string {
	v := c.value(row)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func columnByKey[T any](cols []Column[T], key string) (Column[T], bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}
