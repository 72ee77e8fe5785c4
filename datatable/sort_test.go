package datatable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortToggleSequence(t *testing.T) {
	var s Sort
	require.False(t, s.Active())

	s = s.Toggle("age", true)
	require.Equal(t, Sort{Key: "age", Asc: true}, s)
	s = s.Toggle("age", true)
	require.Equal(t, Sort{Key: "age", Asc: false}, s)
	s = s.Toggle("age", true)
	require.Equal(t, Sort{Key: "age", Asc: true}, s)

	s = s.Toggle("age", true).Toggle("name", true)
	require.Equal(t, Sort{Key: "name", Asc: true}, s)

	require.Equal(t, s, s.Toggle("address", false))
}

func TestSortRowsByAge(t *testing.T) {
	cols := userColumns()
	asc := SortRows(users(), cols, Sort{Key: "age", Asc: true})
	require.Equal(t, []string{"Joe Black", "John Brown", "Jim Green"}, names(asc))

	desc := SortRows(users(), cols, Sort{Key: "age"})
	require.Equal(t, []string{"Jim Green", "John Brown", "Joe Black"}, names(desc))
}

func TestSortRowsDoesNotMutateInput(t *testing.T) {
	in := users()
	_ = SortRows(in, userColumns(), Sort{Key: "age", Asc: true})
	require.Equal(t, users(), in)
}

func TestSortRowsIsStable(t *testing.T) {
	rows := []user{
		{Name: "a", Age: 30},
		{Name: "b", Age: 20},
		{Name: "c", Age: 30},
		{Name: "d", Age: 20},
		{Name: "e", Age: 30},
	}
	asc := SortRows(rows, userColumns(), Sort{Key: "age", Asc: true})
	require.Equal(t, []string{"b", "d", "a", "c", "e"}, names(asc))

	desc := SortRows(rows, userColumns(), Sort{Key: "age"})
	require.Equal(t, []string{"a", "c", "e", "b", "d"}, names(desc))
}

func TestSortRowsUnknownOrUnsortable(t *testing.T) {
	cols := userColumns()
	require.Equal(t, users(), SortRows(users(), cols, Sort{}))
	require.Equal(t, users(), SortRows(users(), cols, Sort{Key: "email", Asc: true}))

	cols = append(cols, Column[user]{Key: "blank", Sortable: true})
	require.Equal(t, users(), SortRows(users(), cols, Sort{Key: "blank", Asc: true}))
}

func TestCompare(t *testing.T) {
	type score int
	now := time.Now()
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 2, 10, -1},
		{"named ints", score(5), score(3), 1},
		{"mixed numbers", 2, 2.5, -1},
		{"uints", uint8(7), uint8(7), 0},
		{"strings", "Jim", "Joe", -1},
		{"bools", true, false, 1},
		{"times", now, now.Add(time.Second), -1},
		{"nil", nil, 3, 0},
		{"mismatched", "10", 9, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestIndicator(t *testing.T) {
	s := Sort{Key: "age", Asc: true}
	require.Equal(t, " ↑", s.Indicator("age", true))
	require.Equal(t, " ↕", s.Indicator("name", true))
	require.Equal(t, "", s.Indicator("address", false))
	require.Equal(t, " ↓", Sort{Key: "age"}.Indicator("age", true))
}
