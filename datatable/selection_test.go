package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultipleToggleRoundTrip(t *testing.T) {
	s := NewSelection(john)
	s, ok := s.Toggle(jim, SelectMultiple)
	require.True(t, ok)
	require.Equal(t, []user{john, jim}, s.Rows())

	s, _ = s.Toggle(jim, SelectMultiple)
	require.Equal(t, []user{john}, s.Rows())
}

func TestMultipleKeepsInsertionOrder(t *testing.T) {
	var s Selection[user]
	for _, u := range []user{joe, john, jim} {
		s, _ = s.Toggle(u, SelectMultiple)
	}
	s, _ = s.Toggle(john, SelectMultiple)
	require.Equal(t, []user{joe, jim}, s.Rows())
}

func TestSingleReplacesAndClears(t *testing.T) {
	var s Selection[user]
	s, _ = s.Toggle(john, SelectSingle)
	s, _ = s.Toggle(jim, SelectSingle)
	require.Equal(t, []user{jim}, s.Rows())

	var t2 Selection[user]
	t2, _ = t2.Toggle(john, SelectSingle)
	t2, _ = t2.Toggle(john, SelectSingle)
	require.Empty(t, t2.Rows())
	require.NotNil(t, t2.Rows())
}

func TestToggleDisabled(t *testing.T) {
	s := NewSelection(john)
	next, ok := s.Toggle(jim, SelectNone)
	require.False(t, ok)
	require.Equal(t, s.Rows(), next.Rows())
}

func TestToggleDoesNotAliasPreviousSelection(t *testing.T) {
	before := NewSelection(john, jim)
	after, _ := before.Toggle(john, SelectMultiple)
	require.Equal(t, []user{john, jim}, before.Rows())
	require.Equal(t, []user{jim}, after.Rows())
}

func TestEqualRowsShareSelection(t *testing.T) {
	twin := user{Name: john.Name, Age: john.Age, Address: john.Address}
	s, _ := Selection[user]{}.Toggle(john, SelectMultiple)
	require.True(t, s.Contains(twin))
}

func TestParseSelectMode(t *testing.T) {
	require.Equal(t, SelectSingle, ParseSelectMode("single"))
	require.Equal(t, SelectMultiple, ParseSelectMode(" Multiple "))
	require.Equal(t, SelectNone, ParseSelectMode("false"))
	require.Equal(t, "none", SelectNone.String())
}
