package demo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/fieldkit/datatable"
	"github.com/jask/fieldkit/inputfield"
	"github.com/jask/fieldkit/internal/config"
)

// feed runs cmd and sends every prompt message back into the app.
func feed(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				feed(a, c)
			}
			return
		}
		if msg == nil {
			return
		}
		_, next := a.Update(msg)
		feed(a, next)
	case <-time.After(50 * time.Millisecond):
	}
}

func newApp(t *testing.T, log *zap.Logger) *App {
	t.Helper()
	users, err := LoadUsers("")
	require.NoError(t, err)
	a, err := New(config.UIConfig{Selectable: "multiple", TableHeight: 6}, users, log)
	require.NoError(t, err)
	a.setFocus(0)
	return a
}

func press(a *App, msg tea.KeyMsg) {
	_, cmd := a.Update(msg)
	feed(a, cmd)
}

func typeText(a *App, s string) {
	for _, r := range s {
		press(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoadUsersBuiltIn(t *testing.T) {
	users, err := LoadUsers("")
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, User{Name: "Jim Green", Age: 45, Address: "London No. 1 Lake Park"}, users[1])
}

func TestLoadUsersFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[user]]\nname = \"Ann\"\nage = 51\n"), 0o644))
	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Equal(t, []User{{Name: "Ann", Age: 51}}, users)

	_, err = LoadUsers(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestTypingUpdatesSharedName(t *testing.T) {
	a := newApp(t, nil)
	typeText(a, "Ann")
	require.Equal(t, "Ann", a.name)

	// the clearable field shares the name value
	a.setFocus(2)
	press(a, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, "", a.name)
}

func TestPasswordValueOwnedByHost(t *testing.T) {
	a := newApp(t, nil)
	a.setFocus(1)
	typeText(a, "pw")
	require.Equal(t, "pw", a.password)
	require.Equal(t, "", a.name)

	press(a, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, a.passwordField.State().ShowPassword)
	require.Equal(t, "pw", a.password)
}

func TestFilterNarrowsTable(t *testing.T) {
	a := newApp(t, nil)
	a.setFocus(3)
	typeText(a, "london")
	require.Equal(t, "london", a.table.Query())
	rows := a.table.VisibleRows(a.tableProps())
	require.Len(t, rows, 1)
	require.Equal(t, "Jim Green", rows[0].Name)
}

func TestSelectionIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := newApp(t, zap.New(core))

	press(a, tea.KeyMsg{Type: tea.KeyTab})
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, a.tableFocused())

	press(a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	entries := logs.FilterMessage("selected rows").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].ContextMap()["count"])
	require.Equal(t, "Selected rows: John Brown", a.status)

	press(a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.Equal(t, "Selected rows: none", a.status)
	require.Len(t, logs.FilterMessage("selected rows").All(), 2)
}

func TestSelectionDisabledByConfig(t *testing.T) {
	users, err := LoadUsers("")
	require.NoError(t, err)
	a, err := New(config.UIConfig{Selectable: "false"}, users, nil)
	require.NoError(t, err)
	require.Equal(t, datatable.SelectNone, a.selectable)
	require.NotContains(t, ansi.Strip(a.View()), "[ ]")
}

func TestViewComposesBothWidgets(t *testing.T) {
	a := newApp(t, nil)
	_, _ = a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := ansi.Strip(a.View())
	for _, want := range []string{"InputField", "DataTable", "Your full name", "Password is too weak", "Disabled Input", "John Brown", "Name ↕"} {
		require.True(t, strings.Contains(out, want), "missing %q", want)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newApp(t, nil)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestUnknownChangeIsIgnored(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	a := newApp(t, zap.New(core))
	_, _ = a.Update(inputfield.ChangeMsg{ID: "nope", Value: "x"})
	require.Equal(t, "", a.name)
	require.Equal(t, 1, logs.Len())
}
