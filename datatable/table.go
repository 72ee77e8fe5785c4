package datatable

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const defaultHeight = 8

// Table is one mounted table widget. Its sort, selection and filter state
// live only as long as the Table value.
type Table[T comparable] struct {
	id    string
	state State[T]
	col   int
	keys  KeyMap

	grid table.Model
	spin spinner.Model

	ticking bool
}

func New[T comparable]() *Table[T] {
	grid := table.New(table.WithHeight(defaultHeight))
	grid.SetStyles(gridStyles())
	return &Table[T]{
		id:   uuid.NewString(),
		keys: DefaultKeyMap(),
		grid: grid,
		spin: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(spinnerStyle)),
	}
}

func (t *Table[T]) ID() string { return t.id }

func (t *Table[T]) State() State[T] { return t.state }

func (t *Table[T]) Sort() Sort { return t.state.Sort }

func (t *Table[T]) Selected() []T { return t.state.Selection.Rows() }

func (t *Table[T]) Query() string { return t.state.Query }

// SetQuery narrows the displayed rows. Selection is kept for rows that are
// filtered out.
func (t *Table[T]) SetQuery(q string) { t.state.Query = q }

func (t *Table[T]) KeyMap() KeyMap { return t.keys }

// HeaderCursor is the index of the column the sort key acts on.
func (t *Table[T]) HeaderCursor() int { return t.col }

func (t *Table[T]) SetHeight(h int) {
	if h > 0 {
		t.grid.SetHeight(h)
	}
}

func (t *Table[T]) Focus() { t.grid.Focus() }

func (t *Table[T]) Blur() { t.grid.Blur() }

func (t *Table[T]) Focused() bool { return t.grid.Focused() }

// Init starts the loading indicator when p is loading.
func (t *Table[T]) Init(p Props[T]) tea.Cmd { return t.startTicking(p) }

func (t *Table[T]) startTicking(p Props[T]) tea.Cmd {
	if !p.Loading || t.ticking {
		return nil
	}
	t.ticking = true
	return t.spin.Tick
}

// VisibleRows is the row order currently on screen.
func (t *Table[T]) VisibleRows(p Props[T]) []T {
	return VisibleRows(p, t.state)
}

// ClickHeader applies a header click on the column with the given key.
// Unknown keys and non-sortable columns are ignored.
func (t *Table[T]) ClickHeader(p Props[T], key string) {
	col, ok := columnByKey(p.Columns, key)
	if !ok {
		return
	}
	t.state.Sort = t.state.Sort.Toggle(col.Key, col.Sortable)
}

// ToggleRow applies a checkbox toggle on row and emits the full selection.
// It returns nil when selection is disabled.
func (t *Table[T]) ToggleRow(p Props[T], row T) tea.Cmd {
	next, ok := t.state.Selection.Toggle(row, p.Selectable)
	if !ok {
		return nil
	}
	t.state.Selection = next
	rows, onSelect, id := next.Rows(), p.OnRowSelect, t.id
	return func() tea.Msg {
		if onSelect != nil {
			return onSelect(rows)
		}
		return SelectMsg[T]{ID: id, Rows: rows}
	}
}

func (t *Table[T]) Update(msg tea.Msg, p Props[T]) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if msg.ID != t.spin.ID() {
			return nil
		}
		if !p.Loading {
			t.ticking = false
			return nil
		}
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !t.grid.Focused() || p.Loading || len(p.Data) == 0 {
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.PrevColumn):
			t.col = max(0, t.col-1)
			return nil
		case key.Matches(msg, t.keys.NextColumn):
			t.col = max(0, min(len(p.Columns)-1, t.col+1))
			return nil
		case key.Matches(msg, t.keys.Sort):
			if t.col < len(p.Columns) {
				t.ClickHeader(p, p.Columns[t.col].Key)
			}
			return nil
		case key.Matches(msg, t.keys.Toggle):
			rows := t.VisibleRows(p)
			if i := t.grid.Cursor(); i >= 0 && i < len(rows) {
				return t.ToggleRow(p, rows[i])
			}
			return nil
		}
		t.sync(p, Describe(p, t.state))
		var cmd tea.Cmd
		t.grid, cmd = t.grid.Update(msg)
		return cmd
	}
	return t.startTicking(p)
}

// CursorRow returns the row under the row cursor.
func (t *Table[T]) CursorRow(p Props[T]) (T, bool) {
	rows := t.VisibleRows(p)
	if i := t.grid.Cursor(); i >= 0 && i < len(rows) {
		return rows[i], true
	}
	var zero T
	return zero, false
}
