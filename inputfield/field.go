package inputfield

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const defaultWidth = 32

// Field is one mounted input widget.
type Field struct {
	id    string
	state State
	width int
	keys  KeyMap

	input   textinput.Model
	spin    spinner.Model
	ticking bool

	// trail holds the values this field moved through since the caller last
	// caught up, oldest first. The last entry is the latest emitted value.
	trail []string
}

func New() *Field {
	inp := textinput.New()
	inp.Prompt = ""
	inp.EchoCharacter = '•'
	return &Field{
		id:    uuid.NewString(),
		width: defaultWidth,
		keys:  DefaultKeyMap(),
		input: inp,
		spin:  spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(spinnerStyle)),
	}
}

func (f *Field) ID() string { return f.id }

func (f *Field) State() State { return f.state }

func (f *Field) KeyMap() KeyMap { return f.keys }

func (f *Field) SetWidth(w int) {
	if w > 0 {
		f.width = w
	}
}

func (f *Field) Focus() tea.Cmd { return f.input.Focus() }

func (f *Field) Blur() { f.input.Blur() }

func (f *Field) Focused() bool { return f.input.Focused() }

// Init starts the loading indicator when p is loading.
func (f *Field) Init(p Props) tea.Cmd {
	return f.startTicking(p)
}

func (f *Field) startTicking(p Props) tea.Cmd {
	if !p.Loading || f.ticking {
		return nil
	}
	f.ticking = true
	return f.spin.Tick
}

// Clear requests an empty value. It does nothing unless the clear action is
// visible.
func (f *Field) Clear(p Props) tea.Cmd {
	f.sync(p)
	p.Value = f.input.Value()
	if !p.ClearVisible() {
		return nil
	}
	f.input.SetValue("")
	return f.change(p, p.Value, "")
}

// TogglePassword flips between masked and plain rendering. The value is not
// touched.
func (f *Field) TogglePassword(p Props) {
	if !p.PasswordToggleVisible() {
		return
	}
	f.state.ShowPassword = !f.state.ShowPassword
}

func (f *Field) Update(msg tea.Msg, p Props) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if msg.ID != f.spin.ID() {
			return nil
		}
		if !p.Loading {
			f.ticking = false
			return nil
		}
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !f.input.Focused() {
			return nil
		}
		switch {
		case key.Matches(msg, f.keys.Clear):
			return f.Clear(p)
		case key.Matches(msg, f.keys.TogglePassword):
			f.TogglePassword(p)
			return nil
		}
		if !p.Interactive() {
			return nil
		}
		f.sync(p)
		prev := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if next := f.input.Value(); next != prev {
			return tea.Batch(cmd, f.change(p, prev, next))
		}
		return cmd
	}
	return f.startTicking(p)
}

// change records the move from prev to value and emits value.
func (f *Field) change(p Props, prev, value string) tea.Cmd {
	if len(f.trail) == 0 {
		f.trail = append(f.trail, prev)
	}
	f.trail = append(f.trail, value)
	onChange, id := p.OnChange, f.id
	return func() tea.Msg {
		if onChange != nil {
			return onChange(value)
		}
		return ChangeMsg{ID: id, Value: value}
	}
}

// sync copies the caller-owned props into the embedded text input. A value
// the field already moved past means the caller has not applied the latest
// change yet, so the input keeps its newer text. Any other value is the
// caller's own and replaces the input.
func (f *Field) sync(p Props) {
	switch {
	case len(f.trail) > 0 && f.trail[len(f.trail)-1] == p.Value:
		f.trail = nil
	case slices.Contains(f.trail, p.Value):
	default:
		f.trail = nil
		if f.input.Value() != p.Value {
			f.input.SetValue(p.Value)
		}
	}
	f.input.Placeholder = p.Placeholder
	if f.state.InputType(p) == TypePassword {
		f.input.EchoMode = textinput.EchoPassword
	} else {
		f.input.EchoMode = textinput.EchoNormal
	}
}
