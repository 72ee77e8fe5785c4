// Package demo is the host page composing the input and table widgets. It
// owns the application data the widgets display and reacts to their
// notifications.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/fieldkit/datatable"
	"github.com/jask/fieldkit/inputfield"
	"github.com/jask/fieldkit/internal/config"
	"github.com/jask/fieldkit/internal/theme"
)

const defaultWidth = 100

type filterChangedMsg string

type selectionMsg []User

// App is the root bubbletea model of the demo page.
type App struct {
	ui  config.UIConfig
	log *zap.Logger

	// host-owned values
	name     string
	password string
	filter   string
	status   string

	nameField     *inputfield.Field
	passwordField *inputfield.Field
	disabledField *inputfield.Field
	loadingField  *inputfield.Field
	clearField    *inputfield.Field
	filterField   *inputfield.Field

	table      *datatable.Table[User]
	users      []User
	columns    []datatable.Column[User]
	selectable datatable.SelectMode

	// focus indexes focusOrder; len(focusOrder) is the table
	focus int
	width int
}

func New(ui config.UIConfig, users []User, log *zap.Logger) (*App, error) {
	cols, err := userColumns()
	if err != nil {
		return nil, fmt.Errorf("table columns: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		ui:            ui,
		log:           log,
		nameField:     inputfield.New(),
		passwordField: inputfield.New(),
		disabledField: inputfield.New(),
		loadingField:  inputfield.New(),
		clearField:    inputfield.New(),
		filterField:   inputfield.New(),
		table:         datatable.New[User](),
		users:         users,
		columns:       cols,
		selectable:    datatable.ParseSelectMode(ui.Selectable),
	}
	a.table.SetHeight(ui.TableHeight)
	a.resize(defaultWidth)
	return a, nil
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.setFocus(0), a.table.Init(a.tableProps())}
	for _, f := range a.fields() {
		cmds = append(cmds, f.Init(a.fieldProps(f)))
	}
	return tea.Batch(cmds...)
}

// focusOrder lists the editable fields; disabled and loading fields are
// display only.
func (a *App) focusOrder() []*inputfield.Field {
	return []*inputfield.Field{a.nameField, a.passwordField, a.clearField, a.filterField}
}

func (a *App) fields() []*inputfield.Field {
	return []*inputfield.Field{a.nameField, a.passwordField, a.disabledField, a.loadingField, a.clearField, a.filterField}
}

func (a *App) tableFocused() bool { return a.focus == len(a.focusOrder()) }

func (a *App) setFocus(i int) tea.Cmd {
	n := len(a.focusOrder()) + 1
	a.focus = ((i % n) + n) % n
	for _, f := range a.focusOrder() {
		f.Blur()
	}
	a.table.Blur()
	if a.tableFocused() {
		a.table.Focus()
		return nil
	}
	return a.focusOrder()[a.focus].Focus()
}

func (a *App) resize(width int) {
	if width <= 0 {
		return
	}
	a.width = width
	fieldWidth := max(20, (width-8)/2)
	for _, f := range a.fields() {
		f.SetWidth(fieldWidth)
	}
}

func (a *App) fieldProps(f *inputfield.Field) inputfield.Props {
	variant := inputfield.ParseVariant(a.ui.Variant)
	size := inputfield.ParseSize(a.ui.Size)
	switch f {
	case a.nameField:
		return inputfield.Props{
			Label:       "Name",
			Placeholder: "Enter your name",
			Value:       a.name,
			HelperText:  "Your full name",
			Variant:     variant,
			Size:        size,
		}
	case a.passwordField:
		return inputfield.Props{
			Label:        "Password",
			Placeholder:  "Enter password",
			Type:         inputfield.TypePassword,
			Value:        a.password,
			ErrorMessage: "Password is too weak",
			Invalid:      true,
			Variant:      variant,
			Size:         size,
		}
	case a.disabledField:
		return inputfield.Props{
			Label:       "Disabled Input",
			Placeholder: "Can't type here",
			Disabled:    true,
			Variant:     inputfield.VariantFilled,
		}
	case a.loadingField:
		return inputfield.Props{
			Label:       "Loading Input",
			Placeholder: "Fetching...",
			Loading:     true,
			Variant:     inputfield.VariantGhost,
		}
	case a.clearField:
		return inputfield.Props{
			Label:       "Clearable Input",
			Placeholder: "Type something...",
			Value:       a.name,
			Clearable:   true,
			Variant:     variant,
			Size:        size,
		}
	case a.filterField:
		return inputfield.Props{
			Label:       "Filter",
			Placeholder: "Filter rows...",
			Value:       a.filter,
			Clearable:   true,
			HelperText:  "Matches any cell, one typo allowed",
			Variant:     variant,
			Size:        inputfield.SizeSm,
			OnChange:    func(v string) tea.Msg { return filterChangedMsg(v) },
		}
	}
	return inputfield.Props{}
}

func (a *App) tableProps() datatable.Props[User] {
	return datatable.Props[User]{
		Data:        a.users,
		Columns:     a.columns,
		Selectable:  a.selectable,
		OnRowSelect: func(rows []User) tea.Msg { return selectionMsg(rows) },
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width)
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab":
			return a, a.setFocus(a.focus + 1)
		case "shift+tab":
			return a, a.setFocus(a.focus - 1)
		}
		if a.tableFocused() {
			return a, a.table.Update(msg, a.tableProps())
		}
		f := a.focusOrder()[a.focus]
		return a, f.Update(msg, a.fieldProps(f))
	case inputfield.ChangeMsg:
		a.applyChange(msg)
		return a, nil
	case filterChangedMsg:
		a.filter = string(msg)
		a.table.SetQuery(a.filter)
		return a, nil
	case selectionMsg:
		a.logSelection(msg)
		return a, nil
	}

	// spinner ticks; every widget ignores ticks it did not start
	cmds := make([]tea.Cmd, 0, len(a.fields())+1)
	for _, f := range a.fields() {
		cmds = append(cmds, f.Update(msg, a.fieldProps(f)))
	}
	cmds = append(cmds, a.table.Update(msg, a.tableProps()))
	return a, tea.Batch(cmds...)
}

func (a *App) applyChange(msg inputfield.ChangeMsg) {
	switch msg.ID {
	case a.nameField.ID(), a.clearField.ID():
		a.name = msg.Value
	case a.passwordField.ID():
		a.password = msg.Value
	default:
		a.log.Warn("change from unknown field", zap.String("id", msg.ID))
	}
}

func (a *App) logSelection(rows []User) {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	a.log.Info("selected rows", zap.Int("count", len(rows)), zap.Strings("names", names))
	if len(names) == 0 {
		a.status = "Selected rows: none"
		return
	}
	a.status = "Selected rows: " + strings.Join(names, ", ")
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.Muted)
)

func (a *App) View() string {
	contentWidth := a.width - 4
	pair := func(l, r *inputfield.Field) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, l.View(a.fieldProps(l)), "  ", r.View(a.fieldProps(r)))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left,
		pair(a.nameField, a.passwordField), "",
		pair(a.disabledField, a.loadingField), "",
		pair(a.clearField, a.filterField),
	)

	parts := []string{
		titleStyle.Render("fieldkit widgets"),
		"",
		section{Title: "InputField", Content: grid, Focused: !a.tableFocused()}.Render(a.width),
		section{Title: "DataTable", Content: a.table.View(a.tableProps()), Focused: a.tableFocused()}.Render(a.width),
	}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(padRightANSI(a.status, contentWidth)))
	}
	parts = append(parts, a.helpLine())
	return strings.Join(parts, "\n")
}

func (a *App) helpLine() string {
	fk, tk := inputfield.DefaultKeyMap(), a.table.KeyMap()
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		fk.Clear, fk.TogglePassword,
		tk.NextColumn, tk.Sort, tk.Toggle,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	}
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(items, "  ")
}
