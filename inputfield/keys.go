package inputfield

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Clear          key.Binding
	TogglePassword key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
		TogglePassword: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide"),
		),
	}
}

// ShortHelp lists the bindings that apply to p.
func (k KeyMap) ShortHelp(p Props) []key.Binding {
	var out []key.Binding
	if p.ClearVisible() {
		out = append(out, k.Clear)
	}
	if p.PasswordToggleVisible() {
		out = append(out, k.TogglePassword)
	}
	return out
}
