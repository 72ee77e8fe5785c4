package datatable

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings handled by the table itself. Row navigation is
// left to the embedded bubbles table.
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	Sort       key.Binding
	Toggle     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevColumn: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:       key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
	}
}
