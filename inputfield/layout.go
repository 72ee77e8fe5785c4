package inputfield

// Layout describes what a field renders for a given Props and State.
type Layout struct {
	Label       string
	Placeholder string
	InputType   string
	Variant     Variant
	Size        Size

	// Disabled drives the faint style. Locked is true whenever edits are
	// refused, which also covers loading.
	Disabled bool
	Locked   bool
	Invalid  bool

	ShowClear   bool
	ShowToggle  bool
	ToggleLabel string
	ShowSpinner bool

	Message      string
	MessageIsErr bool
}

func Describe(p Props, s State) Layout {
	p = p.normalized()
	l := Layout{
		Label:       p.Label,
		Placeholder: p.Placeholder,
		InputType:   s.InputType(p),
		Variant:     p.Variant,
		Size:        p.Size,
		Disabled:    p.Disabled,
		Locked:      !p.Interactive(),
		Invalid:     p.Invalid,
		ShowClear:   p.ClearVisible(),
		ShowToggle:  p.PasswordToggleVisible(),
		ShowSpinner: p.Loading,
	}
	if l.ShowToggle {
		l.ToggleLabel = "Show"
		if s.ShowPassword {
			l.ToggleLabel = "Hide"
		}
	}
	l.Message, l.MessageIsErr = p.Message()
	return l
}
