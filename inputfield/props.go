package inputfield

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Variant string

const (
	VariantFilled   Variant = "filled"
	VariantOutlined Variant = "outlined"
	VariantGhost    Variant = "ghost"
)

type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

const (
	TypeText     = "text"
	TypePassword = "password"
)

// Props is the caller-owned configuration of one render.
type Props struct {
	Value string
	// OnChange builds the message emitted for a new value. When nil the field
	// emits a ChangeMsg.
	OnChange func(value string) tea.Msg

	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string

	Disabled  bool
	Invalid   bool
	Loading   bool
	Clearable bool

	Variant Variant
	Size    Size
	Type    string
}

// ChangeMsg reports a new value for the field identified by ID.
type ChangeMsg struct {
	ID    string
	Value string
}

// ParseVariant maps a config string onto a Variant, falling back to outlined.
func ParseVariant(s string) Variant {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantFilled, VariantOutlined, VariantGhost:
		return v
	default:
		return VariantOutlined
	}
}

// ParseSize maps a config string onto a Size, falling back to md.
func ParseSize(s string) Size {
	switch v := Size(strings.ToLower(strings.TrimSpace(s))); v {
	case SizeSm, SizeMd, SizeLg:
		return v
	default:
		return SizeMd
	}
}

func (p Props) normalized() Props {
	p.Variant = ParseVariant(string(p.Variant))
	p.Size = ParseSize(string(p.Size))
	if strings.TrimSpace(p.Type) == "" {
		p.Type = TypeText
	}
	return p
}

// Message returns the line shown under the input. An error message wins only
// while the field is invalid.
func (p Props) Message() (text string, isErr bool) {
	if p.Invalid && p.ErrorMessage != "" {
		return p.ErrorMessage, true
	}
	return p.HelperText, false
}

// Interactive reports whether keystrokes may edit the value.
func (p Props) Interactive() bool {
	return !p.Disabled && !p.Loading
}

func (p Props) ClearVisible() bool {
	return p.Clearable && p.Value != ""
}

func (p Props) PasswordToggleVisible() bool {
	return p.Type == TypePassword
}

// State is the only data a field keeps between renders.
type State struct {
	ShowPassword bool
}

// InputType is the type the input is rendered with: a password field shown in
// plain text renders as "text".
func (s State) InputType(p Props) string {
	p = p.normalized()
	if p.Type == TypePassword && s.ShowPassword {
		return TypeText
	}
	return p.Type
}
