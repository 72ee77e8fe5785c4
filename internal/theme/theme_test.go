package theme

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	colors := Palette()
	if len(colors) != 14 {
		t.Errorf("expected 14 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", string(c))
		}
	}
}

func TestSemanticAliasesMatchPalette(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"accent", string(Accent), string(Blue)},
		{"focus", string(Focus), string(Lavender)},
		{"error", string(Error), string(Red)},
		{"muted", string(Muted), string(Subtext0)},
		{"border", string(Border), string(Surface2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.alias != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.alias, tt.want)
			}
		})
	}
}
