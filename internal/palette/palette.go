// Package palette defines the closed set of colors a user can pick from.
package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Color is one of the four palette entries. The zero value is Red.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

// all lists the palette in display order.
var all = [...]Color{Red, Green, Blue, Yellow}

var names = map[Color]string{
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
}

// Swatch colors follow the Tailwind shades the palette was designed with
// (red-500, green-500, blue-500, yellow-400).
var swatches = map[Color]lipgloss.Color{
	Red:    lipgloss.Color("#ef4444"),
	Green:  lipgloss.Color("#22c55e"),
	Blue:   lipgloss.Color("#3b82f6"),
	Yellow: lipgloss.Color("#facc15"),
}

// All returns the palette in display order. The returned slice is a copy.
func All() []Color {
	out := make([]Color, len(all))
	copy(out, all[:])
	return out
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	_, ok := names[c]
	return ok
}

func (c Color) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "unknown"
}

// Title returns the capitalized display name ("Red").
func (c Color) Title() string {
	s := c.String()
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Swatch returns the terminal color used to paint c.
func (c Color) Swatch() lipgloss.Color {
	return swatches[c]
}

// Parse converts a color name to a Color. Names are matched exactly
// against the lower-case form returned by String.
func Parse(s string) (Color, error) {
	for c, n := range names {
		if n == s {
			return c, nil
		}
	}
	return Red, errors.Errorf("unknown color: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("cannot marshal color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
