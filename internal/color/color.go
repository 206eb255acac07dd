package color

import (
	"fmt"
	"strings"
)

// Color represents an RGBA color. Zed themes carry an alpha channel on most
// values, so A is kept alongside the RGB components.
type Color struct {
	R, G, B, A uint8
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" into a Color. Colors
// without an alpha channel are fully opaque.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 3, 6 or 8 hex digits", s)
	}

	var c Color
	for i, dst := range []*uint8{&c.R, &c.G, &c.B, &c.A} {
		hi, ok1 := nibble(s[2*i])
		lo, ok2 := nibble(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("invalid hex color %q: bad digit", s)
		}
		*dst = hi<<4 | lo
	}
	return c, nil
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha returns the color in hex format with alpha channel (#rrggbbaa).
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA returns the color in rgba() function format.
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, float64(c.A)/255.0)
}

// Transparent reports whether the color has zero alpha.
func (c Color) Transparent() bool {
	return c.A == 0
}
