package vecdev

import (
	"fmt"
	"image/color"
)

// Color is a 32-bit unpremultiplied ARGB color, alpha in the high byte.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB packs 8-bit components into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Float returns the components scaled to [0, 1].
func (c Color) Float() (r, g, b, a float64) {
	return float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255, float64(c.A()) / 255
}

// NRGBA converts to the standard library's unpremultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the '#' is
// optional).
func ParseHex(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [8]uint8
	for i := range len(s) {
		d, ok := hexDigit(s[i])
		if !ok || i >= len(v) {
			return 0, fmt.Errorf("vecdev: invalid hex color %q", s)
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return ARGB(0xFF, v[0]*17, v[1]*17, v[2]*17), nil
	case 4:
		return ARGB(v[3]*17, v[0]*17, v[1]*17, v[2]*17), nil
	case 6:
		return ARGB(0xFF, v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	case 8:
		return ARGB(v[6]<<4|v[7], v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	default:
		return 0, fmt.Errorf("vecdev: invalid hex color %q", s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
