package vecdev

import "math"

// Rect is an axis-aligned rectangle given by its edges.
// Right < Left or Bottom < Top is allowed and is passed through to the
// backend as a negative extent.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectLTRB creates a Rect from its edges.
func RectLTRB(l, t, r, b float64) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// RectXYWH creates a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// IRect is an integer rectangle used by clip regions.
type IRect struct {
	Left, Top, Right, Bottom int
}

// IRectLTRB creates an IRect from its edges.
func IRectLTRB(l, t, r, b int) IRect {
	return IRect{Left: l, Top: t, Right: r, Bottom: b}
}

// Width returns Right-Left.
func (r IRect) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r IRect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no pixels.
func (r IRect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Union returns the smallest rectangle containing both. An empty operand is
// ignored.
func (r IRect) Union(o IRect) IRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return IRect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Rect converts to a float rectangle.
func (r IRect) Rect() Rect {
	return Rect{
		Left:   float64(r.Left),
		Top:    float64(r.Top),
		Right:  float64(r.Right),
		Bottom: float64(r.Bottom),
	}
}
