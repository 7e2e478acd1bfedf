package vecdev

import "slices"

// Region is a set of integer rectangles describing a clip area.
// The zero value is the empty region. Empty rectangles are never stored.
type Region struct {
	rects []IRect
}

// NewRegion creates a region covering the union of rects.
func NewRegion(rects ...IRect) Region {
	var r Region
	for _, rc := range rects {
		r.AddRect(rc)
	}
	return r
}

// AddRect adds rc to the region.
func (r *Region) AddRect(rc IRect) {
	if rc.IsEmpty() {
		return
	}
	r.rects = append(r.rects, rc)
}

// IsEmpty reports whether the region covers nothing.
func (r Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// IsRect reports whether the region is exactly one rectangle.
func (r Region) IsRect() bool {
	return len(r.rects) == 1
}

// Bounds returns the tightest rectangle enclosing the region.
func (r Region) Bounds() IRect {
	var b IRect
	for _, rc := range r.rects {
		b = b.Union(rc)
	}
	return b
}

// Rects returns a copy of the region's rectangles.
func (r Region) Rects() []IRect {
	return slices.Clone(r.rects)
}

// Equal reports whether both regions hold the same rectangles in the same
// order.
func (r Region) Equal(o Region) bool {
	return slices.Equal(r.rects, o.rects)
}
