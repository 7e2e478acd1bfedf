package vecdev

// Style selects whether geometry is filled, stroked or both.
type Style uint8

const (
	StyleFill          Style = 1 << iota // fill the interior
	StyleStroke                          // stroke the outline
	StyleFillAndStroke = StyleFill | StyleStroke
)

// HasFill reports whether s includes filling.
func (s Style) HasFill() bool { return s&StyleFill != 0 }

// HasStroke reports whether s includes stroking.
func (s Style) HasStroke() bool { return s&StyleStroke != 0 }

func (s Style) String() string {
	switch s {
	case StyleFill:
		return "fill"
	case StyleStroke:
		return "stroke"
	case StyleFillAndStroke:
		return "fill-and-stroke"
	default:
		return "unknown"
	}
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// TypefaceID identifies a typeface known to a FontService.
type TypefaceID uint32

// Paint holds the per-call drawing attributes. Paints are owned by the
// caller; the device copies a paint before changing it.
type Paint struct {
	// Color is the source color, alpha included.
	Color Color

	// Style selects fill, stroke or both.
	Style Style

	// StrokeWidth is the width of strokes. Zero means hairline.
	StrokeWidth float64

	// StrokeJoin is the shape of stroke joins.
	StrokeJoin LineJoin

	// StrokeCap is the shape of stroke ends.
	StrokeCap LineCap

	// MiterLimit bevels miter joins longer than MiterLimit times the
	// stroke width. Zero keeps the backend default.
	MiterLimit float64

	// PathEffect, when set, rewrites geometry before it is drawn.
	PathEffect PathEffect

	// Typeface selects the font for glyph runs.
	Typeface TypefaceID

	// TextSize is the font size for glyph runs, in device units.
	TextSize float64
}

// NewPaint creates a Paint with default values: opaque black fill, hairline
// stroke width, miter joins, butt caps and 12 unit text.
func NewPaint() *Paint {
	return &Paint{
		Color:      Black,
		Style:      StyleFill,
		StrokeJoin: LineJoinMiter,
		StrokeCap:  LineCapButt,
		TextSize:   12,
	}
}

// Clone creates a copy of the Paint. The path effect is shared.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// Alpha returns the alpha byte of the paint color.
func (p *Paint) Alpha() uint8 {
	return p.Color.A()
}

// WithoutPathEffect returns a copy of the paint with no path effect.
func (p *Paint) WithoutPathEffect() *Paint {
	c := p.Clone()
	c.PathEffect = nil
	return c
}

// FillPath returns the geometry that should actually be drawn for src:
// the path effect's output if the paint has one, src itself otherwise.
func (p *Paint) FillPath(src *Path) *Path {
	if p.PathEffect == nil {
		return src
	}
	dst := p.PathEffect.Apply(src)
	if dst == nil {
		return NewPath()
	}
	return dst
}
