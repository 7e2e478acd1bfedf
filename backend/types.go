package backend

import "fmt"

// Matrix is an affine transformation in Cairo's field layout:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// DefaultMiterLimit is the miter limit of a fresh Context, matching the
// PDF and Cairo defaults.
const DefaultMiterLimit = 10.0

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// IsIdentity reports whether m is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}

// TransformPoint applies m to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// Multiply returns m * other: the result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		XX: m.XX*other.XX + m.XY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		YX: m.YX*other.XX + m.YY*other.YX,
		YY: m.YX*other.XY + m.YY*other.YY,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// Invert returns the inverse of m. ok is false for singular matrices.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return Matrix{}, false
	}
	inv = Matrix{
		XX: m.YY / det,
		XY: -m.XY / det,
		YX: -m.YX / det,
		YY: m.XX / det,
	}
	inv.X0 = -(inv.XX*m.X0 + inv.XY*m.Y0)
	inv.Y0 = -(inv.YX*m.X0 + inv.YY*m.Y0)
	return inv, true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

// FillRule selects how the inside of a self-intersecting path is decided.
type FillRule uint8

const (
	FillRuleWinding FillRule = iota
	FillRuleEvenOdd
)

func (r FillRule) String() string {
	switch r {
	case FillRuleWinding:
		return "winding"
	case FillRuleEvenOdd:
		return "even-odd"
	default:
		return "unknown"
	}
}

// LineCap is the shape at the open ends of a stroke.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin is the shape where two stroke segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// Glyph is a single positioned glyph for ShowGlyphs.
type Glyph struct {
	Index uint32
	X, Y  float64
}

// FontFace identifies a typeface selected onto a Context.
//
// Data holds the raw TrueType/OpenType bytes so that vector backends can
// embed the font. Rune maps a glyph index back to a character for backends
// that can only address glyphs through text; it may be nil.
type FontFace struct {
	ID     uint32
	Family string
	Data   []byte
	Rune   func(index uint32) (rune, bool)
}
