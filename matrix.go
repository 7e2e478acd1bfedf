package vecdev

import (
	"math"

	"github.com/gogpu/vecdev/backend"
)

// Matrix is a 2D affine transform in canvas layout:
//
//	x' = ScaleX*x + SkewX*y + TransX
//	y' = SkewY*x + ScaleY*y + TransY
//
// The zero Matrix is degenerate; use Identity.
type Matrix struct {
	ScaleX, SkewX, TransX float64
	SkewY, ScaleY, TransY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1, TransX: dx, TransY: dy}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{ScaleX: sx, ScaleY: sy}
}

// Rotate returns a rotation by angle radians about the origin. With y
// pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{ScaleX: cos, SkewX: -sin, SkewY: sin, ScaleY: cos}
}

// Affine builds a matrix from six values in row order
// (ScaleX, SkewX, TransX, SkewY, ScaleY, TransY). It reports false unless
// exactly six values are given.
func Affine(v []float64) (Matrix, bool) {
	if len(v) != 6 {
		return Matrix{}, false
	}
	return Matrix{
		ScaleX: v[0], SkewX: v[1], TransX: v[2],
		SkewY: v[3], ScaleY: v[4], TransY: v[5],
	}, true
}

// Concat returns m·other: points go through other first, then m.
func (m Matrix) Concat(other Matrix) Matrix {
	return Matrix{
		ScaleX: m.ScaleX*other.ScaleX + m.SkewX*other.SkewY,
		SkewX:  m.ScaleX*other.SkewX + m.SkewX*other.ScaleY,
		TransX: m.ScaleX*other.TransX + m.SkewX*other.TransY + m.TransX,
		SkewY:  m.SkewY*other.ScaleX + m.ScaleY*other.SkewY,
		ScaleY: m.SkewY*other.SkewX + m.ScaleY*other.ScaleY,
		TransY: m.SkewY*other.TransX + m.ScaleY*other.TransY + m.TransY,
	}
}

// MapPoint transforms p.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.ScaleX*p.X + m.SkewX*p.Y + m.TransX,
		Y: m.SkewY*p.X + m.ScaleY*p.Y + m.TransY,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslate reports whether m only translates.
func (m Matrix) IsTranslate() bool {
	return m.ScaleX == 1 && m.ScaleY == 1 && m.SkewX == 0 && m.SkewY == 0
}

// Backend converts m to the backend's field layout.
func (m Matrix) Backend() backend.Matrix {
	return backend.Matrix{
		XX: m.ScaleX, XY: m.SkewX, X0: m.TransX,
		YX: m.SkewY, YY: m.ScaleY, Y0: m.TransY,
	}
}
