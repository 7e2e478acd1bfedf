package vecdev

import "math"

// Point is a position in user or device space.
type Point struct {
	X, Y float64
}

// Pt returns Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Offset returns p moved by (dx, dy).
func (p Point) Offset(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Delta returns the vector from q to p.
func (p Point) Delta(q Point) (dx, dy float64) { return p.X - q.X, p.Y - q.Y }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.Delta(q)
	return math.Hypot(dx, dy)
}

// Lerp returns the point at t along the segment p→q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}
