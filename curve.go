package vecdev

// ElevateQuad converts the quadratic Bezier (p0, p1, p2) into the two inner
// control points of the identical cubic:
//
//	c1 = (p0 + 2*p1) / 3
//	c2 = (p2 + 2*p1) / 3
//
// The arithmetic order is fixed so the same inputs always produce the same
// bits.
func ElevateQuad(p0, p1, p2 Point) (c1, c2 Point) {
	twice := Point{X: 2 * p1.X, Y: 2 * p1.Y}
	c1 = Point{X: (twice.X + p0.X) / 3, Y: (twice.Y + p0.Y) / 3}
	c2 = Point{X: (twice.X + p2.X) / 3, Y: (twice.Y + p2.Y) / 3}
	return c1, c2
}

// QuadBez represents a quadratic Bezier curve.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Split divides the curve at t using de Casteljau.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	mid := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, mid}, QuadBez{mid, p12, q.P2}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	if t1 <= 0 {
		p := q.P0
		return QuadBez{p, p, p}
	}
	left, _ := q.Split(t1)
	_, mid := left.Split(t0 / t1)
	return mid
}

// Cubic returns the exact cubic form of q.
func (q QuadBez) Cubic() CubicBez {
	c1, c2 := ElevateQuad(q.P0, q.P1, q.P2)
	return CubicBez{P0: q.P0, P1: c1, P2: c2, P3: q.P2}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Split divides the curve at t using de Casteljau.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{c.P0, p01, p012, mid}, CubicBez{mid, p123, p23, c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	if t1 <= 0 {
		p := c.P0
		return CubicBez{p, p, p, p}
	}
	left, _ := c.Split(t1)
	_, mid := left.Split(t0 / t1)
	return mid
}

// arcSamples is the number of chords used to estimate curve arc length.
const arcSamples = 16

// arcTable samples eval at arcSamples+1 evenly spaced parameters and
// returns the cumulative chord lengths.
func arcTable(eval func(float64) Point) [arcSamples + 1]float64 {
	var table [arcSamples + 1]float64
	prev := eval(0)
	for i := 1; i <= arcSamples; i++ {
		p := eval(float64(i) / arcSamples)
		table[i] = table[i-1] + prev.Dist(p)
		prev = p
	}
	return table
}

// paramAt inverts an arc table: it returns the parameter whose cumulative
// length is s, interpolating linearly between samples.
func paramAt(table *[arcSamples + 1]float64, s float64) float64 {
	total := table[arcSamples]
	if s <= 0 || total == 0 {
		return 0
	}
	if s >= total {
		return 1
	}
	for i := 1; i <= arcSamples; i++ {
		if table[i] >= s {
			span := table[i] - table[i-1]
			frac := 0.0
			if span > 0 {
				frac = (s - table[i-1]) / span
			}
			return (float64(i-1) + frac) / arcSamples
		}
	}
	return 1
}
