package vecdev

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestElevateQuad(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 Point
		c1, c2     Point
	}{
		{"symmetric", Pt(0, 0), Pt(3, 3), Pt(6, 0), Pt(2, 2), Pt(4, 2)},
		{"degenerate", Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)},
		{"straight", Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(2, 0), Pt(4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := ElevateQuad(tt.p0, tt.p1, tt.p2)
			if c1 != tt.c1 || c2 != tt.c2 {
				t.Errorf("ElevateQuad() = %v, %v, want %v, %v", c1, c2, tt.c1, tt.c2)
			}
		})
	}
}

func TestElevateQuadDeterministic(t *testing.T) {
	p0, p1, p2 := Pt(0.1, 0.7), Pt(1.3, 2.9), Pt(4.1, 0.3)
	a1, a2 := ElevateQuad(p0, p1, p2)
	b1, b2 := ElevateQuad(p0, p1, p2)
	if a1 != b1 || a2 != b2 {
		t.Error("ElevateQuad() is not bit-identical across calls")
	}
}

func TestQuadBezCubicSameCurve(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	c := q.Cubic()
	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := c.Eval(tv), q.Eval(tv); !pointsEqual(got, want, 1e-9) {
			t.Errorf("Cubic().Eval(%v) = %v, want %v", tv, got, want)
		}
	}
}

func TestQuadBezSplit(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	left, right := q.Split(0.5)
	mid := q.Eval(0.5)
	if !pointsEqual(left.P2, mid, epsilon) || !pointsEqual(right.P0, mid, epsilon) {
		t.Errorf("Split(0.5) joins at %v / %v, want %v", left.P2, right.P0, mid)
	}
	if left.P0 != q.P0 || right.P2 != q.P2 {
		t.Error("Split() lost the endpoints")
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	sub := c.Subsegment(0.25, 0.75)
	if !pointsEqual(sub.P0, c.Eval(0.25), 1e-9) {
		t.Errorf("Subsegment start = %v, want %v", sub.P0, c.Eval(0.25))
	}
	if !pointsEqual(sub.P3, c.Eval(0.75), 1e-9) {
		t.Errorf("Subsegment end = %v, want %v", sub.P3, c.Eval(0.75))
	}
	if !pointsEqual(sub.Eval(0.5), c.Eval(0.5), 1e-9) {
		t.Errorf("Subsegment midpoint = %v, want %v", sub.Eval(0.5), c.Eval(0.5))
	}

	zero := c.Subsegment(0, 0)
	if zero.P0 != c.P0 || zero.P3 != c.P0 {
		t.Errorf("Subsegment(0, 0) = %v, want collapsed to start", zero)
	}
}

func TestArcTable(t *testing.T) {
	line := QuadBez{Pt(0, 0), Pt(5, 0), Pt(10, 0)}
	table := arcTable(line.Eval)
	if math.Abs(table[arcSamples]-10) > 1e-9 {
		t.Errorf("arc length = %v, want 10", table[arcSamples])
	}
	if got := paramAt(&table, 5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("paramAt(5) = %v, want 0.5", got)
	}
	if got := paramAt(&table, -1); got != 0 {
		t.Errorf("paramAt(-1) = %v, want 0", got)
	}
	if got := paramAt(&table, 20); got != 1 {
		t.Errorf("paramAt(20) = %v, want 1", got)
	}
}
