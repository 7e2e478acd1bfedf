package vecdev

import "math"

// DashEffect cuts a path into dashes.
// Intervals alternate dash and gap lengths. If the array has an odd number
// of elements it is logically duplicated to create an even-length pattern
// (e.g., [5] becomes [5, 5]). Phase is the starting offset into the pattern.
//
// Each contour restarts the pattern at Phase. Curves stay curves: dashes are
// cut out of the original segment with de Casteljau subdivision, so a dashed
// quad is still emitted as quads.
type DashEffect struct {
	Intervals []float64
	Phase     float64
}

// NewDashEffect creates a dash effect from alternating dash/gap lengths.
// Negative lengths are taken by absolute value.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDashEffect(phase float64, intervals ...float64) *DashEffect {
	if len(intervals) == 0 {
		return nil
	}

	normalized := make([]float64, len(intervals))
	positive := false
	for i, l := range intervals {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}

	return &DashEffect{Intervals: normalized, Phase: phase}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *DashEffect) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveIntervals() {
		total += l
	}
	return total
}

// effectiveIntervals returns the intervals with odd-length arrays duplicated.
func (d *DashEffect) effectiveIntervals() []float64 {
	if len(d.Intervals)%2 == 0 {
		return d.Intervals
	}
	result := make([]float64, len(d.Intervals)*2)
	copy(result, d.Intervals)
	copy(result[len(d.Intervals):], d.Intervals)
	return result
}

// dashEpsilon absorbs rounding when an interval is used up exactly.
const dashEpsilon = 1e-9

// dashState tracks the position in the pattern while walking a contour.
type dashState struct {
	intervals []float64
	idx       int
	remain    float64
	penDown   bool
}

func (s *dashState) on() bool { return s.idx%2 == 0 }

func (s *dashState) advance() {
	s.idx = (s.idx + 1) % len(s.intervals)
	s.remain = s.intervals[s.idx]
	if !s.on() {
		s.penDown = false
	}
}

func (d *DashEffect) startState(intervals []float64, total float64) dashState {
	s := dashState{intervals: intervals, remain: intervals[0]}
	phase := math.Mod(d.Phase, total)
	if phase < 0 {
		phase += total
	}
	for phase > 0 {
		if phase >= s.remain {
			phase -= s.remain
			s.advance()
			continue
		}
		s.remain -= phase
		phase = 0
	}
	return s
}

// walk consumes length units of the pattern, calling emit for every "on"
// stretch [s0, s1] of the segment. cont reports whether the stretch continues
// a dash begun on a previous segment.
func (s *dashState) walk(length float64, emit func(s0, s1 float64, cont bool)) {
	pos := 0.0
	for pos < length {
		if s.remain <= dashEpsilon {
			s.advance()
			continue
		}
		step := math.Min(s.remain, length-pos)
		if s.on() {
			emit(pos, pos+step, s.penDown)
			s.penDown = true
		}
		pos += step
		s.remain -= step
	}
}

// Apply implements PathEffect.
func (d *DashEffect) Apply(src *Path) *Path {
	intervals := d.effectiveIntervals()
	total := d.PatternLength()
	if total <= 0 {
		return src.Clone()
	}

	dst := NewPath()
	dst.SetFillType(src.FillType())

	var (
		pts    [4]Point
		state  dashState
		moveTo Point
	)
	line := func(a, b Point) {
		length := a.Dist(b)
		if length == 0 {
			return
		}
		state.walk(length, func(s0, s1 float64, cont bool) {
			if !cont {
				p := a.Lerp(b, s0/length)
				dst.MoveTo(p.X, p.Y)
			}
			p := a.Lerp(b, s1/length)
			dst.LineTo(p.X, p.Y)
		})
	}

	it := src.Iter()
	for v := it.Next(&pts); v != VerbDone; v = it.Next(&pts) {
		switch v {
		case VerbMove:
			state = d.startState(intervals, total)
			moveTo = pts[0]
		case VerbLine:
			line(pts[0], pts[1])
		case VerbQuad:
			q := QuadBez{pts[0], pts[1], pts[2]}
			table := arcTable(q.Eval)
			state.walk(table[arcSamples], func(s0, s1 float64, cont bool) {
				sub := q.Subsegment(paramAt(&table, s0), paramAt(&table, s1))
				if !cont {
					dst.MoveTo(sub.P0.X, sub.P0.Y)
				}
				dst.QuadTo(sub.P1.X, sub.P1.Y, sub.P2.X, sub.P2.Y)
			})
		case VerbCubic:
			c := CubicBez{pts[0], pts[1], pts[2], pts[3]}
			table := arcTable(c.Eval)
			state.walk(table[arcSamples], func(s0, s1 float64, cont bool) {
				sub := c.Subsegment(paramAt(&table, s0), paramAt(&table, s1))
				if !cont {
					dst.MoveTo(sub.P0.X, sub.P0.Y)
				}
				dst.CubicTo(sub.P1.X, sub.P1.Y, sub.P2.X, sub.P2.Y, sub.P3.X, sub.P3.Y)
			})
		case VerbClose:
			line(pts[0], moveTo)
		}
	}
	return dst
}
