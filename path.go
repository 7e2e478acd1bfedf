package vecdev

// Verb identifies one segment of a Path.
type Verb uint8

const (
	VerbMove  Verb = iota // 1 point
	VerbLine              // 2 points: start, end
	VerbQuad              // 3 points: start, control, end
	VerbCubic             // 4 points: start, control1, control2, end
	VerbClose             // 1 point: the last point
	VerbDone              // iteration finished
)

var verbNames = [...]string{
	VerbMove:  "move",
	VerbLine:  "line",
	VerbQuad:  "quad",
	VerbCubic: "cubic",
	VerbClose: "close",
	VerbDone:  "done",
}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "unknown"
}

// pointCount is the number of points a verb stores in the path.
func (v Verb) pointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// FillType decides which areas of a path are inside.
type FillType uint8

const (
	FillWinding FillType = iota
	FillEvenOdd
	FillInverseWinding
	FillInverseEvenOdd
)

// IsInverse reports whether the fill type paints the outside of the path.
func (f FillType) IsInverse() bool {
	return f == FillInverseWinding || f == FillInverseEvenOdd
}

func (f FillType) String() string {
	switch f {
	case FillWinding:
		return "winding"
	case FillEvenOdd:
		return "even-odd"
	case FillInverseWinding:
		return "inverse-winding"
	case FillInverseEvenOdd:
		return "inverse-even-odd"
	default:
		return "unknown"
	}
}

// Path is an ordered sequence of verbs with their points in device space.
// A Path is built by the caller for one draw call; the device never keeps it.
type Path struct {
	verbs    []Verb
	pts      []Point
	fillType FillType
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs: make([]Verb, 0, 8),
		pts:   make([]Point, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbMove)
	p.pts = append(p.pts, pt)
	p.start = pt
	p.current = pt
}

// injectMove starts a subpath at the last start point when a segment is
// appended to an empty path or right after a close.
func (p *Path) injectMove() {
	if n := len(p.verbs); n == 0 || p.verbs[n-1] == VerbClose {
		p.MoveTo(p.start.X, p.start.Y)
	}
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.injectMove()
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbLine)
	p.pts = append(p.pts, pt)
	p.current = pt
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.injectMove()
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbQuad)
	p.pts = append(p.pts, Pt(cx, cy), pt)
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.injectMove()
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbCubic)
	p.pts = append(p.pts, Pt(c1x, c1y), Pt(c2x, c2y), pt)
	p.current = pt
}

// Close closes the current subpath. Closing an empty or already closed
// subpath does nothing.
func (p *Path) Close() {
	n := len(p.verbs)
	if n == 0 || p.verbs[n-1] == VerbClose {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.current = p.start
}

// AddRect adds r as a closed clockwise subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddCircle adds a circle made of four cubic Bezier curves.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddEllipse adds an axis-aligned ellipse.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// FillType returns the path's fill type.
func (p *Path) FillType() FillType { return p.fillType }

// SetFillType sets the path's fill type.
func (p *Path) SetFillType(f FillType) { p.fillType = f }

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Verbs returns a copy of the path's verbs.
func (p *Path) Verbs() []Verb {
	out := make([]Verb, len(p.verbs))
	copy(out, p.verbs)
	return out
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of all stored points, control points
// included.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	b := Rect{Left: p.pts[0].X, Top: p.pts[0].Y, Right: p.pts[0].X, Bottom: p.pts[0].Y}
	for _, pt := range p.pts[1:] {
		b = b.Union(Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y})
	}
	return b
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := p.Clone()
	for i, pt := range result.pts {
		result.pts[i] = m.MapPoint(pt)
	}
	result.start = m.MapPoint(p.start)
	result.current = m.MapPoint(p.current)
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		verbs:    make([]Verb, len(p.verbs)),
		pts:      make([]Point, len(p.pts)),
		fillType: p.fillType,
		start:    p.start,
		current:  p.current,
	}
	copy(result.verbs, p.verbs)
	copy(result.pts, p.pts)
	return result
}

// Iter returns an iterator over the path's segments.
func (p *Path) Iter() *PathIter {
	return &PathIter{path: p}
}

// PathIter walks a Path one verb at a time. Every segment is reported with
// its start point in pts[0], so a line fills pts[0:2], a quad pts[0:3] and a
// cubic pts[0:4].
type PathIter struct {
	path   *Path
	verb   int
	pt     int
	last   Point
	moveTo Point
}

// Next stores the points of the next segment in pts and returns its verb.
// It returns VerbDone once the path is exhausted.
func (it *PathIter) Next(pts *[4]Point) Verb {
	if it.verb >= len(it.path.verbs) {
		return VerbDone
	}
	v := it.path.verbs[it.verb]
	it.verb++

	n := v.pointCount()
	src := it.path.pts[it.pt : it.pt+n]
	it.pt += n

	switch v {
	case VerbMove:
		pts[0] = src[0]
		it.moveTo = src[0]
		it.last = src[0]
	case VerbLine, VerbQuad, VerbCubic:
		pts[0] = it.last
		copy(pts[1:], src)
		it.last = src[n-1]
	case VerbClose:
		pts[0] = it.last
		it.last = it.moveTo
	}
	return v
}
