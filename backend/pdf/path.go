package pdf

import (
	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/vecdev/backend"
)

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segCurve
	segClose
	segRect
)

// segment is one buffered path operation in user space. Rectangles keep
// their origin in p[0] and their size in p[1].
type segment struct {
	kind segKind
	p    [3]fpdf.PointType
}

// pendingPath is the current path, waiting for a paint operator.
type pendingPath []segment

func (pp pendingPath) empty() bool { return len(pp) == 0 }

// emit writes the path operators for pp.
func (pp pendingPath) emit(pdf *fpdf.Fpdf) {
	for _, s := range pp {
		switch s.kind {
		case segMove:
			pdf.MoveTo(s.p[0].X, s.p[0].Y)
		case segLine:
			pdf.LineTo(s.p[0].X, s.p[0].Y)
		case segCurve:
			pdf.CurveBezierCubicTo(s.p[0].X, s.p[0].Y, s.p[1].X, s.p[1].Y, s.p[2].X, s.p[2].Y)
		case segClose:
			pdf.ClosePath()
		case segRect:
			x, y, w, h := s.p[0].X, s.p[0].Y, s.p[1].X, s.p[1].Y
			pdf.MoveTo(x, y)
			pdf.LineTo(x+w, y)
			pdf.LineTo(x+w, y+h)
			pdf.LineTo(x, y+h)
			pdf.ClosePath()
		}
	}
}

// rectSegments expands a rectangle into an explicit closed subpath.
func rectSegments(s segment) []segment {
	x, y, w, h := s.p[0].X, s.p[0].Y, s.p[1].X, s.p[1].Y
	return []segment{
		{kind: segMove, p: [3]fpdf.PointType{{X: x, Y: y}}},
		{kind: segLine, p: [3]fpdf.PointType{{X: x + w, Y: y}}},
		{kind: segLine, p: [3]fpdf.PointType{{X: x + w, Y: y + h}}},
		{kind: segLine, p: [3]fpdf.PointType{{X: x, Y: y + h}}},
		{kind: segClose},
	}
}

func pointCount(k segKind) int {
	switch k {
	case segMove, segLine:
		return 1
	case segCurve:
		return 3
	default:
		return 0
	}
}

func apply(m backend.Matrix, p fpdf.PointType) fpdf.PointType {
	x, y := m.TransformPoint(p.X, p.Y)
	return fpdf.PointType{X: x, Y: y}
}

// transform maps every point of pp through m. Rectangles become plain
// subpaths, since m may rotate them.
func (pp pendingPath) transform(m backend.Matrix) pendingPath {
	out := make(pendingPath, 0, len(pp))
	for _, s := range pp {
		if s.kind == segRect {
			out = append(out, rectSegments(s)...)
			continue
		}
		out = append(out, s)
	}
	for i := range out {
		for j := range pointCount(out[i].kind) {
			out[i].p[j] = apply(m, out[i].p[j])
		}
	}
	return out
}
