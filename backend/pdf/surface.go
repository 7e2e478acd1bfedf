package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/backend"
)

var (
	// ErrInvalidSize is returned by New for non-positive page sizes.
	ErrInvalidSize = errors.New("pdf: page size must be positive")

	// ErrReleased is the sticky status after Release was called more often
	// than the surface was referenced.
	ErrReleased = errors.New("pdf: surface released too often")

	// ErrBadSurface is the sticky status after a call used an image surface
	// that is unknown or already destroyed.
	ErrBadSurface = errors.New("pdf: invalid image surface")

	// ErrNoFont is the sticky status after glyphs were shown without a
	// usable font face.
	ErrNoFont = errors.New("pdf: no font face selected")
)

// rgba is a solid color with components in [0, 1].
type rgba struct {
	r, g, b, a float64
}

func (c rgba) ints() (int, int, int) {
	return channel(c.r), channel(c.g), channel(c.b)
}

func channel(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

var (
	caps = map[backend.LineCap]string{
		backend.LineCapButt:   "butt",
		backend.LineCapRound:  "round",
		backend.LineCapSquare: "square",
	}
	joins = map[backend.LineJoin]string{
		backend.LineJoinMiter: "miter",
		backend.LineJoinRound: "round",
		backend.LineJoinBevel: "bevel",
	}
)

// Surface is a single page PDF document implementing backend.Surface.
// Coordinates are in points with the origin at the top-left corner.
type Surface struct {
	pdf           *fpdf.Fpdf
	width, height float64
	refs          int
	err           error
	out           []byte
	log           *slog.Logger

	matrix      backend.Matrix
	inTransform bool
	clipNest    int

	path      pendingPath
	preserved *rgba

	color     rgba
	fillRule  backend.FillRule
	lineWidth float64
	lineJoin  backend.LineJoin
	lineCap   backend.LineCap
	miter     float64
	miterSet  bool // a non-default limit has reached the page

	source *imageSurface
	srcX   float64
	srcY   float64

	face     *backend.FontFace
	fontSize float64
	fonts    map[uint32]string
}

var _ backend.Surface = (*Surface)(nil)

// New creates a PDF surface with one page of width x height points.
// The surface starts with one reference held by its creator.
func New(width, height float64, opts ...Option) (*Surface, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: got %gx%g", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = vecdev.Logger()
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(o.compress)
	pdf.SetCreator(o.creator, true)
	if o.title != "" {
		pdf.SetTitle(o.title, true)
	}
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: create document: %w", err)
	}

	return &Surface{
		pdf:       pdf,
		width:     width,
		height:    height,
		refs:      1,
		log:       o.logger,
		matrix:    backend.IdentityMatrix(),
		color:     rgba{a: 1},
		lineWidth: 1,
		miter:     backend.DefaultMiterLimit,
		fontSize:  12,
		fonts:     make(map[uint32]string),
	}, nil
}

func (s *Surface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Reference implements backend.Context.
func (s *Surface) Reference() { s.refs++ }

// Release implements backend.Context.
func (s *Surface) Release() {
	if s.refs == 0 {
		s.fail(ErrReleased)
		return
	}
	s.refs--
}

// Status implements backend.Context. It reports the first error of either
// the surface or the underlying document.
func (s *Surface) Status() error {
	if s.err != nil {
		return s.err
	}
	return s.pdf.Error()
}

// --------------------------------------------------------------------------
// Matrix and clip
// --------------------------------------------------------------------------

// pageMatrix converts a y-down device matrix into the y-up matrix fpdf
// expects for the page content stream.
func (s *Surface) pageMatrix(m backend.Matrix) fpdf.TransformMatrix {
	h := s.height
	return fpdf.TransformMatrix{
		A: m.XX,
		B: -m.YX,
		C: -m.XY,
		D: m.YY,
		E: m.XY*h + m.X0,
		F: h - m.YY*h - m.Y0,
	}
}

func (s *Surface) beginTransform() {
	if s.matrix.IsIdentity() {
		return
	}
	s.pdf.TransformBegin()
	s.pdf.Transform(s.pageMatrix(s.matrix))
	s.inTransform = true
}

func (s *Surface) endTransform() {
	if s.inTransform {
		s.pdf.TransformEnd()
		s.inTransform = false
	}
}

// SetMatrix implements backend.Context. A path under construction keeps
// its position on the page.
func (s *Surface) SetMatrix(m backend.Matrix) {
	s.flushPreserved()
	if !s.path.empty() && m != s.matrix {
		if inv, ok := m.Invert(); ok {
			s.path = s.path.transform(inv.Multiply(s.matrix))
		}
	}
	s.endTransform()
	s.matrix = m
	s.beginTransform()
}

// ResetClip implements backend.Context.
func (s *Surface) ResetClip() {
	s.flushPreserved()
	if s.clipNest == 0 {
		return
	}
	s.endTransform()
	s.endClips()
	s.beginTransform()
}

// Clip implements backend.Context. The clip is the current path under the
// current fill rule, written in page space as its own graphics state
// level. An empty path clips everything.
func (s *Surface) Clip() {
	s.flushPreserved()
	page := s.path.transform(s.matrix)
	s.path = nil

	s.endTransform()
	s.pdf.RawWriteStr("q")
	if page.empty() {
		s.pdf.RawWriteStr("0 0 0 0 re")
	} else {
		page.emit(s.pdf)
	}
	if s.fillRule == backend.FillRuleEvenOdd {
		s.pdf.RawWriteStr("W* n")
	} else {
		s.pdf.RawWriteStr("W n")
	}
	s.clipNest++
	s.beginTransform()
}

// endClips pops every clip level. The transform must already be ended.
func (s *Surface) endClips() {
	for ; s.clipNest > 0; s.clipNest-- {
		s.pdf.RawWriteStr("Q")
	}
}

// --------------------------------------------------------------------------
// Path construction
// --------------------------------------------------------------------------

func (s *Surface) add(seg segment) {
	s.flushPreserved()
	s.path = append(s.path, seg)
}

// MoveTo implements backend.Context.
func (s *Surface) MoveTo(x, y float64) {
	s.add(segment{kind: segMove, p: [3]fpdf.PointType{{X: x, Y: y}}})
}

// LineTo implements backend.Context.
func (s *Surface) LineTo(x, y float64) {
	s.add(segment{kind: segLine, p: [3]fpdf.PointType{{X: x, Y: y}}})
}

// CurveTo implements backend.Context.
func (s *Surface) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.add(segment{kind: segCurve, p: [3]fpdf.PointType{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}})
}

// ClosePath implements backend.Context.
func (s *Surface) ClosePath() {
	s.add(segment{kind: segClose})
}

// Rectangle implements backend.Context.
func (s *Surface) Rectangle(x, y, width, height float64) {
	s.add(segment{kind: segRect, p: [3]fpdf.PointType{{X: x, Y: y}, {X: width, Y: height}}})
}

// --------------------------------------------------------------------------
// Painting
// --------------------------------------------------------------------------

func (s *Surface) fillStyle() string {
	if s.fillRule == backend.FillRuleEvenOdd {
		return "F*"
	}
	return "F"
}

// draw writes the pending path with the given paint operator.
func (s *Surface) draw(style string, fill, stroke rgba, alpha float64) {
	if s.path.empty() {
		return
	}
	s.pdf.SetFillColor(fill.ints())
	s.pdf.SetTextColor(fill.ints())
	s.pdf.SetDrawColor(stroke.ints())
	s.pdf.SetLineWidth(s.lineWidth)
	s.pdf.SetLineCapStyle(caps[s.lineCap])
	s.pdf.SetLineJoinStyle(joins[s.lineJoin])
	s.pdf.SetAlpha(clamp01(alpha), "Normal")
	if strings.Contains(style, "D") && (s.miterSet || s.miter != backend.DefaultMiterLimit) {
		s.pdf.RawWriteStr(fmt.Sprintf("%.2f M", s.miter))
		s.miterSet = true
	}
	s.path.emit(s.pdf)
	s.pdf.DrawPath(style)
}

// flushPreserved fills a path kept by FillPreserve that is not going to be
// merged into a fill-and-stroke operator.
func (s *Surface) flushPreserved() {
	c := s.preserved
	if c == nil {
		return
	}
	s.preserved = nil
	s.draw(s.fillStyle(), *c, *c, c.a)
}

// Fill implements backend.Context.
func (s *Surface) Fill() {
	s.flushPreserved()
	s.draw(s.fillStyle(), s.color, s.color, s.color.a)
	s.path = nil
}

// FillPreserve implements backend.Context. The fill is written together
// with the following Stroke when both use the same alpha.
func (s *Surface) FillPreserve() {
	s.flushPreserved()
	c := s.color
	s.preserved = &c
}

// Stroke implements backend.Context.
func (s *Surface) Stroke() {
	if c := s.preserved; c != nil && c.a == s.color.a {
		s.preserved = nil
		style := "FD"
		if s.fillRule == backend.FillRuleEvenOdd {
			style = "FD*"
		}
		s.draw(style, *c, s.color, c.a)
	} else {
		s.flushPreserved()
		s.draw("D", s.color, s.color, s.color.a)
	}
	s.path = nil
}

// SetSourceRGBA implements backend.Context.
func (s *Surface) SetSourceRGBA(r, g, b, a float64) {
	s.color = rgba{r: r, g: g, b: b, a: a}
	s.source = nil
}

// SetFillRule implements backend.Context.
func (s *Surface) SetFillRule(rule backend.FillRule) { s.fillRule = rule }

// SetLineWidth implements backend.Context.
func (s *Surface) SetLineWidth(width float64) { s.lineWidth = width }

// SetLineJoin implements backend.Context.
func (s *Surface) SetLineJoin(join backend.LineJoin) { s.lineJoin = join }

// SetLineCap implements backend.Context.
func (s *Surface) SetLineCap(lineCap backend.LineCap) { s.lineCap = lineCap }

// SetMiterLimit implements backend.Context. Limits below 1 are invalid in
// PDF and are raised to 1.
func (s *Surface) SetMiterLimit(limit float64) { s.miter = math.Max(1, limit) }

// PaintWithAlpha implements backend.Context. An image source is placed at
// its origin; a color source covers the whole page.
func (s *Surface) PaintWithAlpha(alpha float64) {
	s.flushPreserved()

	if img := s.source; img != nil {
		if img.destroyed {
			s.fail(fmt.Errorf("%w: painted after destroy", ErrBadSurface))
			return
		}
		name := img.register(s.pdf)
		s.pdf.SetAlpha(clamp01(alpha), "Normal")
		s.pdf.ImageOptions(name, s.srcX, s.srcY, float64(img.width), float64(img.height),
			false, fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}, 0, "")
		return
	}

	s.endTransform()
	s.pdf.SetFillColor(s.color.ints())
	s.pdf.SetAlpha(clamp01(s.color.a*alpha), "Normal")
	s.pdf.Rect(0, 0, s.width, s.height, "F")
	s.beginTransform()
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// WriteTo implements io.WriterTo. The first call closes the document; later
// calls write the same bytes again.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	if s.out == nil {
		if err := s.finish(); err != nil {
			return 0, err
		}
	}
	n, err := w.Write(s.out)
	return int64(n), err
}

func (s *Surface) finish() error {
	s.flushPreserved()
	s.path = nil
	s.endTransform()
	s.endClips()
	if err := s.Status(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		s.fail(err)
		return fmt.Errorf("pdf: output: %w", err)
	}
	s.out = buf.Bytes()
	return nil
}
