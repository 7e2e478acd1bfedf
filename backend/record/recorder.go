package record

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/vecdev/backend"
)

var (
	// ErrReleased is the sticky status after Release was called more often
	// than the context was referenced.
	ErrReleased = errors.New("record: context released too often")

	// ErrBadSurface is the sticky status after a call used an image surface
	// that is unknown or already destroyed.
	ErrBadSurface = errors.New("record: invalid image surface")
)

// Recorder is a backend.Surface that records commands.
// It starts with one reference held by its creator.
type Recorder struct {
	width, height int
	commands      []Command

	refs    int
	err     error
	matrix  backend.Matrix
	clipped bool
	pathLen int
	nextID  SurfaceID
	live    map[SurfaceID]struct{}
}

var _ backend.Surface = (*Recorder)(nil)

// New creates a Recorder for a page of the given size.
func New(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		refs:     1,
		matrix:   backend.IdentityMatrix(),
		live:     make(map[SurfaceID]struct{}),
	}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// --------------------------------------------------------------------------
// Inspection
// --------------------------------------------------------------------------

// Width returns the page width.
func (r *Recorder) Width() int { return r.width }

// Height returns the page height.
func (r *Recorder) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command { return r.commands }

// Types returns the type of every recorded command, in order.
func (r *Recorder) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Reset drops the recorded commands. Tracked state is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Matrix returns the current matrix.
func (r *Recorder) Matrix() backend.Matrix { return r.matrix }

// Clipped reports whether a clip is active.
func (r *Recorder) Clipped() bool { return r.clipped }

// PathPending reports whether path segments are waiting for a paint.
func (r *Recorder) PathPending() bool { return r.pathLen > 0 }

// LiveSurfaces returns the number of image surfaces not yet destroyed.
func (r *Recorder) LiveSurfaces() int { return len(r.live) }

// Refs returns the reference count.
func (r *Recorder) Refs() int { return r.refs }

// --------------------------------------------------------------------------
// backend.Context
// --------------------------------------------------------------------------

// Reference implements backend.Context.
func (r *Recorder) Reference() { r.refs++ }

// Release implements backend.Context.
func (r *Recorder) Release() {
	if r.refs == 0 {
		r.fail(ErrReleased)
		return
	}
	r.refs--
}

// Status implements backend.Context.
func (r *Recorder) Status() error { return r.err }

// SetMatrix implements backend.Context.
func (r *Recorder) SetMatrix(m backend.Matrix) {
	r.matrix = m
	r.record(SetMatrixCommand{Matrix: m})
}

// ResetClip implements backend.Context.
func (r *Recorder) ResetClip() {
	r.clipped = false
	r.record(ResetClipCommand{})
}

// Clip implements backend.Context.
func (r *Recorder) Clip() {
	r.clipped = true
	r.pathLen = 0
	r.record(ClipCommand{})
}

// MoveTo implements backend.Context.
func (r *Recorder) MoveTo(x, y float64) {
	r.pathLen++
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo implements backend.Context.
func (r *Recorder) LineTo(x, y float64) {
	r.pathLen++
	r.record(LineToCommand{X: x, Y: y})
}

// CurveTo implements backend.Context.
func (r *Recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.pathLen++
	r.record(CurveToCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
}

// ClosePath implements backend.Context.
func (r *Recorder) ClosePath() {
	r.pathLen++
	r.record(ClosePathCommand{})
}

// Rectangle implements backend.Context.
func (r *Recorder) Rectangle(x, y, width, height float64) {
	r.pathLen++
	r.record(RectangleCommand{X: x, Y: y, Width: width, Height: height})
}

// Fill implements backend.Context.
func (r *Recorder) Fill() {
	r.pathLen = 0
	r.record(FillCommand{})
}

// FillPreserve implements backend.Context.
func (r *Recorder) FillPreserve() {
	r.record(FillPreserveCommand{})
}

// Stroke implements backend.Context.
func (r *Recorder) Stroke() {
	r.pathLen = 0
	r.record(StrokeCommand{})
}

// SetSourceRGBA implements backend.Context.
func (r *Recorder) SetSourceRGBA(red, green, blue, alpha float64) {
	r.record(SetSourceRGBACommand{R: red, G: green, B: blue, A: alpha})
}

// SetFillRule implements backend.Context.
func (r *Recorder) SetFillRule(rule backend.FillRule) {
	r.record(SetFillRuleCommand{Rule: rule})
}

// SetLineWidth implements backend.Context.
func (r *Recorder) SetLineWidth(width float64) {
	r.record(SetLineWidthCommand{Width: width})
}

// SetLineJoin implements backend.Context.
func (r *Recorder) SetLineJoin(join backend.LineJoin) {
	r.record(SetLineJoinCommand{Join: join})
}

// SetLineCap implements backend.Context.
func (r *Recorder) SetLineCap(lineCap backend.LineCap) {
	r.record(SetLineCapCommand{Cap: lineCap})
}

// SetMiterLimit implements backend.Context.
func (r *Recorder) SetMiterLimit(limit float64) {
	r.record(SetMiterLimitCommand{Limit: limit})
}

// imageSurface is the handle returned by CreateImageSurface.
type imageSurface struct {
	rec           *Recorder
	id            SurfaceID
	width, height int
}

func (s *imageSurface) Width() int  { return s.width }
func (s *imageSurface) Height() int { return s.height }

func (s *imageSurface) Destroy() {
	if _, ok := s.rec.live[s.id]; !ok {
		s.rec.fail(fmt.Errorf("%w: surface %d destroyed twice", ErrBadSurface, s.id))
		return
	}
	delete(s.rec.live, s.id)
	s.rec.record(DestroySurfaceCommand{Surface: s.id})
}

// CreateImageSurface implements backend.Context.
func (r *Recorder) CreateImageSurface(pix []byte, width, height, stride int) backend.ImageSurface {
	r.nextID++
	id := r.nextID
	r.live[id] = struct{}{}

	r.record(CreateImageSurfaceCommand{
		Surface: id,
		Width:   width,
		Height:  height,
		Stride:  stride,
		Pixels:  append([]byte(nil), pix...),
	})
	return &imageSurface{rec: r, id: id, width: width, height: height}
}

// SetSourceSurface implements backend.Context.
func (r *Recorder) SetSourceSurface(s backend.ImageSurface, x, y float64) {
	is, ok := s.(*imageSurface)
	if !ok || is.rec != r {
		r.fail(fmt.Errorf("%w: surface from another context", ErrBadSurface))
		return
	}
	if _, ok := r.live[is.id]; !ok {
		r.fail(fmt.Errorf("%w: surface %d used after destroy", ErrBadSurface, is.id))
		return
	}
	r.record(SetSourceSurfaceCommand{Surface: is.id, X: x, Y: y})
}

// PaintWithAlpha implements backend.Context.
func (r *Recorder) PaintWithAlpha(alpha float64) {
	r.record(PaintWithAlphaCommand{Alpha: alpha})
}

// SetFontFace implements backend.Context.
func (r *Recorder) SetFontFace(face *backend.FontFace) {
	r.record(SetFontFaceCommand{Face: face})
}

// SetFontSize implements backend.Context.
func (r *Recorder) SetFontSize(size float64) {
	r.record(SetFontSizeCommand{Size: size})
}

// ShowGlyphs implements backend.Context.
func (r *Recorder) ShowGlyphs(glyphs []backend.Glyph) {
	r.record(ShowGlyphsCommand{Glyphs: append([]backend.Glyph(nil), glyphs...)})
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// String returns the command listing, one command per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.commands {
		sb.WriteString(Format(c))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo implements io.WriterTo by writing the command listing.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Playback replays the recording onto ctx and returns ctx's status.
// Surfaces are recreated from the recorded pixel copies.
func (r *Recorder) Playback(ctx backend.Context) error {
	surfaces := make(map[SurfaceID]backend.ImageSurface)
	defer func() {
		for _, s := range surfaces {
			s.Destroy()
		}
	}()

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetMatrixCommand:
			ctx.SetMatrix(c.Matrix)
		case ResetClipCommand:
			ctx.ResetClip()
		case ClipCommand:
			ctx.Clip()
		case MoveToCommand:
			ctx.MoveTo(c.X, c.Y)
		case LineToCommand:
			ctx.LineTo(c.X, c.Y)
		case CurveToCommand:
			ctx.CurveTo(c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3)
		case ClosePathCommand:
			ctx.ClosePath()
		case RectangleCommand:
			ctx.Rectangle(c.X, c.Y, c.Width, c.Height)
		case FillCommand:
			ctx.Fill()
		case FillPreserveCommand:
			ctx.FillPreserve()
		case StrokeCommand:
			ctx.Stroke()
		case SetSourceRGBACommand:
			ctx.SetSourceRGBA(c.R, c.G, c.B, c.A)
		case SetFillRuleCommand:
			ctx.SetFillRule(c.Rule)
		case SetLineWidthCommand:
			ctx.SetLineWidth(c.Width)
		case SetLineJoinCommand:
			ctx.SetLineJoin(c.Join)
		case SetLineCapCommand:
			ctx.SetLineCap(c.Cap)
		case SetMiterLimitCommand:
			ctx.SetMiterLimit(c.Limit)
		case CreateImageSurfaceCommand:
			surfaces[c.Surface] = ctx.CreateImageSurface(c.Pixels, c.Width, c.Height, c.Stride)
		case SetSourceSurfaceCommand:
			s, ok := surfaces[c.Surface]
			if !ok {
				return fmt.Errorf("%w: playback of surface %d", ErrBadSurface, c.Surface)
			}
			ctx.SetSourceSurface(s, c.X, c.Y)
		case PaintWithAlphaCommand:
			ctx.PaintWithAlpha(c.Alpha)
		case DestroySurfaceCommand:
			if s, ok := surfaces[c.Surface]; ok {
				s.Destroy()
				delete(surfaces, c.Surface)
			}
		case SetFontFaceCommand:
			ctx.SetFontFace(c.Face)
		case SetFontSizeCommand:
			ctx.SetFontSize(c.Size)
		case ShowGlyphsCommand:
			ctx.ShowGlyphs(c.Glyphs)
		default:
			return fmt.Errorf("record: playback of unknown command %v", cmd.Type())
		}
	}
	return ctx.Status()
}
