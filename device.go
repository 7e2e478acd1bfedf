package vecdev

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vecdev/backend"
)

// Device renders canvas drawing calls onto a stateful backend.Context.
//
// The device owns one reference to its context for its whole lifetime and
// keeps the last transform and clip region it was given. After every call
// returns, the context's matrix and clip are the ones last set through
// SetTransformAndClip; calls that need a different matrix for a while
// restore it on every exit path.
//
// A Device is NOT safe for concurrent use: the context it wraps carries
// global state, so all drawing for one rendering pass must go through one
// goroutine.
type Device struct {
	ctx       backend.Context
	width     int
	height    int
	transform Matrix
	clip      Region
	bitmap    *Bitmap
	fonts     FontService
	clipMode  ClipMode
	miter     float64
	log       *slog.Logger
	closed    bool
}

// NewDevice creates a device of the given size drawing onto ctx.
// The device takes a reference on ctx; Close releases it.
func NewDevice(ctx backend.Context, width, height int, opts ...DeviceOption) (*Device, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if err := ctx.Status(); err != nil {
		return nil, fmt.Errorf("vecdev: backend context: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	ctx.Reference()

	return &Device{
		ctx:       ctx,
		width:     width,
		height:    height,
		transform: Identity(),
		bitmap:    NewBitmap(width, height),
		fonts:     o.fonts,
		clipMode:  o.clipMode,
		miter:     backend.DefaultMiterLimit,
		log:       o.logger,
	}, nil
}

// Close releases the device's reference on its context and reports the
// context's final status. Calling Close more than once is a no-op.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	err := d.ctx.Status()
	d.ctx.Release()
	return err
}

// Width returns the device width in device units.
func (d *Device) Width() int { return d.width }

// Height returns the device height in device units.
func (d *Device) Height() int { return d.height }

// Transform returns the current transform.
func (d *Device) Transform() Matrix { return d.transform }

// ClipRegion returns the current clip region.
func (d *Device) ClipRegion() Region { return NewRegion(d.clip.rects...) }

// AccessBitmap returns the device's backing raster. A vector device never
// draws into it; it exists so other devices can sprite this one.
func (d *Device) AccessBitmap() *Bitmap { return d.bitmap }

// SetTransformAndClip stores the transform and clip region used by all
// following calls. A non-empty region replaces the backend clip; an empty
// region leaves the backend clip alone. The transform is always reloaded,
// so setting the same values twice leaves the backend in the same state.
func (d *Device) SetTransformAndClip(m Matrix, region Region) {
	d.transform = m
	d.clip = NewRegion(region.rects...)

	if d.clip.IsEmpty() {
		d.restoreTransform()
		return
	}
	d.loadClipRegion(d.clip)
}

// loadClipRegion replaces the backend clip with region. Clip geometry is in
// device pixels, so it is emitted under the identity matrix; the deferred
// restore reloads the stored transform.
func (d *Device) loadClipRegion(region Region) {
	restore := d.bypassTransform()
	defer restore()

	d.ctx.ResetClip()

	if d.clipMode == ClipExact && !region.IsRect() {
		d.ctx.SetFillRule(backend.FillRuleWinding)
		for _, r := range region.rects {
			d.ctx.Rectangle(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()))
		}
		d.ctx.Clip()
		return
	}

	if !region.IsRect() {
		d.log.Debug("vecdev: clip region reduced to its bounds", "rects", len(region.rects))
	}
	b := region.Bounds()
	d.ctx.Rectangle(float64(b.Left), float64(b.Top), float64(b.Width()), float64(b.Height()))
	d.ctx.Clip()
}

// bypassTransform loads the identity matrix and returns a func that
// reloads the stored transform. Callers defer the returned func.
func (d *Device) bypassTransform() (restore func()) {
	d.loadTransform(Identity())
	return d.restoreTransform
}

// concatTransform loads transform*m and returns a func that reloads the
// stored transform. Callers defer the returned func.
func (d *Device) concatTransform(m Matrix) (restore func()) {
	d.loadTransform(d.transform.Concat(m))
	return d.restoreTransform
}

func (d *Device) restoreTransform() {
	d.loadTransform(d.transform)
}

func (d *Device) loadTransform(m Matrix) {
	d.ctx.SetMatrix(m.Backend())
}

// applyPaintColor sets the paint color, alpha included, as the source.
func (d *Device) applyPaintColor(p *Paint) {
	r, g, b, a := p.Color.Float()
	d.ctx.SetSourceRGBA(r, g, b, a)
}

// applyFillRule maps a path fill type onto the backend. The backend has no
// inverse fills; those fall back to their plain rule.
func (d *Device) applyFillRule(ft FillType) {
	rule := backend.FillRuleWinding
	switch ft {
	case FillEvenOdd, FillInverseEvenOdd:
		rule = backend.FillRuleEvenOdd
	}
	if ft.IsInverse() {
		d.log.Debug("vecdev: inverse fill drawn as plain fill", "fill", ft)
	}
	d.ctx.SetFillRule(rule)
}

// applyStrokeStyle sets line width, join and cap. The miter limit is only
// sent when it differs from what the context already holds.
func (d *Device) applyStrokeStyle(p *Paint) {
	d.ctx.SetLineWidth(p.StrokeWidth)
	d.ctx.SetLineJoin(backendJoin(p.StrokeJoin))
	d.ctx.SetLineCap(backendCap(p.StrokeCap))

	limit := p.MiterLimit
	if limit <= 0 {
		limit = backend.DefaultMiterLimit
	}
	if limit != d.miter {
		d.ctx.SetMiterLimit(limit)
		d.miter = limit
	}
}

// doPaintStyle consumes the current path according to the paint style.
// Fill and stroke share one path: fill-preserve keeps it for the stroke.
func (d *Device) doPaintStyle(p *Paint) {
	switch p.Style {
	case StyleFill:
		d.ctx.Fill()
	case StyleStroke:
		d.ctx.Stroke()
	case StyleFillAndStroke:
		d.ctx.FillPreserve()
		d.ctx.Stroke()
	default:
		d.contractViolation("unknown paint style %d", p.Style)
	}
}

func validStyle(s Style) bool {
	return s == StyleFill || s == StyleStroke || s == StyleFillAndStroke
}

func backendJoin(j LineJoin) backend.LineJoin {
	switch j {
	case LineJoinRound:
		return backend.LineJoinRound
	case LineJoinBevel:
		return backend.LineJoinBevel
	default:
		return backend.LineJoinMiter
	}
}

func backendCap(c LineCap) backend.LineCap {
	switch c {
	case LineCapRound:
		return backend.LineCapRound
	case LineCapSquare:
		return backend.LineCapSquare
	default:
		return backend.LineCapButt
	}
}
