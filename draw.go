package vecdev

// PointMode selects how DrawPoints connects its points.
type PointMode uint8

const (
	// PointModePoints draws every point as a tiny stroked segment.
	PointModePoints PointMode = iota
	// PointModeLines draws each consecutive pair as a separate line.
	PointModeLines
	// PointModePolygon draws one open polyline through all points.
	PointModePolygon
)

func (m PointMode) String() string {
	switch m {
	case PointModePoints:
		return "points"
	case PointModeLines:
		return "lines"
	case PointModePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// pointDotLength is the length of the segment drawn for a single point.
// Round or square caps make it visible as a dot.
const pointDotLength = 0.01

// DrawPaint floods the whole device with p, ignoring the transform.
func (d *Device) DrawPaint(p *Paint) {
	restore := d.bypassTransform()
	defer restore()

	// One unit of overdraw on the far edges covers partially hit pixels.
	d.DrawRect(RectLTRB(0, 0, float64(d.width+1), float64(d.height+1)), p)
}

// DrawPath draws path with p under the current transform.
//
// A paint with a path effect is resolved first: the effect output is drawn
// with an effect-free copy of the paint, so the effect runs exactly once.
func (d *Device) DrawPath(path *Path, p *Paint) {
	if path == nil {
		d.contractViolation("DrawPath with nil path")
		return
	}
	if p.PathEffect != nil {
		d.DrawPath(p.FillPath(path), p.WithoutPathEffect())
		return
	}
	if !validStyle(p.Style) {
		d.contractViolation("unknown paint style %d", p.Style)
		return
	}

	d.applyPaintColor(p)
	if p.Style.HasFill() {
		d.applyFillRule(path.FillType())
	}
	if p.Style.HasStroke() {
		d.applyStrokeStyle(p)
	}
	d.emitPath(path)
	d.doPaintStyle(p)
}

// emitPath sends the verbs of path to the backend. Quads are elevated to
// cubics since the backend only knows cubic curves.
func (d *Device) emitPath(path *Path) {
	var pts [4]Point
	it := path.Iter()
	for v := it.Next(&pts); v != VerbDone; v = it.Next(&pts) {
		switch v {
		case VerbMove:
			d.ctx.MoveTo(pts[0].X, pts[0].Y)
		case VerbLine:
			d.ctx.LineTo(pts[1].X, pts[1].Y)
		case VerbQuad:
			c1, c2 := ElevateQuad(pts[0], pts[1], pts[2])
			d.ctx.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[2].X, pts[2].Y)
		case VerbCubic:
			d.ctx.CurveTo(pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, pts[3].X, pts[3].Y)
		case VerbClose:
			d.ctx.ClosePath()
		default:
			d.contractViolation("unexpected path verb %v", v)
			return
		}
	}
}

// DrawRect draws r with p under the current transform.
func (d *Device) DrawRect(r Rect, p *Paint) {
	if p.PathEffect != nil {
		path := NewPath()
		path.AddRect(r)
		d.DrawPath(p.FillPath(path), p.WithoutPathEffect())
		return
	}
	if !validStyle(p.Style) {
		d.contractViolation("unknown paint style %d", p.Style)
		return
	}

	d.applyPaintColor(p)
	if p.Style.HasStroke() {
		d.applyStrokeStyle(p)
	}
	d.ctx.Rectangle(r.Left, r.Top, r.Right-r.Left, r.Bottom-r.Top)
	d.doPaintStyle(p)
}

// DrawPoints strokes pts as dots, line pairs or an open polyline. The paint
// style is ignored: points are always stroked, in one Stroke for the batch.
func (d *Device) DrawPoints(mode PointMode, pts []Point, p *Paint) {
	if len(pts) == 0 {
		return
	}
	switch mode {
	case PointModePoints, PointModePolygon:
	case PointModeLines:
		if len(pts)%2 != 0 {
			d.contractViolation("DrawPoints lines mode with odd point count %d", len(pts))
			return
		}
	default:
		d.contractViolation("DrawPoints with unknown mode %d", mode)
		return
	}

	d.applyPaintColor(p)
	d.applyStrokeStyle(p)

	switch mode {
	case PointModePoints:
		for _, pt := range pts {
			d.ctx.MoveTo(pt.X, pt.Y)
			d.ctx.LineTo(pt.X+pointDotLength, pt.Y)
		}
	case PointModeLines:
		for i := 0; i < len(pts); i += 2 {
			d.ctx.MoveTo(pts[i].X, pts[i].Y)
			d.ctx.LineTo(pts[i+1].X, pts[i+1].Y)
		}
	case PointModePolygon:
		d.ctx.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			d.ctx.LineTo(pt.X, pt.Y)
		}
	}
	d.ctx.Stroke()
}

// DrawSprite draws bm with its top-left corner at device pixel (x, y),
// ignoring the transform.
func (d *Device) DrawSprite(bm *Bitmap, x, y int, p *Paint) {
	if !d.drawable(bm, p) {
		return
	}
	restore := d.bypassTransform()
	defer restore()

	d.blit(bm, float64(x), float64(y), p)
}

// DrawBitmap draws bm at the origin of transform*m.
func (d *Device) DrawBitmap(bm *Bitmap, m Matrix, p *Paint) {
	if !d.drawable(bm, p) {
		return
	}
	restore := d.concatTransform(m)
	defer restore()

	d.blit(bm, 0, 0, p)
}

// DrawDevice sprites the backing bitmap of src at (x, y).
func (d *Device) DrawDevice(src BitmapDevice, x, y int, p *Paint) {
	if src == nil {
		d.contractViolation("DrawDevice with nil source")
		return
	}
	d.DrawSprite(src.AccessBitmap(), x, y, p)
}

// drawable reports whether blitting bm with p would put anything on the page.
func (d *Device) drawable(bm *Bitmap, p *Paint) bool {
	if bm == nil {
		d.contractViolation("bitmap draw with nil bitmap")
		return false
	}
	return p.Alpha() != 0 && !bm.IsEmpty()
}

// blit paints bm at (x, y) in the current user space, modulated by the
// paint alpha. The pixels stay locked and the temporary image surface
// alive only for the duration of the paint.
func (d *Device) blit(bm *Bitmap, x, y float64, p *Paint) {
	pix := bm.Lock()
	defer bm.Unlock()

	s := d.ctx.CreateImageSurface(pix, bm.Width(), bm.Height(), bm.Stride())
	defer s.Destroy()

	d.ctx.SetSourceSurface(s, x, y)
	d.ctx.PaintWithAlpha(float64(p.Alpha()) / 255)
}
