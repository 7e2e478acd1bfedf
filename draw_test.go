package vecdev

import (
	"testing"

	"github.com/gogpu/vecdev/backend"
	"github.com/gogpu/vecdev/backend/record"
)

func TestDrawRectFill(t *testing.T) {
	dev, rec := newTestDevice(t)
	p := NewPaint()
	p.Color = ARGB(255, 255, 0, 0)

	dev.DrawRect(RectXYWH(10, 20, 30, 40), p)

	assertTypes(t, rec, record.CmdSetSourceRGBA, record.CmdRectangle, record.CmdFill)
	cmds := rec.Commands()
	if got := cmds[0].(record.SetSourceRGBACommand); got != (record.SetSourceRGBACommand{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("source = %+v, want opaque red", got)
	}
	if got := cmds[1].(record.RectangleCommand); got != (record.RectangleCommand{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("rectangle = %+v", got)
	}
	if rec.PathPending() {
		t.Error("path left pending")
	}
}

func TestDrawRectFillAndStroke(t *testing.T) {
	dev, rec := newTestDevice(t)
	p := NewPaint()
	p.Style = StyleFillAndStroke
	p.StrokeWidth = 2

	dev.DrawRect(RectLTRB(0, 0, 10, 10), p)

	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
		record.CmdRectangle, record.CmdFillPreserve, record.CmdStroke)
	cmds := rec.Commands()
	if got := cmds[1].(record.SetLineWidthCommand).Width; got != 2 {
		t.Errorf("line width = %v, want 2", got)
	}
	want := record.RectangleCommand{X: 0, Y: 0, Width: 10, Height: 10}
	if got := cmds[4].(record.RectangleCommand); got != want {
		t.Errorf("rectangle = %+v, want %+v", got, want)
	}
}

func TestDrawMiterLimit(t *testing.T) {
	dev, rec := newTestDevice(t)
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 10)

	p := NewPaint()
	p.Style = StyleStroke
	dev.DrawPath(path, p)
	if got := count(rec, record.CmdSetMiterLimit); got != 0 {
		t.Fatalf("default paint set the miter limit %d times", got)
	}

	rec.Reset()
	p.MiterLimit = 3
	dev.DrawPath(path, p)
	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
		record.CmdSetMiterLimit, record.CmdMoveTo, record.CmdLineTo, record.CmdLineTo, record.CmdStroke)
	if got := rec.Commands()[4].(record.SetMiterLimitCommand).Limit; got != 3 {
		t.Errorf("miter limit = %v, want 3", got)
	}

	rec.Reset()
	dev.DrawPath(path, p)
	if got := count(rec, record.CmdSetMiterLimit); got != 0 {
		t.Errorf("unchanged limit emitted %d times", got)
	}

	rec.Reset()
	p.MiterLimit = 0
	dev.DrawPath(path, p)
	var limits []float64
	for _, c := range rec.Commands() {
		if m, ok := c.(record.SetMiterLimitCommand); ok {
			limits = append(limits, m.Limit)
		}
	}
	if len(limits) != 1 || limits[0] != backend.DefaultMiterLimit {
		t.Errorf("limits after reset to zero = %v, want [%v]", limits, backend.DefaultMiterLimit)
	}
}

func TestDrawRectUnderTransform(t *testing.T) {
	dev, rec := newTestDevice(t)
	m := Translate(3, 4)
	dev.SetTransformAndClip(m, NewRegion(IRectLTRB(0, 0, testWidth, testHeight)))
	rec.Reset()

	p := NewPaint()
	p.Style = StyleStroke
	p.StrokeWidth = 2
	dev.DrawRect(RectXYWH(0, 0, 5, 5), p)

	// The transform stays loaded; the rect is emitted in user space.
	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
		record.CmdRectangle, record.CmdStroke)
	if rec.Matrix() != m.Backend() {
		t.Errorf("matrix = %v, want %v", rec.Matrix(), m.Backend())
	}
}

func TestDrawPathFillAndStroke(t *testing.T) {
	dev, rec := newTestDevice(t)
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 10)
	path.Close()

	p := NewPaint()
	p.Style = StyleFillAndStroke
	p.StrokeWidth = 3
	p.StrokeJoin = LineJoinRound
	p.StrokeCap = LineCapSquare
	dev.DrawPath(path, p)

	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetFillRule,
		record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
		record.CmdMoveTo, record.CmdLineTo, record.CmdLineTo, record.CmdClosePath,
		record.CmdFillPreserve, record.CmdStroke)

	cmds := rec.Commands()
	if got := cmds[3].(record.SetLineJoinCommand).Join; got != backend.LineJoinRound {
		t.Errorf("join = %v, want round", got)
	}
	if got := cmds[4].(record.SetLineCapCommand).Cap; got != backend.LineCapSquare {
		t.Errorf("cap = %v, want square", got)
	}
}

func TestDrawPathElevatesQuads(t *testing.T) {
	dev, rec := newTestDevice(t)
	path := NewPath()
	path.MoveTo(0, 0)
	path.QuadTo(3, 3, 6, 0)

	dev.DrawPath(path, NewPaint())

	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetFillRule, record.CmdMoveTo, record.CmdCurveTo, record.CmdFill)
	want := record.CurveToCommand{X1: 2, Y1: 2, X2: 4, Y2: 2, X3: 6, Y3: 0}
	if got := rec.Commands()[3].(record.CurveToCommand); got != want {
		t.Errorf("curve = %+v, want %+v", got, want)
	}
}

func TestDrawPathFillRule(t *testing.T) {
	tests := []struct {
		fill FillType
		want backend.FillRule
	}{
		{FillWinding, backend.FillRuleWinding},
		{FillEvenOdd, backend.FillRuleEvenOdd},
		{FillInverseWinding, backend.FillRuleWinding},
		{FillInverseEvenOdd, backend.FillRuleEvenOdd},
	}
	for _, tt := range tests {
		t.Run(tt.fill.String(), func(t *testing.T) {
			dev, rec := newTestDevice(t)
			path := NewPath()
			path.AddRect(RectXYWH(0, 0, 10, 10))
			path.SetFillType(tt.fill)

			dev.DrawPath(path, NewPaint())

			if got := rec.Commands()[1].(record.SetFillRuleCommand).Rule; got != tt.want {
				t.Errorf("fill rule = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawPathStrokeSkipsFillRule(t *testing.T) {
	dev, rec := newTestDevice(t)
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(5, 5)

	p := NewPaint()
	p.Style = StyleStroke
	dev.DrawPath(path, p)

	for _, ct := range rec.Types() {
		if ct == record.CmdSetFillRule || ct == record.CmdFill || ct == record.CmdFillPreserve {
			t.Errorf("stroke-only paint emitted %v", ct)
		}
	}
}

func TestDrawPathAppliesEffectOnce(t *testing.T) {
	dev, rec := newTestDevice(t)
	calls := 0
	p := NewPaint()
	p.PathEffect = PathEffectFunc(func(src *Path) *Path {
		calls++
		return src.Transform(Translate(100, 0))
	})

	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(1, 0)
	dev.DrawPath(path, p)

	if calls != 1 {
		t.Errorf("effect ran %d times, want 1", calls)
	}
	if got := rec.Commands()[2].(record.MoveToCommand); got.X != 100 {
		t.Errorf("first point = %+v, want the effect output", got)
	}
	if p.PathEffect == nil {
		t.Error("DrawPath cleared the caller's path effect")
	}
}

func TestDrawRectWithEffect(t *testing.T) {
	dev, rec := newTestDevice(t)
	calls := 0
	p := NewPaint()
	p.Style = StyleStroke
	p.PathEffect = PathEffectFunc(func(src *Path) *Path {
		calls++
		return src
	})

	dev.DrawRect(RectXYWH(0, 0, 10, 10), p)

	if calls != 1 {
		t.Errorf("effect ran %d times, want 1", calls)
	}
	assertTypes(t, rec,
		record.CmdSetSourceRGBA, record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
		record.CmdMoveTo, record.CmdLineTo, record.CmdLineTo, record.CmdLineTo, record.CmdClosePath,
		record.CmdStroke)
}

func TestDrawPaint(t *testing.T) {
	dev, rec := newTestDevice(t)
	m := Rotate(1)
	dev.SetTransformAndClip(m, Region{})
	rec.Reset()

	dev.DrawPaint(NewPaint())

	assertTypes(t, rec,
		record.CmdSetMatrix, record.CmdSetSourceRGBA,
		record.CmdRectangle, record.CmdFill, record.CmdSetMatrix)
	cmds := rec.Commands()
	if got := cmds[0].(record.SetMatrixCommand).Matrix; !got.IsIdentity() {
		t.Errorf("paint drawn under %v, want identity", got)
	}
	want := record.RectangleCommand{X: 0, Y: 0, Width: testWidth + 1, Height: testHeight + 1}
	if got := cmds[2].(record.RectangleCommand); got != want {
		t.Errorf("rectangle = %+v, want %+v", got, want)
	}
	if rec.Matrix() != m.Backend() {
		t.Errorf("matrix after DrawPaint = %v, want %v", rec.Matrix(), m.Backend())
	}
}

func TestDrawPoints(t *testing.T) {
	pts := []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)}
	style := []record.CommandType{
		record.CmdSetSourceRGBA, record.CmdSetLineWidth, record.CmdSetLineJoin, record.CmdSetLineCap,
	}
	tests := []struct {
		mode PointMode
		path []record.CommandType
	}{
		{PointModePoints, []record.CommandType{
			record.CmdMoveTo, record.CmdLineTo, record.CmdMoveTo, record.CmdLineTo,
			record.CmdMoveTo, record.CmdLineTo, record.CmdMoveTo, record.CmdLineTo,
		}},
		{PointModeLines, []record.CommandType{
			record.CmdMoveTo, record.CmdLineTo, record.CmdMoveTo, record.CmdLineTo,
		}},
		{PointModePolygon, []record.CommandType{
			record.CmdMoveTo, record.CmdLineTo, record.CmdLineTo, record.CmdLineTo,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			dev, rec := newTestDevice(t)
			p := NewPaint()
			p.Style = StyleFill // ignored

			dev.DrawPoints(tt.mode, pts, p)

			want := append(append(append([]record.CommandType{}, style...), tt.path...), record.CmdStroke)
			assertTypes(t, rec, want...)
		})
	}
}

func TestDrawPointsDot(t *testing.T) {
	dev, rec := newTestDevice(t)
	dev.DrawPoints(PointModePoints, []Point{Pt(5, 5)}, NewPaint())

	line := rec.Commands()[5].(record.LineToCommand)
	if line.X <= 5 || line.Y != 5 {
		t.Errorf("dot segment ends at %+v, want a short horizontal segment", line)
	}
}

func TestDrawPointsEmpty(t *testing.T) {
	dev, rec := newTestDevice(t)
	dev.DrawPoints(PointModePolygon, nil, NewPaint())
	assertTypes(t, rec)
}

func TestDrawSprite(t *testing.T) {
	dev, rec := newTestDevice(t)
	m := Translate(9, 9)
	dev.SetTransformAndClip(m, Region{})
	rec.Reset()

	bm := NewBitmap(4, 3)
	p := NewPaint()
	p.Color = ARGB(51, 0, 0, 0)
	dev.DrawSprite(bm, 7, 8, p)

	assertTypes(t, rec,
		record.CmdSetMatrix, record.CmdCreateImageSurface, record.CmdSetSourceSurface,
		record.CmdPaintWithAlpha, record.CmdDestroySurface, record.CmdSetMatrix)

	cmds := rec.Commands()
	if got := cmds[0].(record.SetMatrixCommand).Matrix; !got.IsIdentity() {
		t.Errorf("sprite drawn under %v, want identity", got)
	}
	img := cmds[1].(record.CreateImageSurfaceCommand)
	if img.Width != 4 || img.Height != 3 || img.Stride != 16 {
		t.Errorf("image surface = %dx%d stride %d, want 4x3 stride 16", img.Width, img.Height, img.Stride)
	}
	src := cmds[2].(record.SetSourceSurfaceCommand)
	if src.X != 7 || src.Y != 8 {
		t.Errorf("source origin = (%v, %v), want (7, 8)", src.X, src.Y)
	}
	if got := cmds[3].(record.PaintWithAlphaCommand).Alpha; got != 0.2 {
		t.Errorf("alpha = %v, want 0.2", got)
	}
	if rec.Matrix() != m.Backend() {
		t.Errorf("matrix after sprite = %v, want %v", rec.Matrix(), m.Backend())
	}
	if rec.LiveSurfaces() != 0 {
		t.Errorf("live surfaces = %d, want 0", rec.LiveSurfaces())
	}
	if bm.Locked() {
		t.Error("bitmap still locked")
	}
	if err := rec.Status(); err != nil {
		t.Errorf("backend status = %v", err)
	}
}

func TestDrawBitmap(t *testing.T) {
	dev, rec := newTestDevice(t)
	base := Scale(2, 2)
	dev.SetTransformAndClip(base, Region{})
	rec.Reset()

	bm := NewBitmap(2, 2)
	dev.DrawBitmap(bm, Translate(5, 6), NewPaint())

	assertTypes(t, rec,
		record.CmdSetMatrix, record.CmdCreateImageSurface, record.CmdSetSourceSurface,
		record.CmdPaintWithAlpha, record.CmdDestroySurface, record.CmdSetMatrix)

	cmds := rec.Commands()
	want := base.Concat(Translate(5, 6)).Backend()
	if got := cmds[0].(record.SetMatrixCommand).Matrix; got != want {
		t.Errorf("bitmap matrix = %v, want %v", got, want)
	}
	if src := cmds[2].(record.SetSourceSurfaceCommand); src.X != 0 || src.Y != 0 {
		t.Errorf("source origin = (%v, %v), want (0, 0)", src.X, src.Y)
	}
	if got := cmds[3].(record.PaintWithAlphaCommand).Alpha; got != 1 {
		t.Errorf("alpha = %v, want 1", got)
	}
	if rec.Matrix() != base.Backend() {
		t.Errorf("matrix after bitmap = %v, want %v", rec.Matrix(), base.Backend())
	}
	if rec.LiveSurfaces() != 0 || bm.Locked() {
		t.Error("bitmap draw leaked a surface or a lock")
	}
}

func TestDrawDevice(t *testing.T) {
	dev, rec := newTestDevice(t)
	src, _ := newTestDevice(t)

	dev.DrawDevice(src, 1, 2, NewPaint())

	assertTypes(t, rec,
		record.CmdSetMatrix, record.CmdCreateImageSurface, record.CmdSetSourceSurface,
		record.CmdPaintWithAlpha, record.CmdDestroySurface, record.CmdSetMatrix)
	img := rec.Commands()[1].(record.CreateImageSurfaceCommand)
	if img.Width != testWidth || img.Height != testHeight {
		t.Errorf("image surface = %dx%d, want the source device size", img.Width, img.Height)
	}
}

func TestBitmapDrawsSkipped(t *testing.T) {
	transparent := NewPaint()
	transparent.Color = Transparent

	tests := []struct {
		name string
		draw func(d *Device)
	}{
		{"sprite zero alpha", func(d *Device) { d.DrawSprite(NewBitmap(2, 2), 0, 0, transparent) }},
		{"sprite empty bitmap", func(d *Device) { d.DrawSprite(NewBitmap(0, 2), 0, 0, NewPaint()) }},
		{"bitmap zero alpha", func(d *Device) { d.DrawBitmap(NewBitmap(2, 2), Translate(1, 1), transparent) }},
		{"bitmap empty", func(d *Device) { d.DrawBitmap(NewBitmap(2, 0), Identity(), NewPaint()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDevice(t)
			tt.draw(dev)
			assertTypes(t, rec)
		})
	}
}

func TestBitmapPixelsReachBackend(t *testing.T) {
	dev, rec := newTestDevice(t)
	bm := NewBitmap(1, 1)
	bm.SetPixel(0, 0, White)

	dev.DrawSprite(bm, 0, 0, NewPaint())

	img := rec.Commands()[1].(record.CreateImageSurfaceCommand)
	for i, b := range img.Pixels {
		if b != 0xFF {
			t.Fatalf("pixel byte %d = %#x, want 0xff", i, b)
		}
	}
}

func count(rec *record.Recorder, ct record.CommandType) int {
	n := 0
	for _, got := range rec.Types() {
		if got == ct {
			n++
		}
	}
	return n
}
