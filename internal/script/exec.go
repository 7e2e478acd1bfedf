package script

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/typeface"
)

// player carries the state of one Execute call.
type player struct {
	s        *Script
	dev      vecdev.Canvas
	reg      *typeface.Registry
	fonts    map[string]vecdev.TypefaceID
	paint    *vecdev.Paint
	fillType vecdev.FillType
}

// Execute registers the script's fonts with reg and plays every operation
// onto dev. It stops at the first failing operation.
func (s *Script) Execute(dev vecdev.Canvas, reg *typeface.Registry) error {
	pl := &player{
		s:     s,
		dev:   dev,
		reg:   reg,
		fonts: make(map[string]vecdev.TypefaceID, len(s.Fonts)),
		paint: vecdev.NewPaint(),
	}
	if err := pl.loadFonts(); err != nil {
		return err
	}
	for i := range s.Ops {
		if err := pl.run(&s.Ops[i]); err != nil {
			return fmt.Errorf("script: op %d: %w", i, err)
		}
	}
	return nil
}

func (pl *player) loadFonts() error {
	for _, f := range pl.s.Fonts {
		var (
			id  vecdev.TypefaceID
			err error
		)
		if f.Builtin != "" {
			id, err = pl.reg.RegisterBuiltin(f.Builtin)
		} else {
			var data []byte
			data, err = os.ReadFile(pl.s.resolve(f.File))
			if err == nil {
				id, err = pl.reg.Register(f.Name, data)
			}
		}
		if err != nil {
			return fmt.Errorf("script: font %q: %w", f.Name, err)
		}
		pl.fonts[f.Name] = id
	}
	return nil
}

func (pl *player) run(op *Op) error {
	if op.Paint != nil {
		if err := pl.applyPaint(op.Paint); err != nil {
			return err
		}
	}

	switch {
	case op.Transform != nil || op.Clip != nil:
		m := vecdev.Identity()
		if op.Transform != nil {
			m, _ = vecdev.Affine(op.Transform)
		}
		var region vecdev.Region
		for _, r := range op.Clip {
			region.AddRect(vecdev.IRectLTRB(r[0], r[1], r[2], r[3]))
		}
		pl.dev.SetTransformAndClip(m, region)
	case op.Rect != nil:
		r := op.Rect
		pl.dev.DrawRect(vecdev.RectXYWH(r[0], r[1], r[2], r[3]), pl.paint)
	case op.Path != "":
		path, err := ParsePath(op.Path)
		if err != nil {
			return err
		}
		path.SetFillType(pl.fillType)
		pl.dev.DrawPath(path, pl.paint)
	case op.Points != nil:
		return pl.points(op.Points)
	case op.Text != nil:
		return pl.text(op.Text)
	case op.Image != nil:
		return pl.image(op.Image)
	case op.Flood:
		pl.dev.DrawPaint(pl.paint)
	}
	return nil
}

func (pl *player) applyPaint(ps *PaintSpec) error {
	p := pl.paint.Clone()
	if ps.Color != "" {
		c, err := vecdev.ParseHex(ps.Color)
		if err != nil {
			return err
		}
		p.Color = c
	}
	if ps.Style != "" {
		st, err := parseStyle(ps.Style)
		if err != nil {
			return err
		}
		p.Style = st
	}
	if ps.Width != nil {
		p.StrokeWidth = *ps.Width
	}
	if ps.Join != "" {
		j, err := parseJoin(ps.Join)
		if err != nil {
			return err
		}
		p.StrokeJoin = j
	}
	if ps.Cap != "" {
		c, err := parseCap(ps.Cap)
		if err != nil {
			return err
		}
		p.StrokeCap = c
	}
	if ps.Miter != nil {
		p.MiterLimit = *ps.Miter
	}
	if ps.Dash != nil {
		// A dash without a usable interval clears the effect.
		if d := vecdev.NewDashEffect(ps.DashPhase, ps.Dash...); d != nil {
			p.PathEffect = d
		} else {
			p.PathEffect = nil
		}
	}
	if ps.FillRule != "" {
		ft, err := parseFillRule(ps.FillRule)
		if err != nil {
			return err
		}
		pl.fillType = ft
	}
	pl.paint = p
	return nil
}

func (pl *player) points(ps *PointsSpec) error {
	var mode vecdev.PointMode
	switch strings.ToLower(ps.Mode) {
	case "", "points":
		mode = vecdev.PointModePoints
	case "lines":
		mode = vecdev.PointModeLines
	case "polygon":
		mode = vecdev.PointModePolygon
	default:
		return fmt.Errorf("%w: point mode %q", ErrInvalid, ps.Mode)
	}
	pts := make([]vecdev.Point, len(ps.Pts))
	for i, p := range ps.Pts {
		pts[i] = vecdev.Pt(p[0], p[1])
	}
	pl.dev.DrawPoints(mode, pts, pl.paint)
	return nil
}

func (pl *player) text(ts *TextSpec) error {
	id := pl.fonts[ts.Font]
	size := ts.Size
	if size == 0 {
		size = pl.paint.TextSize
	}
	run, err := pl.reg.Shape(id, ts.String, size, ts.X, ts.Y)
	if err != nil {
		return err
	}
	p := pl.paint.Clone()
	p.Typeface = id
	p.TextSize = size
	return pl.dev.DrawGlyphRun(run, p)
}

func (pl *player) image(is *ImageSpec) error {
	f, err := os.Open(pl.s.resolve(is.File))
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", is.File, err)
	}
	var bm *vecdev.Bitmap
	if is.Width > 0 && is.Height > 0 {
		bm = vecdev.BitmapFromImageScaled(img, is.Width, is.Height)
	} else {
		bm = vecdev.BitmapFromImage(img)
	}

	switch {
	case is.Sprite:
		pl.dev.DrawSprite(bm, int(is.X), int(is.Y), pl.paint)
	case is.Matrix != nil:
		m, _ := vecdev.Affine(is.Matrix)
		pl.dev.DrawBitmap(bm, m, pl.paint)
	default:
		pl.dev.DrawBitmap(bm, vecdev.Translate(is.X, is.Y), pl.paint)
	}
	return nil
}

func parseStyle(s string) (vecdev.Style, error) {
	switch strings.ToLower(s) {
	case "fill":
		return vecdev.StyleFill, nil
	case "stroke":
		return vecdev.StyleStroke, nil
	case "fill-and-stroke", "both":
		return vecdev.StyleFillAndStroke, nil
	}
	return 0, fmt.Errorf("%w: style %q", ErrInvalid, s)
}

func parseJoin(s string) (vecdev.LineJoin, error) {
	switch strings.ToLower(s) {
	case "miter":
		return vecdev.LineJoinMiter, nil
	case "round":
		return vecdev.LineJoinRound, nil
	case "bevel":
		return vecdev.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("%w: join %q", ErrInvalid, s)
}

func parseCap(s string) (vecdev.LineCap, error) {
	switch strings.ToLower(s) {
	case "butt":
		return vecdev.LineCapButt, nil
	case "round":
		return vecdev.LineCapRound, nil
	case "square":
		return vecdev.LineCapSquare, nil
	}
	return 0, fmt.Errorf("%w: cap %q", ErrInvalid, s)
}

func parseFillRule(s string) (vecdev.FillType, error) {
	switch strings.ToLower(s) {
	case "winding", "nonzero":
		return vecdev.FillWinding, nil
	case "evenodd", "even-odd":
		return vecdev.FillEvenOdd, nil
	}
	return 0, fmt.Errorf("%w: fill rule %q", ErrInvalid, s)
}
