package main

import (
	"math"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/typeface"
)

// drawDemo draws the built-in demo page.
func drawDemo(dev *vecdev.Device, fonts *typeface.Registry) error {
	drawBackground(dev)
	drawShapesDemo(dev)
	drawTransformDemo(dev)
	drawPathDemo(dev)
	return drawTextDemo(dev, fonts)
}

func drawBackground(dev *vecdev.Device) {
	p := vecdev.NewPaint()
	p.Color = vecdev.ARGB(255, 26, 51, 102)
	dev.DrawPaint(p)
}

func drawShapesDemo(dev *vecdev.Device) {
	p := vecdev.NewPaint()

	// Circles
	for _, c := range []struct {
		x, y  float64
		color vecdev.Color
	}{
		{150, 150, vecdev.ARGB(204, 255, 77, 77)},
		{200, 150, vecdev.ARGB(204, 77, 255, 77)},
		{175, 200, vecdev.ARGB(204, 77, 77, 255)},
	} {
		path := vecdev.NewPath()
		path.AddCircle(c.x, c.y, 60)
		p.Color = c.color
		dev.DrawPath(path, p)
	}

	// Filled and stroked rectangle
	p.Color = vecdev.ARGB(255, 255, 204, 0)
	p.Style = vecdev.StyleFillAndStroke
	p.StrokeWidth = 4
	dev.DrawRect(vecdev.RectXYWH(350, 100, 120, 80), p)

	// Dotted outline
	dotted := vecdev.NewPaint()
	dotted.Color = vecdev.White
	dotted.Style = vecdev.StyleStroke
	dotted.StrokeWidth = 2
	dotted.StrokeCap = vecdev.LineCapRound
	dotted.PathEffect = vecdev.NewDashEffect(0, 0.1, 6)
	dev.DrawRect(vecdev.RectXYWH(340, 90, 140, 100), dotted)
}

func drawTransformDemo(dev *vecdev.Device) {
	// Rotated squares
	centerX := 600.0
	centerY := 150.0
	saved := dev.Transform()
	clip := vecdev.NewRegion(vecdev.IRectLTRB(0, 0, dev.Width(), dev.Height()))

	p := vecdev.NewPaint()
	for i := range 8 {
		angle := float64(i) * math.Pi / 4
		m := vecdev.Translate(centerX, centerY).Concat(vecdev.Rotate(angle))
		dev.SetTransformAndClip(m, clip)

		p.Color = vecdev.ARGB(255, uint8(64+i*24), uint8(200-i*16), 180)
		dev.DrawRect(vecdev.RectXYWH(-30, -30, 60, 60), p)
	}
	dev.SetTransformAndClip(saved, clip)
}

func drawPathDemo(dev *vecdev.Device) {
	// Complex path with curves
	path := vecdev.NewPath()
	path.MoveTo(150, 400)
	path.CubicTo(200, 350, 250, 450, 300, 400)
	path.QuadTo(375, 350, 450, 400)

	p := vecdev.NewPaint()
	p.Color = vecdev.ARGB(255, 255, 128, 0)
	p.Style = vecdev.StyleStroke
	p.StrokeWidth = 6
	p.StrokeJoin = vecdev.LineJoinRound
	dev.DrawPath(path, p)

	// Polygon star
	points := 5
	outerR := 60.0
	innerR := 30.0
	star := vecdev.NewPath()
	for i := range points * 2 {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := 600 + r*math.Cos(angle-math.Pi/2)
		y := 400 + r*math.Sin(angle-math.Pi/2)
		if i == 0 {
			star.MoveTo(x, y)
		} else {
			star.LineTo(x, y)
		}
	}
	star.Close()
	p.Color = vecdev.ARGB(255, 255, 255, 0)
	p.Style = vecdev.StyleFill
	dev.DrawPath(star, p)

	// Polyline through sample points
	pts := make([]vecdev.Point, 0, 32)
	for i := range 32 {
		x := 150 + float64(i)*10
		pts = append(pts, vecdev.Pt(x, 500+20*math.Sin(float64(i)/3)))
	}
	p.Color = vecdev.White
	p.StrokeWidth = 2
	dev.DrawPoints(vecdev.PointModePolygon, pts, p)
}

func drawTextDemo(dev *vecdev.Device, fonts *typeface.Registry) error {
	id, err := fonts.RegisterBuiltin("goregular")
	if err != nil {
		return err
	}
	run, err := fonts.Shape(id, "vecdev demo", 28, 150, 570)
	if err != nil {
		return err
	}
	p := vecdev.NewPaint()
	p.Color = vecdev.White
	p.Typeface = id
	p.TextSize = 28
	return dev.DrawGlyphRun(run, p)
}
