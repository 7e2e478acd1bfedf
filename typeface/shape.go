package typeface

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/vecdev"
)

// Shape shapes text left to right with the typeface id at size and returns
// the glyph run with the pen starting at (x, y) on the baseline. Kerning
// and ligatures are applied, so the run can hold fewer glyphs than text has
// characters.
func (r *Registry) Shape(id vecdev.TypefaceID, text string, size, x, y float64) (vecdev.GlyphRun, error) {
	t, err := r.get(id)
	if err != nil {
		return vecdev.GlyphRun{}, err
	}
	if text == "" {
		return vecdev.HorizontalRun(nil, nil, y), nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(t.text),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := r.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	r.shaperPool.Put(hb)

	glyphs := make([]vecdev.GlyphID, len(out.Glyphs))
	pts := make([]vecdev.Point, len(out.Glyphs))
	flat := true
	pen := x
	for i, g := range out.Glyphs {
		glyphs[i] = vecdev.GlyphID(g.GlyphID)
		pts[i] = vecdev.Pt(pen+fromFixed(g.XOffset), y-fromFixed(g.YOffset))
		if g.YOffset != 0 {
			flat = false
		}
		pen += fromFixed(g.Advance)
	}

	if flat {
		xs := make([]float64, len(pts))
		for i, p := range pts {
			xs[i] = p.X
		}
		return vecdev.HorizontalRun(glyphs, xs, y), nil
	}
	return vecdev.PositionedRun(glyphs, pts), nil
}

// detectScript returns the script of the first non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
