package vecdev

import "github.com/gogpu/vecdev/backend"

// GlyphID is a glyph index within a typeface.
type GlyphID uint16

// GlyphRun is a sequence of already shaped glyphs with their positions.
//
// Positions holds ScalarsPerPos values per glyph: with 1 every glyph sits
// at (Positions[i], ConstY) on a shared baseline; with 2 glyph i sits at
// (Positions[2i], Positions[2i+1]).
type GlyphRun struct {
	Glyphs        []GlyphID
	Positions     []float64
	ConstY        float64
	ScalarsPerPos int
}

// HorizontalRun builds a run with x-only positions on baseline y.
func HorizontalRun(glyphs []GlyphID, xs []float64, y float64) GlyphRun {
	return GlyphRun{Glyphs: glyphs, Positions: xs, ConstY: y, ScalarsPerPos: 1}
}

// PositionedRun builds a run with explicit (x, y) per glyph.
func PositionedRun(glyphs []GlyphID, pts []Point) GlyphRun {
	pos := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		pos = append(pos, p.X, p.Y)
	}
	return GlyphRun{Glyphs: glyphs, Positions: pos, ScalarsPerPos: 2}
}

// Origin returns the placed position of glyph i.
func (r GlyphRun) Origin(i int) Point {
	if r.ScalarsPerPos == 1 {
		return Pt(r.Positions[i], r.ConstY)
	}
	return Pt(r.Positions[2*i], r.Positions[2*i+1])
}

// GlyphOutliner resolves a glyph to its outline, scaled to size and placed
// with its origin at (x, y) in device space.
type GlyphOutliner interface {
	GlyphPath(tf TypefaceID, gid GlyphID, size, x, y float64) (*Path, error)
}

// FontSelector makes a typeface the current font of a backend context.
type FontSelector interface {
	SelectFontByID(ctx backend.Context, tf TypefaceID) error
}

// FontService is the font and shaping collaborator a Device draws text
// through.
type FontService interface {
	GlyphOutliner
	FontSelector
}
