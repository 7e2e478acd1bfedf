package vecdev

import (
	"fmt"

	"github.com/gogpu/vecdev/backend"
)

// DrawGlyphRun draws a run of shaped glyphs.
//
// Stroked paints draw each glyph's outline as a path. Filled paints select
// the run's typeface on the backend and show the glyphs as text, one glyph
// per call. If the typeface cannot be selected, nothing is drawn and the
// error wraps ErrFontSelection.
func (d *Device) DrawGlyphRun(run GlyphRun, p *Paint) error {
	if run.ScalarsPerPos != 1 && run.ScalarsPerPos != 2 {
		d.contractViolation("glyph run with %d scalars per position", run.ScalarsPerPos)
		return nil
	}
	if len(run.Positions) < len(run.Glyphs)*run.ScalarsPerPos {
		d.contractViolation("glyph run has %d positions for %d glyphs", len(run.Positions), len(run.Glyphs))
		return nil
	}
	if len(run.Glyphs) == 0 {
		return nil
	}
	if d.fonts == nil {
		return ErrNoFontService
	}

	if p.Style.HasStroke() {
		return d.strokeGlyphs(run, p)
	}
	return d.showGlyphs(run, p)
}

// strokeGlyphs resolves every outline before drawing, so a missing glyph
// leaves the page untouched.
func (d *Device) strokeGlyphs(run GlyphRun, p *Paint) error {
	paths := make([]*Path, len(run.Glyphs))
	for i, gid := range run.Glyphs {
		o := run.Origin(i)
		path, err := d.fonts.GlyphPath(p.Typeface, gid, p.TextSize, o.X, o.Y)
		if err != nil {
			return fmt.Errorf("vecdev: outline of glyph %d: %w", gid, err)
		}
		paths[i] = path
	}
	for _, path := range paths {
		d.DrawPath(path, p)
	}
	return nil
}

func (d *Device) showGlyphs(run GlyphRun, p *Paint) error {
	if err := d.fonts.SelectFontByID(d.ctx, p.Typeface); err != nil {
		d.log.Warn("vecdev: typeface selection failed", "typeface", p.Typeface, "err", err)
		return fmt.Errorf("%w: typeface %d: %w", ErrFontSelection, p.Typeface, err)
	}

	d.applyPaintColor(p)
	d.ctx.SetFontSize(p.TextSize)

	glyph := make([]backend.Glyph, 1)
	for i, gid := range run.Glyphs {
		o := run.Origin(i)
		glyph[0] = backend.Glyph{Index: uint32(gid), X: o.X, Y: o.Y}
		d.ctx.ShowGlyphs(glyph)
	}
	return nil
}
