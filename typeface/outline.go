package typeface

import (
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/internal/cache"
)

// outlineCacheSize bounds the number of scaled outlines kept per registry.
const outlineCacheSize = 1024

// outlineKey identifies a scaled glyph outline at the origin.
type outlineKey struct {
	id   vecdev.TypefaceID
	gid  vecdev.GlyphID
	size float64
}

// GlyphPath implements vecdev.GlyphOutliner. The outline is scaled to size
// and placed with the glyph origin at (x, y). Every contour is closed.
// Glyphs without ink, such as spaces, give an empty path.
func (r *Registry) GlyphPath(id vecdev.TypefaceID, gid vecdev.GlyphID, size, x, y float64) (*vecdev.Path, error) {
	key := outlineKey{id: id, gid: gid, size: size}
	origin, ok := r.outlines.Get(key)
	if !ok {
		t, err := r.get(id)
		if err != nil {
			return nil, err
		}
		if origin, err = loadOutline(t, gid, size); err != nil {
			return nil, err
		}
		r.outlines.Add(key, origin)
	}
	if x == 0 && y == 0 {
		return origin.Clone(), nil
	}
	return origin.Transform(vecdev.Translate(x, y)), nil
}

// OutlineStats reports the outline cache counters.
func (r *Registry) OutlineStats() cache.Stats { return r.outlines.Stats() }

// loadOutline converts the glyph's sfnt segments into a path at the origin.
func loadOutline(t *typeface, gid vecdev.GlyphID, size float64) (*vecdev.Path, error) {
	var buf sfnt.Buffer
	segments, err := t.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(gid), toFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: glyph %d of %q: %w", ErrNoOutline, gid, t.family, err)
	}

	path := vecdev.NewPath()
	open := false
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			path.MoveTo(fromFixed(a[0].X), fromFixed(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			path.LineTo(fromFixed(a[0].X), fromFixed(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			path.QuadTo(
				fromFixed(a[0].X), fromFixed(a[0].Y),
				fromFixed(a[1].X), fromFixed(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			path.CubicTo(
				fromFixed(a[0].X), fromFixed(a[0].Y),
				fromFixed(a[1].X), fromFixed(a[1].Y),
				fromFixed(a[2].X), fromFixed(a[2].Y))
		}
	}
	if open {
		path.Close()
	}
	return path, nil
}

// toFixed converts a float64 size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fromFixed converts a 26.6 fixed-point value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
