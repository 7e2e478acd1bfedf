package vecdev

// Canvas is the set of drawing operations a vector device supports.
// Operations a stateful vector backend cannot express (free text layout,
// text on a path, vertex meshes) are not part of it, so callers find out at
// compile time instead of through a silent no-op.
type Canvas interface {
	SetTransformAndClip(m Matrix, clip Region)
	DrawPaint(p *Paint)
	DrawPath(path *Path, p *Paint)
	DrawRect(r Rect, p *Paint)
	DrawPoints(mode PointMode, pts []Point, p *Paint)
	DrawGlyphRun(run GlyphRun, p *Paint) error
	DrawSprite(bm *Bitmap, x, y int, p *Paint)
	DrawBitmap(bm *Bitmap, m Matrix, p *Paint)
	DrawDevice(src BitmapDevice, x, y int, p *Paint)
}

// BitmapDevice is anything that can hand out a backing raster.
type BitmapDevice interface {
	AccessBitmap() *Bitmap
}

var (
	_ Canvas       = (*Device)(nil)
	_ BitmapDevice = (*Device)(nil)
)
