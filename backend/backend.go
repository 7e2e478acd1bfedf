// Package backend defines the stateful vector output vocabulary that a
// vecdev.Device renders onto.
//
// The vocabulary is deliberately small and Cairo-shaped: a current path built
// with MoveTo/LineTo/CurveTo/ClosePath/Rectangle, consumed by Fill, Stroke or
// FillPreserve; a current source (solid color or image surface); line style;
// a current transformation matrix; and a clip that only ever narrows until
// ResetClip. There is no quadratic curve, no point primitive and no notion
// of a path effect: the device resolves all of those before calling in.
//
// # Implementations
//
// Two implementations ship with the module and register themselves with the
// registry in init(), following the database/sql driver pattern:
//
//	import (
//	    "github.com/gogpu/vecdev/backend"
//	    _ "github.com/gogpu/vecdev/backend/pdf"    // registers "pdf"
//	    _ "github.com/gogpu/vecdev/backend/record" // registers "record"
//	)
//
//	s, err := backend.New("pdf", 595, 842)
//
// # Ownership
//
// A Context is reference counted. Whoever holds a Context calls Reference
// when it starts sharing it and Release when it is done. Implementations
// finalize their output when the count drops to zero.
//
// # Thread Safety
//
// A Context carries implicit global state (matrix, clip, current path) and
// is NOT safe for concurrent use.
package backend

import "io"

// Context is the stateful drawing backend.
type Context interface {
	// Reference increments the reference count.
	Reference()
	// Release decrements the reference count.
	Release()
	// Status reports the sticky error state of the context, if any.
	Status() error

	// SetMatrix replaces the current transformation matrix.
	SetMatrix(m Matrix)
	// ResetClip removes any clip.
	ResetClip()
	// Clip intersects the clip with the current path and clears the path.
	Clip()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	// Rectangle adds a closed rectangular subpath.
	Rectangle(x, y, width, height float64)

	// Fill fills the current path and clears it.
	Fill()
	// FillPreserve fills the current path and keeps it for a following Stroke.
	FillPreserve()
	// Stroke strokes the current path and clears it.
	Stroke()

	SetSourceRGBA(r, g, b, a float64)
	SetFillRule(rule FillRule)
	SetLineWidth(width float64)
	SetLineJoin(join LineJoin)
	SetLineCap(lineCap LineCap)
	// SetMiterLimit sets the ratio of miter length to line width above
	// which miter joins are beveled. New contexts start at DefaultMiterLimit.
	SetMiterLimit(limit float64)

	// CreateImageSurface wraps premultiplied ARGB32 pixels. The pixels are
	// only guaranteed to stay valid until the surface is destroyed.
	CreateImageSurface(pix []byte, width, height, stride int) ImageSurface
	// SetSourceSurface makes s the current source, with its origin at (x, y).
	SetSourceSurface(s ImageSurface, x, y float64)
	// PaintWithAlpha paints the current source everywhere inside the clip.
	PaintWithAlpha(alpha float64)

	SetFontFace(face *FontFace)
	SetFontSize(size float64)
	ShowGlyphs(glyphs []Glyph)
}

// ImageSurface is a temporary image binding created by a Context.
type ImageSurface interface {
	Width() int
	Height() int
	// Destroy releases the binding. The surface must not be used afterwards.
	Destroy()
}

// Surface is a Context whose output can be written out.
// WriteTo finalizes the output; drawing after WriteTo is undefined.
type Surface interface {
	Context
	io.WriterTo
}
