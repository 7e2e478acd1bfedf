package vecdev

import (
	"image"

	"golang.org/x/image/draw"
)

// bytesPerPixel is the size of one ARGB32 pixel.
const bytesPerPixel = 4

// Bitmap is a premultiplied ARGB32 pixel buffer. Pixels are 32-bit words in
// little-endian byte order (B, G, R, A), which is the layout backends expect
// for image surfaces.
//
// Pixels must be locked while a backend reads them; Lock and Unlock nest.
type Bitmap struct {
	width  int
	height int
	stride int
	pix    []byte
	locks  int
}

// NewBitmap allocates a transparent bitmap. Negative sizes are treated as
// zero.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	stride := width * bytesPerPixel
	return &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, stride*height),
	}
}

// BitmapFromImage copies img into a new bitmap of the same size.
func BitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return bitmapFromRGBA(rgba)
}

// BitmapFromImageScaled resamples img to width x height with Catmull-Rom
// filtering.
func BitmapFromImageScaled(img image.Image, width, height int) *Bitmap {
	if width <= 0 || height <= 0 {
		return NewBitmap(0, 0)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, img.Bounds(), draw.Src, nil)
	return bitmapFromRGBA(rgba)
}

// bitmapFromRGBA swizzles premultiplied RGBA into ARGB32.
func bitmapFromRGBA(rgba *image.RGBA) *Bitmap {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	bm := NewBitmap(w, h)
	for y := range h {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*bytesPerPixel]
		dst := bm.pix[y*bm.stride : y*bm.stride+w*bytesPerPixel]
		for x := 0; x < len(src); x += bytesPerPixel {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = src[x+3]
		}
	}
	return bm
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int { return b.stride }

// IsEmpty reports whether the bitmap has no pixels.
func (b *Bitmap) IsEmpty() bool { return b.width == 0 || b.height == 0 }

// Lock pins the pixels and returns them.
func (b *Bitmap) Lock() []byte {
	b.locks++
	return b.pix
}

// Unlock releases one Lock.
func (b *Bitmap) Unlock() {
	if b.locks == 0 {
		contractViolation("bitmap unlocked more often than locked")
		return
	}
	b.locks--
}

// Locked reports whether at least one Lock is outstanding.
func (b *Bitmap) Locked() bool { return b.locks > 0 }

// SetPixel stores c, premultiplied, at (x, y). Out of range coordinates are
// ignored.
func (b *Bitmap) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	a := uint32(c.A())
	i := y*b.stride + x*bytesPerPixel
	b.pix[i+0] = uint8(uint32(c.B()) * a / 255)
	b.pix[i+1] = uint8(uint32(c.G()) * a / 255)
	b.pix[i+2] = uint8(uint32(c.R()) * a / 255)
	b.pix[i+3] = uint8(a)
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c Color) {
	for y := range b.height {
		for x := range b.width {
			b.SetPixel(x, y, c)
		}
	}
}
