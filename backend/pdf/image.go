package pdf

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/png"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/vecdev/backend"
)

// imageSurface holds a private RGBA copy of the pixels it was created
// from. It is encoded and embedded the first time it is painted.
type imageSurface struct {
	owner         *Surface
	width, height int
	rgba          *image.RGBA
	name          string
	destroyed     bool
}

func (is *imageSurface) Width() int  { return is.width }
func (is *imageSurface) Height() int { return is.height }

func (is *imageSurface) Destroy() {
	if is.destroyed {
		is.owner.fail(fmt.Errorf("%w: destroyed twice", ErrBadSurface))
		return
	}
	is.destroyed = true
	is.rgba = nil
}

// CreateImageSurface implements backend.Context. pix holds premultiplied
// ARGB32 words in B, G, R, A byte order.
func (s *Surface) CreateImageSurface(pix []byte, width, height, stride int) backend.ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		src := pix[y*stride : y*stride+width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < len(src); x += 4 {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = src[x+3]
		}
	}
	return &imageSurface{owner: s, width: width, height: height, rgba: img}
}

// SetSourceSurface implements backend.Context.
func (s *Surface) SetSourceSurface(src backend.ImageSurface, x, y float64) {
	is, ok := src.(*imageSurface)
	if !ok || is.owner != s {
		s.fail(fmt.Errorf("%w: surface from another context", ErrBadSurface))
		return
	}
	if is.destroyed {
		s.fail(fmt.Errorf("%w: used after destroy", ErrBadSurface))
		return
	}
	s.source, s.srcX, s.srcY = is, x, y
}

// register embeds the image once and returns its name. Identical pixels
// share one embedded image.
func (is *imageSurface) register(pdf *fpdf.Fpdf) string {
	if is.name != "" {
		return is.name
	}
	h := fnv.New64a()
	h.Write(is.rgba.Pix)
	is.name = fmt.Sprintf("vecdev-%dx%d-%016x", is.width, is.height, h.Sum64())

	var buf bytes.Buffer
	if err := png.Encode(&buf, is.rgba); err != nil {
		pdf.SetError(fmt.Errorf("pdf: encode image: %w", err))
		return is.name
	}
	pdf.RegisterImageOptionsReader(is.name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	return is.name
}
