package img2ascii

import (
	"image"
	"io"
	"sync"

	"github.com/wbrown/img2ascii/imageutil"
)

// pixPool recycles the pixel buffers of released surfaces.
var pixPool sync.Pool

// Surface is a raster produced by RenderVisual. Its pixel buffer is
// borrowed from a pool; call Release when the surface is replaced so the
// buffer can be reused. A released surface must not be used again.
type Surface struct {
	img      *image.RGBA
	released bool
}

func acquireSurface(width, height int) *Surface {
	n := 4 * width * height
	var pix []uint8
	if buf, ok := pixPool.Get().(*[]uint8); ok && cap(*buf) >= n {
		pix = (*buf)[:n]
		clear(pix)
	} else {
		if ok {
			pixPool.Put(buf)
		}
		pix = make([]uint8, n)
	}
	return &Surface{img: &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}}
}

// Image returns the rendered image, or nil once the surface is released.
func (s *Surface) Image() *image.RGBA {
	if s == nil || s.released {
		return nil
	}
	return s.img
}

// Bounds returns the surface bounds. A released surface has empty bounds.
func (s *Surface) Bounds() image.Rectangle {
	if img := s.Image(); img != nil {
		return img.Rect
	}
	return image.Rectangle{}
}

// Released reports whether Release has been called.
func (s *Surface) Released() bool {
	return s == nil || s.released
}

// EncodePNG writes the surface to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	img := s.Image()
	if img == nil {
		return ErrSurfaceReleased
	}
	if img.Rect.Empty() {
		return ErrEmptySurface
	}
	return imageutil.EncodePNG(w, img)
}

// Release hands the pixel buffer back for reuse. Calling it again is a
// no-op.
func (s *Surface) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if cap(s.img.Pix) > 0 {
		pix := s.img.Pix[:0]
		pixPool.Put(&pix)
	}
	s.img = nil
}
