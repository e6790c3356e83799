package img2ascii

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// CharAspect is the width of a monospace character cell relative to its
// height.
const CharAspect = 0.6

// coverageSize is the pixel size glyphs are rasterised at when measuring
// their ink coverage.
const coverageSize = 32

// GlyphFace is a TrueType font used to draw grid characters.
type GlyphFace struct {
	font *truetype.Font
	name string
}

var (
	defaultFaceOnce sync.Once
	defaultFace     *GlyphFace
	defaultFaceErr  error
)

// DefaultFace returns the embedded Go Mono face.
func DefaultFace() (*GlyphFace, error) {
	defaultFaceOnce.Do(func() {
		defaultFace, defaultFaceErr = ParseFace("Go Mono", gomono.TTF)
	})
	return defaultFace, defaultFaceErr
}

// LoadFace loads a TrueType font from file.
func LoadFace(path string) (*GlyphFace, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return ParseFace(path, fontBytes)
}

// ParseFace parses TrueType font data.
func ParseFace(name string, data []byte) (*GlyphFace, error) {
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &GlyphFace{font: f, name: name}, nil
}

// Name returns the name or path the face was loaded from.
func (f *GlyphFace) Name() string { return f.name }

// ascent returns the distance from the top of a line to its baseline at
// the given pixel size.
func (f *GlyphFace) ascent(size float64) fixed.Int26_6 {
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return face.Metrics().Ascent
}

// context returns a freetype context drawing into dst at the given pixel
// size. At 72 DPI points and pixels coincide.
func (f *GlyphFace) context(dst draw.Image, size float64) *freetype.Context {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f.font)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)
	return ctx
}

// Coverage returns the fraction of a character cell covered by the glyph
// for r, in [0, 1]. A space covers nothing.
func (f *GlyphFace) Coverage(r rune) float64 {
	w := int(math.Ceil(coverageSize * CharAspect))
	img := image.NewAlpha(image.Rect(0, 0, w, coverageSize))
	ctx := f.context(img, coverageSize)

	pt := fixed.Point26_6{Y: f.ascent(coverageSize)}
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return 0
	}

	var sum int
	for _, a := range img.Pix {
		sum += int(a)
	}
	return float64(sum) / float64(255*len(img.Pix))
}

// fixedPoint converts pixel coordinates to 26.6 fixed point.
func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}
