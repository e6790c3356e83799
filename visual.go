package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

type visualConfig struct {
	face       *GlyphFace
	background color.Color
}

// VisualOption configures RenderVisual.
type VisualOption func(*visualConfig)

// WithFace sets the font glyphs are drawn with. The default is Go Mono.
func WithFace(face *GlyphFace) VisualOption {
	return func(c *visualConfig) {
		c.face = face
	}
}

// WithBackground sets the color behind the glyphs. The default is black.
func WithBackground(bg color.Color) VisualOption {
	return func(c *visualConfig) {
		c.background = bg
	}
}

// SurfaceSize returns the pixel size of the surface RenderVisual draws g
// on: each cell is fontSize tall and CharAspect*fontSize wide.
func SurfaceSize(g *Grid, fontSize int) (width, height int) {
	width = int(math.Floor(float64(g.Cols()) * float64(fontSize) * CharAspect))
	height = g.Rows() * fontSize
	return width, height
}

// RenderVisual draws every cell of g as a colored glyph. The glyph for
// column x, row y has its top left corner at (x*fontSize*CharAspect,
// y*fontSize) and is painted according to s.ColorMode. The grid is drawn
// once; the caller owns the returned surface and should Release it when
// it is replaced.
func RenderVisual(g *Grid, s RenderSettings, opts ...VisualOption) (*Surface, error) {
	s = s.Clamp()
	cfg := visualConfig{background: color.Black}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.face == nil {
		face, err := DefaultFace()
		if err != nil {
			return nil, err
		}
		cfg.face = face
	}

	width, height := SurfaceSize(g, s.FontSize)
	surf := acquireSurface(width, height)
	if g.Empty() || width == 0 || height == 0 {
		return surf, nil
	}

	img := surf.img
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)

	size := float64(s.FontSize)
	ctx := cfg.face.context(img, size)
	ascent := float64(cfg.face.ascent(size)) / 64

	fills := make(map[color.RGBA]*image.Uniform)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			ch := g.At(x, y).Char
			if ch == ' ' {
				continue
			}
			c := cellColor(g, s, x, y)
			fill, ok := fills[c]
			if !ok {
				fill = image.NewUniform(c)
				fills[c] = fill
			}
			ctx.SetSrc(fill)

			pt := fixedPoint(float64(x)*size*CharAspect, float64(y)*size+ascent)
			if _, err := ctx.DrawString(string(ch), pt); err != nil {
				surf.Release()
				return nil, fmt.Errorf("failed to draw %q at (%d,%d): %w", ch, x, y, err)
			}
		}
	}
	return surf, nil
}
