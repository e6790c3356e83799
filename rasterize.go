package img2ascii

import (
	"image"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// MinContrast is the smallest contrast Tone.Clamp lets through.
const MinContrast = 0.01

// Tone holds the contrast and brightness adjustment applied to the
// resampled image before characters are chosen. Contrast scales around
// mid-gray and 1 leaves the image alone; Brightness is an offset to a
// multiplier of 1, so 0 leaves the image alone.
type Tone struct {
	Contrast   float64
	Brightness float64
}

// DefaultTone returns the neutral tone.
func DefaultTone() Tone {
	return Tone{Contrast: 1, Brightness: 0}
}

// Clamp returns t with Contrast forced positive and the brightness
// multiplier kept non-negative.
func (t Tone) Clamp() Tone {
	if !(t.Contrast > 0) {
		t.Contrast = MinContrast
	}
	if t.Brightness < -1 || math.IsNaN(t.Brightness) {
		t.Brightness = -1
	}
	return t
}

type rasterConfig struct {
	interp imageutil.Interpolation
}

// RasterOption configures Rasterize.
type RasterOption func(*rasterConfig)

// WithInterpolation sets the resampling method used to reduce the image
// to the character grid. The default is nearest neighbour.
func WithInterpolation(interp imageutil.Interpolation) RasterOption {
	return func(c *rasterConfig) {
		c.interp = interp
	}
}

// GridSize returns the grid dimensions Rasterize produces for an image of
// imgWidth x imgHeight pixels at the requested width. The width is clamped
// to [1, imgWidth]; the height is halved because character cells are
// about twice as tall as they are wide.
func GridSize(imgWidth, imgHeight, width int) (cols, rows int) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return 0, 0
	}
	cols = min(max(width, 1), imgWidth)
	ratio := float64(imgHeight) / float64(imgWidth)
	rows = int(math.Floor(float64(cols) * ratio / 2))
	return cols, rows
}

// Rasterize converts img into a character grid width characters wide
// (never wider than the image). Each cell is resampled, tone adjusted,
// reduced to the unweighted mean of its channels, optionally inverted and
// mapped onto palette. A nil or zero sized image gives an empty grid.
func Rasterize(
	img image.Image,
	width int,
	tone Tone,
	invert bool,
	palette Palette,
	opts ...RasterOption,
) *Grid {
	cfg := rasterConfig{interp: imageutil.InterpolationNearest}
	for _, opt := range opts {
		opt(&cfg)
	}

	if img == nil || palette.Len() == 0 {
		return newGrid(palette, 0, 0)
	}
	bounds := img.Bounds()
	cols, rows := GridSize(bounds.Dx(), bounds.Dy(), width)
	grid := newGrid(palette, cols, rows)
	if rows == 0 {
		return grid
	}

	tone = tone.Clamp()
	src := imageutil.RGBAImageFromImage(img)
	resized := imageutil.Resize(src, cols, rows, cfg.interp)
	adjusted := imageutil.AdjustTone(resized, tone.Contrast, tone.Brightness)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sample := adjusted.GetRGB(x, y)
			luminance := sample.Average()
			if invert {
				luminance = 255 - luminance
			}
			grid.cells[y][x] = Cell{
				Char: palette.Char(luminance),
				RGB:  sample,
			}
		}
	}
	return grid
}
