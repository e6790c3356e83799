package img2ascii

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wbrown/img2ascii/imageutil"
)

// ColorMode selects how a cell is painted by the visual and ANSI
// renderers. It never changes which character occupies the cell.
type ColorMode int

const (
	// ColorGrayscale paints (v, v, v).
	ColorGrayscale ColorMode = iota
	// ColorOriginal paints a warm ramp (v, 0.78v, 0.59v). Despite the name
	// it does not use the sampled color; see ColorTrue for that.
	ColorOriginal
	// ColorSepia paints (v, 0.86v, 0.71v).
	ColorSepia
	// ColorNeon cycles the hue along the grid diagonals at fixed
	// saturation, using the brightness as HSB value.
	ColorNeon
	// ColorTrue paints each cell with its sampled source color.
	ColorTrue
)

var colorModeNames = []string{
	ColorGrayscale: "grayscale",
	ColorOriginal:  "original",
	ColorSepia:     "sepia",
	ColorNeon:      "neon",
	ColorTrue:      "truecolor",
}

// neonSaturation is 200 on a 0-255 scale.
const neonSaturation = 200.0 / 255.0

func (m ColorMode) String() string {
	if m >= 0 && int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode maps a name such as "sepia" to a ColorMode.
func ParseColorMode(name string) (ColorMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorModeNames {
		if n == name {
			return ColorMode(i), nil
		}
	}
	return ColorGrayscale, fmt.Errorf("%w %q", ErrUnknownColorMode, name)
}

// ColorModeNames returns the names accepted by ParseColorMode.
func ColorModeNames() []string {
	return append([]string(nil), colorModeNames...)
}

// FillColor returns the paint for the cell at column x, row y whose
// brightness fraction is v (in [0, 1], already inverted if requested).
// sample is only consulted by ColorTrue. Unknown modes paint white.
func FillColor(mode ColorMode, v float64, x, y int, sample imageutil.RGB) color.RGBA {
	v = math.Max(0, math.Min(1, v))
	switch mode {
	case ColorGrayscale:
		g := channel(v * 255)
		return color.RGBA{R: g, G: g, B: g, A: 255}
	case ColorOriginal:
		return color.RGBA{R: channel(v * 255), G: channel(v * 200), B: channel(v * 150), A: 255}
	case ColorSepia:
		return color.RGBA{R: channel(v * 255), G: channel(v * 220), B: channel(v * 180), A: 255}
	case ColorNeon:
		hue := float64((x+y)%255) / 255 * 360
		r, g, b := colorful.Hsv(hue, neonSaturation, v).Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	case ColorTrue:
		return sample.ToColor()
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// RenderSettings are the presentation parameters of the visual and ANSI
// renderers.
type RenderSettings struct {
	FontSize  int
	ColorMode ColorMode
	Inverted  bool
}

// Clamp returns s with FontSize at least 1.
func (s RenderSettings) Clamp() RenderSettings {
	if s.FontSize < 1 {
		s.FontSize = 1
	}
	return s
}

// cellColor computes the paint for a cell of g.
func cellColor(g *Grid, s RenderSettings, x, y int) color.RGBA {
	cell := g.At(x, y)
	v := g.Palette().Fraction(cell.Char)
	if s.Inverted {
		v = 1 - v
	}
	return FillColor(s.ColorMode, v, x, y, cell.RGB)
}
