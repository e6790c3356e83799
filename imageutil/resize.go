package imageutil

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest samples each output pixel once from the
	// source. This is the point sampling a browser canvas performs when
	// drawing a reduced image and then reading it back.
	InterpolationNearest Interpolation = iota

	// InterpolationBox averages every source pixel that falls inside an
	// output pixel.
	InterpolationBox

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationCatmullRom uses the Catmull-Rom cubic kernel.
	InterpolationCatmullRom
)

var interpolationNames = map[Interpolation]string{
	InterpolationNearest:    "nearest",
	InterpolationBox:        "box",
	InterpolationLinear:     "linear",
	InterpolationCatmullRom: "catmullrom",
}

func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation maps a name such as "nearest" or "box" to an
// Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for interp, n := range interpolationNames {
		if n == name {
			return interp, nil
		}
	}
	return InterpolationNearest, fmt.Errorf("unknown interpolation %q", name)
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. A zero width or height yields an empty
// image.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if width <= 0 || height <= 0 || img.Empty() {
		return NewRGBAImage(max(width, 0), max(height, 0))
	}

	if interp == InterpolationBox {
		g := gift.New(gift.Resize(width, height, gift.BoxResampling))
		dst := NewRGBAImage(width, height)
		g.Draw(dst.RGBA, img.RGBA)
		return dst
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationCatmullRom:
		scaler = draw.CatmullRom
	default:
		scaler = draw.NearestNeighbor
	}

	dst := NewRGBAImage(width, height)
	scaler.Scale(dst.RGBA, image.Rect(0, 0, width, height), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}
