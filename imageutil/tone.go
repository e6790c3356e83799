package imageutil

import (
	"github.com/disintegration/gift"
)

// AdjustTone applies a contrast and brightness adjustment in the manner
// of the CSS filter functions contrast() and brightness(): each channel
// is first mapped through (c-0.5)*contrast+0.5 and then multiplied by
// brightness+1. Channels are clamped to [0, 1] after every stage and alpha
// is left alone. The identity settings return an exact copy.
func AdjustTone(img *RGBAImage, contrast, brightness float64) *RGBAImage {
	if img.Empty() {
		return NewRGBAImage(0, 0)
	}
	filters := toneFilters(contrast, brightness)
	if len(filters) == 0 {
		return img.Clone()
	}

	g := gift.New(filters...)
	dst := NewRGBAImage(img.Width(), img.Height())
	g.Draw(dst.RGBA, img.RGBA)
	return dst
}

func toneFilters(contrast, brightness float64) []gift.Filter {
	var filters []gift.Filter
	if contrast != 1 {
		k := float32(contrast)
		filters = append(filters, gift.ColorFunc(
			func(r, g, b, a float32) (float32, float32, float32, float32) {
				return clamp01((r-0.5)*k + 0.5),
					clamp01((g-0.5)*k + 0.5),
					clamp01((b-0.5)*k + 0.5),
					a
			}))
	}
	if brightness != 0 {
		k := float32(brightness + 1)
		filters = append(filters, gift.ColorFunc(
			func(r, g, b, a float32) (float32, float32, float32, float32) {
				return clamp01(r * k), clamp01(g * k), clamp01(b * k), a
			}))
	}
	return filters
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
