// Package session holds the state a host application keeps between
// conversions: the loaded image, the current settings, the last computed
// grid and the surface currently on display.
package session

import (
	"fmt"
	"strings"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// RenderTarget selects what a conversion produces.
type RenderTarget int

const (
	// TargetText produces plain text.
	TargetText RenderTarget = iota
	// TargetVisual produces a rendered image.
	TargetVisual
)

func (t RenderTarget) String() string {
	switch t {
	case TargetText:
		return "text"
	case TargetVisual:
		return "visual"
	}
	return fmt.Sprintf("RenderTarget(%d)", int(t))
}

// ParseRenderTarget maps "text" or "visual" to a RenderTarget.
func ParseRenderTarget(name string) (RenderTarget, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return TargetText, nil
	case "visual", "image", "canvas":
		return TargetVisual, nil
	}
	return TargetText, fmt.Errorf("unknown render target %q", name)
}

// Recommended ranges for interactive controls. Settings.Clamp only
// enforces the hard limits; these are for front ends.
const (
	MinWidth      = 20
	MaxWidth      = 200
	MinFontSize   = 4
	MaxFontSize   = 16
	MinContrast   = 0.5
	MaxContrast   = 2.0
	MinBrightness = -0.5
	MaxBrightness = 0.5
)

// Settings is the complete set of user-tunable parameters. It is a plain
// value; changing a setting means passing a new Settings to the Session.
type Settings struct {
	Width         int
	FontSize      int
	Inverted      bool
	ColorMode     img2ascii.ColorMode
	Palette       img2ascii.Palette
	Target        RenderTarget
	Contrast      float64
	Brightness    float64
	Interpolation imageutil.Interpolation
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Width:         100,
		FontSize:      8,
		Inverted:      false,
		ColorMode:     img2ascii.ColorGrayscale,
		Palette:       img2ascii.MustPalette(img2ascii.PaletteSlashes),
		Target:        TargetText,
		Contrast:      1,
		Brightness:    0,
		Interpolation: imageutil.InterpolationNearest,
	}
}

// Clamp replaces degenerate values with the nearest usable ones: width
// and font size of at least 1, positive contrast and a non-negative
// brightness multiplier. An empty palette is replaced by the default.
func (s Settings) Clamp() Settings {
	if s.Width < 1 {
		s.Width = 1
	}
	tone := s.Tone().Clamp()
	s.Contrast, s.Brightness = tone.Contrast, tone.Brightness
	s.FontSize = s.Render().Clamp().FontSize
	if s.Palette.Len() == 0 {
		s.Palette = DefaultSettings().Palette
	}
	return s
}

// Tone returns the tone part of the settings.
func (s Settings) Tone() img2ascii.Tone {
	return img2ascii.Tone{Contrast: s.Contrast, Brightness: s.Brightness}
}

// Render returns the presentation part of the settings.
func (s Settings) Render() img2ascii.RenderSettings {
	return img2ascii.RenderSettings{
		FontSize:  s.FontSize,
		ColorMode: s.ColorMode,
		Inverted:  s.Inverted,
	}
}
