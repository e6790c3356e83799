package img2ascii

import "errors"

var (
	// ErrEmptyPalette is returned when a palette has no characters.
	ErrEmptyPalette = errors.New("palette must contain at least one character")

	// ErrUnknownPalette is returned by PaletteByName for names that are
	// not predefined.
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrUnknownColorMode is returned by ParseColorMode.
	ErrUnknownColorMode = errors.New("unknown color mode")

	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("grid rows must all have the same length")

	// ErrSurfaceReleased is returned when a released surface is used.
	ErrSurfaceReleased = errors.New("surface has been released")

	// ErrEmptySurface is returned when encoding a surface with no pixels.
	ErrEmptySurface = errors.New("surface has no pixels")
)
