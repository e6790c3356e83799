package img2ascii

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Palette is an ordered set of characters used to represent luminance.
// Index 0 represents the darkest tone and the last index the lightest.
// A Palette is immutable once created.
type Palette struct {
	name  string
	chars []rune
	rank  map[rune]int
}

// Names of the predefined palettes.
const (
	PaletteSlashes  = "slashes"
	PaletteStandard = "standard"
	PaletteBlocks   = "blocks"
	PaletteMinimal  = "minimal"
	PaletteCustom   = "custom"
	PaletteExtended = "extended"
)

var (
	paletteOrder = []string{
		PaletteSlashes,
		PaletteStandard,
		PaletteBlocks,
		PaletteMinimal,
		PaletteCustom,
		PaletteExtended,
	}

	predefinedPalettes = map[string]string{
		PaletteSlashes:  ` -\/`,
		PaletteStandard: ` .:-=+*#%@`,
		PaletteBlocks:   ` ░▒▓█`,
		PaletteMinimal:  ` ·○●`,
		PaletteCustom:   ` .,:;+*?%$#@`,
		PaletteExtended: " .`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	}
)

// NewPalette creates a palette from chars, ordered darkest first.
func NewPalette(name string, chars []rune) (Palette, error) {
	if len(chars) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	p := Palette{
		name:  name,
		chars: append([]rune(nil), chars...),
		rank:  make(map[rune]int, len(chars)),
	}
	for i, r := range p.chars {
		// First occurrence wins, like a linear search would.
		if _, ok := p.rank[r]; !ok {
			p.rank[r] = i
		}
	}
	return p, nil
}

// ParsePalette creates a palette from the characters of s.
func ParsePalette(name, s string) (Palette, error) {
	return NewPalette(name, []rune(s))
}

// PaletteByName returns one of the predefined palettes.
func PaletteByName(name string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	chars, ok := predefinedPalettes[key]
	if !ok {
		return Palette{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownPalette, name, strings.Join(paletteOrder, ", "))
	}
	return ParsePalette(key, chars)
}

// MustPalette is like PaletteByName but panics on unknown names. It is
// intended for package level variables and tests.
func MustPalette(name string) Palette {
	p, err := PaletteByName(name)
	if err != nil {
		panic(err)
	}
	return p
}

// PaletteNames returns the predefined palette names in display order.
func PaletteNames() []string {
	return append([]string(nil), paletteOrder...)
}

// Name returns the palette name, which may be empty for ad hoc palettes.
func (p Palette) Name() string { return p.name }

// Len returns the number of characters in the palette.
func (p Palette) Len() int { return len(p.chars) }

// At returns the character at index i.
func (p Palette) At(i int) rune { return p.chars[i] }

// Runes returns a copy of the palette characters.
func (p Palette) Runes() []rune { return append([]rune(nil), p.chars...) }

// String returns the palette characters as a string.
func (p Palette) String() string { return string(p.chars) }

// Contains reports whether r is one of the palette characters.
func (p Palette) Contains(r rune) bool {
	_, ok := p.rank[r]
	return ok
}

// Index maps a luminance in [0, 255] to a palette index.
//
// The divisor is 256, not 255: pure white lands on floor(255/256*N), which
// only reaches the last character while N <= 256.
func (p Palette) Index(luminance float64) int {
	n := len(p.chars)
	idx := int(math.Floor(luminance / 256 * float64(n)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Char returns the character representing luminance.
func (p Palette) Char(luminance float64) rune {
	return p.chars[p.Index(luminance)]
}

// Rank returns the index of the first occurrence of r, or -1.
func (p Palette) Rank(r rune) int {
	if i, ok := p.rank[r]; ok {
		return i
	}
	return -1
}

// Fraction returns the rank of r scaled to [0, 1]. Characters outside the
// palette give 0. A single character palette has nothing to rank against
// and gives 1, so its glyphs are painted at full brightness.
func (p Palette) Fraction(r rune) float64 {
	rank := p.Rank(r)
	if rank < 0 {
		return 0
	}
	if len(p.chars) == 1 {
		return 1
	}
	return float64(rank) / float64(len(p.chars)-1)
}

// SortByCoverage returns a copy of the palette ordered by the ink each
// glyph leaves when drawn with face, least ink first. Glyphs with equal
// coverage keep their relative order.
func (p Palette) SortByCoverage(face *GlyphFace) Palette {
	type weighted struct {
		r        rune
		coverage float64
	}
	ws := make([]weighted, len(p.chars))
	for i, r := range p.chars {
		ws[i] = weighted{r: r, coverage: face.Coverage(r)}
	}
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].coverage < ws[j].coverage
	})

	chars := make([]rune, len(ws))
	for i, w := range ws {
		chars[i] = w.r
	}
	sorted, _ := NewPalette(p.name, chars)
	return sorted
}
