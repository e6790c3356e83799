package img2ascii

import (
	"errors"
	"testing"
)

func TestPredefinedPalettes(t *testing.T) {
	tests := []struct {
		name  string
		len   int
		first rune
		last  rune
	}{
		{PaletteSlashes, 4, ' ', '/'},
		{PaletteStandard, 10, ' ', '@'},
		{PaletteBlocks, 5, ' ', '█'},
		{PaletteMinimal, 4, ' ', '●'},
		{PaletteCustom, 12, ' ', '@'},
		{PaletteExtended, 69, ' ', '$'},
	}

	if got := len(PaletteNames()); got != len(tests) {
		t.Fatalf("Expected %d palettes, got %d", len(tests), got)
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if PaletteNames()[i] != tt.name {
				t.Errorf("Expected palette %d to be %s, got %s", i, tt.name, PaletteNames()[i])
			}
			p, err := PaletteByName(tt.name)
			if err != nil {
				t.Fatalf("PaletteByName(%q) failed: %v", tt.name, err)
			}
			if p.Len() != tt.len {
				t.Errorf("Expected length %d, got %d", tt.len, p.Len())
			}
			if p.At(0) != tt.first || p.At(p.Len()-1) != tt.last {
				t.Errorf("Expected %q..%q, got %q..%q", tt.first, tt.last, p.At(0), p.At(p.Len()-1))
			}
			if p.Name() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, p.Name())
			}
		})
	}
}

func TestSlashesPaletteOrder(t *testing.T) {
	if got := MustPalette(PaletteSlashes).String(); got != ` -\/` {
		t.Errorf("Unexpected slashes palette %q", got)
	}
}

func TestPaletteByNameUnknown(t *testing.T) {
	_, err := PaletteByName("braille")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("Expected ErrUnknownPalette, got %v", err)
	}
}

func TestNewPaletteEmpty(t *testing.T) {
	if _, err := NewPalette("empty", nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Expected ErrEmptyPalette, got %v", err)
	}
	if _, err := ParsePalette("empty", ""); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Expected ErrEmptyPalette, got %v", err)
	}
}

func TestPaletteIndex(t *testing.T) {
	standard := MustPalette(PaletteStandard)
	single, _ := ParsePalette("one", "#")

	tests := []struct {
		name      string
		p         Palette
		luminance float64
		want      int
	}{
		{"black", standard, 0, 0},
		{"mid gray", standard, 128, 5},
		{"just below mid", standard, 127, 4},
		{"white", standard, 255, 9},
		{"negative clamps", standard, -10, 0},
		{"overflow clamps", standard, 300, 9},
		{"single black", single, 0, 0},
		{"single white", single, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Index(tt.luminance); got != tt.want {
				t.Errorf("Index(%f) = %d, want %d", tt.luminance, got, tt.want)
			}
		})
	}
}

func TestPaletteIndexDividesBy256(t *testing.T) {
	// With more than 256 characters white cannot reach the last one.
	chars := make([]rune, 300)
	for i := range chars {
		chars[i] = rune(0x4E00 + i)
	}
	p, err := NewPalette("wide", chars)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Index(255); got != 298 {
		t.Errorf("Expected white to map to 298, got %d", got)
	}
}

func TestPaletteRankAndFraction(t *testing.T) {
	p, _ := ParsePalette("dup", " .:.#")

	if got := p.Rank('.'); got != 1 {
		t.Errorf("Expected first occurrence rank 1, got %d", got)
	}
	if got := p.Rank('x'); got != -1 {
		t.Errorf("Expected -1 for missing rune, got %d", got)
	}
	if got := p.Fraction('#'); got != 1 {
		t.Errorf("Expected fraction 1 for last rune, got %f", got)
	}
	if got := p.Fraction(':'); got != 0.5 {
		t.Errorf("Expected fraction 0.5, got %f", got)
	}
	if got := p.Fraction('x'); got != 0 {
		t.Errorf("Expected fraction 0 for missing rune, got %f", got)
	}
	if p.Contains('x') || !p.Contains(':') {
		t.Error("Contains gave the wrong answer")
	}

	single, _ := ParsePalette("one", "@")
	if got := single.Fraction('@'); got != 1 {
		t.Errorf("Expected single palette fraction 1, got %f", got)
	}
}

func TestPaletteRunesIsCopy(t *testing.T) {
	p := MustPalette(PaletteStandard)
	runes := p.Runes()
	runes[0] = 'X'
	if p.At(0) != ' ' {
		t.Error("Modifying Runes() should not affect the palette")
	}
}

func TestPaletteSortByCoverage(t *testing.T) {
	face, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace failed: %v", err)
	}

	p, _ := ParsePalette("mixed", "@ .")
	sorted := p.SortByCoverage(face)
	if got := sorted.String(); got != " .@" {
		t.Errorf("Expected \" .@\", got %q", got)
	}
	if p.String() != "@ ." {
		t.Error("SortByCoverage should not modify the receiver")
	}
}
