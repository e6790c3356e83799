package img2ascii

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	p, _ := ParsePalette("abcd", "abcd")
	g, err := NewGrid(p, [][]rune{[]rune("ab"), []rune("cd")})
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderText(g); got != "ab\ncd\n" {
		t.Errorf("Expected %q, got %q", "ab\ncd\n", got)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, g); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if buf.String() != RenderText(g) {
		t.Errorf("WriteText and RenderText disagree: %q", buf.String())
	}
}

func TestRenderTextMultibyte(t *testing.T) {
	g := Rasterize(uniformGray(8, 8, 255), 4, DefaultTone(), false, MustPalette(PaletteBlocks))
	want := strings.Repeat(strings.Repeat("█", 4)+"\n", 2)
	if got := RenderText(g); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	if got := RenderText(nil); got != "" {
		t.Errorf("Nil grid should render empty, got %q", got)
	}
	g, _ := NewGrid(MustPalette(PaletteStandard), nil)
	if got := RenderText(g); got != "" {
		t.Errorf("Empty grid should render empty, got %q", got)
	}
}

func TestNewGrid(t *testing.T) {
	p := MustPalette(PaletteStandard)
	g, err := NewGrid(p, [][]rune{[]rune("@@@"), []rune("...")})
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols() != 3 || g.Rows() != 2 {
		t.Errorf("Expected 3x2, got %dx%d", g.Cols(), g.Rows())
	}
	row := g.Row(1)
	row[0].Char = 'X'
	if g.At(0, 1).Char != '.' {
		t.Error("Row() should return a copy")
	}
	if g.Palette().String() != p.String() {
		t.Error("Grid should keep its palette")
	}

	_, err = NewGrid(p, [][]rune{[]rune("@@@"), []rune("..")})
	if !errors.Is(err, ErrRaggedGrid) {
		t.Errorf("Expected ErrRaggedGrid, got %v", err)
	}
}

func TestRenderANSI(t *testing.T) {
	p, _ := ParsePalette("two", " @")
	g, _ := NewGrid(p, [][]rune{[]rune("@@ "), []rune("@@@")})

	got := RenderANSI(g, RenderSettings{FontSize: 8})
	white := ESC + "[38;2;255;255;255m"
	black := ESC + "[38;2;0;0;0m"
	want := white + "@@" + black + " " + ansiReset + "\n" +
		white + "@@@" + ansiReset + "\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderANSIColorModes(t *testing.T) {
	p, _ := ParsePalette("one", "@")
	g, _ := NewGrid(p, [][]rune{[]rune("@")})

	got := RenderANSI(g, RenderSettings{FontSize: 8, ColorMode: ColorSepia})
	if !strings.HasPrefix(got, ESC+"[38;2;255;220;180m@") {
		t.Errorf("Unexpected sepia output %q", got)
	}
	if RenderANSI(nil, RenderSettings{}) != "" {
		t.Error("Nil grid should render empty")
	}
}
