package img2ascii

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
)

func gridOf(t *testing.T, chars string, rows ...string) *Grid {
	t.Helper()
	p, err := ParsePalette("test", chars)
	if err != nil {
		t.Fatal(err)
	}
	runes := make([][]rune, len(rows))
	for i, r := range rows {
		runes[i] = []rune(r)
	}
	g, err := NewGrid(p, runes)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func countLit(s *Surface) int {
	img := s.Image()
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 || img.Pix[i+1] > 0 || img.Pix[i+2] > 0 {
			lit++
		}
	}
	return lit
}

func TestSurfaceSize(t *testing.T) {
	g := gridOf(t, " @", "@@@@@", "@@@@@")
	tests := []struct {
		fontSize      int
		width, height int
	}{
		{10, 30, 20},
		{8, 24, 16},
		{7, 21, 14},
		{3, 9, 6},
	}
	for _, tt := range tests {
		w, h := SurfaceSize(g, tt.fontSize)
		if w != tt.width || h != tt.height {
			t.Errorf("fontSize %d: expected %dx%d, got %dx%d", tt.fontSize, tt.width, tt.height, w, h)
		}
	}

	odd := gridOf(t, " @", "@@@")
	if w, _ := SurfaceSize(odd, 7); w != 12 {
		t.Errorf("Expected width to be floored to 12, got %d", w)
	}
}

func TestRenderVisualDimensions(t *testing.T) {
	g := Rasterize(uniformGray(100, 100, 200), 40, DefaultTone(), false, MustPalette(PaletteStandard))
	surf, err := RenderVisual(g, RenderSettings{FontSize: 8})
	if err != nil {
		t.Fatalf("RenderVisual failed: %v", err)
	}
	defer surf.Release()

	w, h := SurfaceSize(g, 8)
	b := surf.Bounds()
	if b.Dx() != w || b.Dy() != h {
		t.Errorf("Expected %dx%d surface, got %dx%d", w, h, b.Dx(), b.Dy())
	}
}

func TestRenderVisualDrawsGlyphs(t *testing.T) {
	g := gridOf(t, " @", "@ @", " @ ")
	surf, err := RenderVisual(g, RenderSettings{FontSize: 16})
	if err != nil {
		t.Fatalf("RenderVisual failed: %v", err)
	}
	defer surf.Release()

	if countLit(surf) == 0 {
		t.Fatal("Expected glyph pixels on the surface")
	}
	// Corners outside every glyph stay background.
	img := surf.Image()
	if c := img.RGBAAt(0, img.Rect.Dy()-1); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black background, got %v", c)
	}

	// The middle cell of the first row is a space and stays dark.
	size := 16
	x0 := int(float64(size) * CharAspect)
	x1 := int(2 * float64(size) * CharAspect)
	for y := 0; y < size; y++ {
		for x := x0 + 2; x < x1-2; x++ {
			if c := img.RGBAAt(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				t.Fatalf("Space cell painted at (%d,%d): %v", x, y, c)
			}
		}
	}
}

func TestRenderVisualInvertedDarkensGlyphs(t *testing.T) {
	// The only glyph has rank fraction 1, inverted to 0, so it is drawn
	// in black on black.
	g := gridOf(t, " @", "@@", "@@")
	surf, err := RenderVisual(g, RenderSettings{FontSize: 12, Inverted: true})
	if err != nil {
		t.Fatalf("RenderVisual failed: %v", err)
	}
	defer surf.Release()
	if n := countLit(surf); n != 0 {
		t.Errorf("Expected no lit pixels, got %d", n)
	}
}

func TestRenderVisualColorModes(t *testing.T) {
	g := gridOf(t, " @", "@@@")
	for _, mode := range []ColorMode{ColorSepia, ColorOriginal} {
		surf, err := RenderVisual(g, RenderSettings{FontSize: 16, ColorMode: mode})
		if err != nil {
			t.Fatalf("%v: RenderVisual failed: %v", mode, err)
		}
		img := surf.Image()
		var brightest color.RGBA
		for y := 0; y < img.Rect.Dy(); y++ {
			for x := 0; x < img.Rect.Dx(); x++ {
				if c := img.RGBAAt(x, y); c.R > brightest.R {
					brightest = c
				}
			}
		}
		if brightest.R <= brightest.G || brightest.G <= brightest.B {
			t.Errorf("%v: expected a warm tint, got %v", mode, brightest)
		}
		surf.Release()
	}
}

func TestRenderVisualEmptyGrid(t *testing.T) {
	g := Rasterize(nil, 10, DefaultTone(), false, MustPalette(PaletteStandard))
	surf, err := RenderVisual(g, RenderSettings{FontSize: 8})
	if err != nil {
		t.Fatalf("RenderVisual failed: %v", err)
	}
	if !surf.Bounds().Empty() {
		t.Errorf("Expected empty surface, got %v", surf.Bounds())
	}
	if err := surf.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("Expected ErrEmptySurface, got %v", err)
	}
	surf.Release()
}

func TestRenderVisualClampsFontSize(t *testing.T) {
	g := gridOf(t, " @", "@@@@@", "@@@@@")
	surf, err := RenderVisual(g, RenderSettings{FontSize: 0})
	if err != nil {
		t.Fatalf("RenderVisual failed: %v", err)
	}
	defer surf.Release()
	if b := surf.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Expected 3x2 surface at font size 1, got %v", b)
	}
}

func TestSurfaceEncodePNG(t *testing.T) {
	g := gridOf(t, " @", "@@", "@@")
	surf, err := RenderVisual(g, RenderSettings{FontSize: 10})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := surf.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds() != surf.Bounds() {
		t.Errorf("Expected bounds %v, got %v", surf.Bounds(), decoded.Bounds())
	}
	surf.Release()
}

func TestSurfaceRelease(t *testing.T) {
	g := gridOf(t, " @", "@@", "@@")
	surf, err := RenderVisual(g, RenderSettings{FontSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if surf.Released() {
		t.Fatal("New surface should not be released")
	}

	surf.Release()
	surf.Release()
	if !surf.Released() || surf.Image() != nil {
		t.Error("Released surface should have no image")
	}
	if err := surf.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrSurfaceReleased) {
		t.Errorf("Expected ErrSurfaceReleased, got %v", err)
	}

	var nilSurface *Surface
	nilSurface.Release()
	if !nilSurface.Released() {
		t.Error("Nil surface should report released")
	}
}

func TestAcquireSurfaceClearsReusedBuffer(t *testing.T) {
	dirty := acquireSurface(8, 8)
	for i := range dirty.img.Pix {
		dirty.img.Pix[i] = 0xff
	}
	dirty.Release()

	for i := 0; i < 4; i++ {
		s := acquireSurface(4, 4)
		for _, v := range s.img.Pix {
			if v != 0 {
				t.Fatal("Reused buffer was not cleared")
			}
		}
		if len(s.img.Pix) != 4*4*4 {
			t.Errorf("Expected %d bytes, got %d", 64, len(s.img.Pix))
		}
		s.Release()
	}
}

func TestGlyphCoverage(t *testing.T) {
	face, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace failed: %v", err)
	}
	if got := face.Coverage(' '); got != 0 {
		t.Errorf("Space should have no coverage, got %f", got)
	}
	dot, at := face.Coverage('.'), face.Coverage('@')
	if !(dot > 0 && dot < at && at < 1) {
		t.Errorf("Expected 0 < '.' (%f) < '@' (%f) < 1", dot, at)
	}
	if face.Name() != "Go Mono" {
		t.Errorf("Unexpected face name %q", face.Name())
	}
}

func TestLoadFaceErrors(t *testing.T) {
	if _, err := LoadFace("/nonexistent/font.ttf"); err == nil {
		t.Error("Expected error for missing font")
	}
	if _, err := ParseFace("junk", []byte("not a font")); err == nil {
		t.Error("Expected error for invalid font data")
	}
}
