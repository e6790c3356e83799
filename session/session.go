package session

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// ErrNoImage is returned when converting before any image is loaded.
// Callers treat it as "nothing to show yet" rather than a failure.
var ErrNoImage = errors.New("no image loaded")

// File names used by the export functions.
const (
	TextExportName  = "ascii-art.txt"
	ImageExportName = "ascii-art.png"
)

// gridKey identifies everything a grid depends on.
type gridKey struct {
	generation uint64
	width      int
	tone       img2ascii.Tone
	invert     bool
	palette    string
	interp     imageutil.Interpolation
}

// surfaceKey identifies everything a surface depends on.
type surfaceKey struct {
	grid   gridKey
	render img2ascii.RenderSettings
}

// Stats counts the work a session has done.
type Stats struct {
	GridComputations int
	GridCacheHits    int
	SurfaceRenders   int
	SurfaceReleases  int
}

// Session keeps the current image and the most recent results. Grids and
// surfaces are recomputed only when the settings they depend on change.
// A Session is not safe for concurrent use.
type Session struct {
	log  zerolog.Logger
	face *img2ascii.GlyphFace

	image      *imageutil.RGBAImage
	generation uint64

	grid    *img2ascii.Grid
	gridKey gridKey

	surface    *img2ascii.Surface
	surfaceKey surfaceKey

	stats Stats
}

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithFace sets the font used for visual rendering.
func WithFace(face *img2ascii.GlyphFace) Option {
	return func(s *Session) {
		s.face = face
	}
}

// New creates a Session with no image loaded.
func New(opts ...Option) *Session {
	s := &Session{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes an image from r and makes it current. If decoding fails
// the previous image, if any, stays current.
func (s *Session) Load(r io.Reader) error {
	img, format, err := imageutil.Decode(r)
	if err != nil {
		return err
	}
	s.setImage(img)
	s.log.Debug().
		Str("format", format).
		Int("width", img.Width()).
		Int("height", img.Height()).
		Msg("image loaded")
	return nil
}

// LoadFile is Load for a file on disk.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

// SetImage makes a copy of img current. A nil image unloads the current
// one. Later changes to img are not seen by the session.
func (s *Session) SetImage(img image.Image) {
	switch src := img.(type) {
	case nil:
		s.setImage(nil)
	case *imageutil.RGBAImage:
		s.setImage(src.Clone())
	default:
		s.setImage(imageutil.RGBAImageFromImage(img))
	}
}

func (s *Session) setImage(img *imageutil.RGBAImage) {
	s.image = img
	s.generation++
	s.grid = nil
	s.releaseSurface()
}

// HasImage reports whether an image is loaded.
func (s *Session) HasImage() bool {
	return s.image != nil
}

// Stats returns the work counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Grid returns the character grid for set, reusing the previous grid when
// none of its inputs changed.
func (s *Session) Grid(set Settings) (*img2ascii.Grid, error) {
	if s.image == nil {
		return nil, ErrNoImage
	}
	set = set.Clamp()
	key := gridKey{
		generation: s.generation,
		width:      set.Width,
		tone:       set.Tone(),
		invert:     set.Inverted,
		palette:    set.Palette.String(),
		interp:     set.Interpolation,
	}
	if s.grid != nil && key == s.gridKey {
		s.stats.GridCacheHits++
		return s.grid, nil
	}

	s.grid = img2ascii.Rasterize(s.image, set.Width, set.Tone(), set.Inverted,
		set.Palette, img2ascii.WithInterpolation(set.Interpolation))
	s.gridKey = key
	s.stats.GridComputations++
	s.log.Debug().
		Int("cols", s.grid.Cols()).
		Int("rows", s.grid.Rows()).
		Str("palette", set.Palette.Name()).
		Bool("inverted", set.Inverted).
		Msg("grid computed")
	return s.grid, nil
}

// Text returns the plain text rendering for set.
func (s *Session) Text(set Settings) (string, error) {
	g, err := s.Grid(set)
	if err != nil {
		return "", err
	}
	return img2ascii.RenderText(g), nil
}

// ANSI returns a colored terminal rendering for set.
func (s *Session) ANSI(set Settings) (string, error) {
	g, err := s.Grid(set)
	if err != nil {
		return "", err
	}
	return img2ascii.RenderANSI(g, set.Clamp().Render()), nil
}

// Visual returns the rendered surface for set. The session owns the
// surface: it stays valid until Visual is called with different settings,
// a new image is loaded or the session is closed, at which point it is
// released.
func (s *Session) Visual(set Settings) (*img2ascii.Surface, error) {
	g, err := s.Grid(set)
	if err != nil {
		return nil, err
	}
	set = set.Clamp()
	key := surfaceKey{grid: s.gridKey, render: set.Render()}
	if !s.surface.Released() && key == s.surfaceKey {
		return s.surface, nil
	}

	s.releaseSurface()
	var opts []img2ascii.VisualOption
	if s.face != nil {
		opts = append(opts, img2ascii.WithFace(s.face))
	}
	surf, err := img2ascii.RenderVisual(g, set.Render(), opts...)
	if err != nil {
		return nil, err
	}
	s.surface, s.surfaceKey = surf, key
	s.stats.SurfaceRenders++
	s.log.Debug().
		Stringer("bounds", surf.Bounds()).
		Stringer("colormode", set.ColorMode).
		Int("fontsize", set.FontSize).
		Msg("surface rendered")
	return surf, nil
}

func (s *Session) releaseSurface() {
	if s.surface.Released() {
		return
	}
	s.surface.Release()
	s.surface = nil
	s.stats.SurfaceReleases++
	s.log.Debug().Msg("surface released")
}

// ExportText writes the text rendering to TextExportName in dir and
// returns the path written.
func (s *Session) ExportText(dir string, set Settings) (string, error) {
	g, err := s.Grid(set)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, TextExportName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if err := img2ascii.WriteText(f, g); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	s.log.Info().Str("path", path).Msg("text exported")
	return path, nil
}

// ExportPNG writes the visual rendering to ImageExportName in dir and
// returns the path written.
func (s *Session) ExportPNG(dir string, set Settings) (string, error) {
	surf, err := s.Visual(set)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ImageExportName)
	if surf.Bounds().Empty() {
		return "", fmt.Errorf("failed to write %s: %w", path, img2ascii.ErrEmptySurface)
	}
	if err := imageutil.SavePNG(surf.Image(), path); err != nil {
		return "", err
	}
	s.log.Info().Str("path", path).Msg("image exported")
	return path, nil
}

// Export writes the rendering selected by set.Target into dir.
func (s *Session) Export(dir string, set Settings) (string, error) {
	if set.Target == TargetVisual {
		return s.ExportPNG(dir, set)
	}
	return s.ExportText(dir, set)
}

// Close releases the current surface and drops the image.
func (s *Session) Close() {
	s.releaseSurface()
	s.image = nil
	s.grid = nil
}
