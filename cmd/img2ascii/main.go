package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/session"
)

// options holds the parsed command line.
type options struct {
	input      string
	output     string
	ansi       bool
	fontPath   string
	sortChars  bool
	chars      string
	paletteArg string
	logLevel   string
	settings   session.Settings
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	log := newLogger(stderr, opts.logLevel)
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}
	if err := convert(opts, stdout, log); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	defaults := session.DefaultSettings()
	fs := flag.NewFlagSet("img2ascii", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.input, "input", "",
		"Path to the input image file (required)")
	fs.StringVar(&opts.output, "output", "",
		"Directory to write "+session.TextExportName+" or "+
			session.ImageExportName+" to (if not specified, text goes to stdout)")
	width := fs.Int("width", defaults.Width,
		fmt.Sprintf("Target width in characters (%d-%d recommended)",
			session.MinWidth, session.MaxWidth))
	fontSize := fs.Int("fontsize", defaults.FontSize,
		fmt.Sprintf("Font size in pixels for visual output (%d-%d)",
			session.MinFontSize, session.MaxFontSize))
	invert := fs.Bool("invert", defaults.Inverted,
		"Invert the brightness mapping")
	colorMode := fs.String("colormode", defaults.ColorMode.String(),
		"Color mode: "+strings.Join(img2ascii.ColorModeNames(), ", "))
	fs.StringVar(&opts.paletteArg, "palette", defaults.Palette.Name(),
		"Character palette: "+strings.Join(img2ascii.PaletteNames(), ", "))
	fs.StringVar(&opts.chars, "chars", "",
		"Custom palette characters, darkest first (overrides -palette)")
	fs.BoolVar(&opts.sortChars, "sort", false,
		"Order -chars by glyph ink coverage instead of the given order")
	target := fs.String("render", defaults.Target.String(),
		"Render target: text or visual")
	contrast := fs.Float64("contrast", defaults.Contrast,
		fmt.Sprintf("Contrast (%.1f-%.1f)", session.MinContrast, session.MaxContrast))
	brightness := fs.Float64("brightness", defaults.Brightness,
		fmt.Sprintf("Brightness offset (%.1f-%.1f)", session.MinBrightness, session.MaxBrightness))
	resample := fs.String("resample", defaults.Interpolation.String(),
		"Resampling: nearest, box, linear, catmullrom")
	fs.StringVar(&opts.fontPath, "font", "",
		"Path to a monospace TTF for visual output (default: Go Mono)")
	fs.BoolVar(&opts.ansi, "ansi", false,
		"Print a 24-bit color preview to stdout")
	fs.StringVar(&opts.logLevel, "loglevel", "info",
		"Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" {
		fs.PrintDefaults()
		return opts, fmt.Errorf("please provide the image using the -input flag")
	}

	set := defaults
	set.Width = *width
	set.FontSize = *fontSize
	set.Inverted = *invert
	set.Contrast = *contrast
	set.Brightness = *brightness

	var err error
	if set.ColorMode, err = img2ascii.ParseColorMode(*colorMode); err != nil {
		return opts, err
	}
	if set.Target, err = session.ParseRenderTarget(*target); err != nil {
		return opts, err
	}
	if set.Interpolation, err = imageutil.ParseInterpolation(*resample); err != nil {
		return opts, err
	}
	if opts.chars == "" {
		if set.Palette, err = img2ascii.PaletteByName(opts.paletteArg); err != nil {
			return opts, err
		}
	}
	opts.settings = set
	return opts, nil
}

func convert(opts options, stdout io.Writer, log zerolog.Logger) error {
	set := opts.settings

	// Text output never draws a glyph.
	var face *img2ascii.GlyphFace
	if opts.sortChars || set.Target == session.TargetVisual {
		var err error
		if face, err = loadFace(opts.fontPath); err != nil {
			return err
		}
	}
	if opts.chars != "" {
		p, err := img2ascii.ParsePalette("chars", opts.chars)
		if err != nil {
			return err
		}
		if opts.sortChars {
			p = p.SortByCoverage(face)
			log.Debug().Str("order", p.String()).Msg("palette sorted by coverage")
		}
		set.Palette = p
	}
	clamped := set.Clamp()
	if clamped.Width != set.Width || clamped.FontSize != set.FontSize ||
		clamped.Contrast != set.Contrast || clamped.Brightness != set.Brightness {
		log.Warn().
			Int("width", clamped.Width).
			Int("fontsize", clamped.FontSize).
			Float64("contrast", clamped.Contrast).
			Float64("brightness", clamped.Brightness).
			Msg("settings clamped to usable values")
	}

	start := time.Now()
	s := session.New(session.WithLogger(log), session.WithFace(face))
	defer s.Close()
	if err := s.LoadFile(opts.input); err != nil {
		return err
	}

	g, err := s.Grid(clamped)
	if err != nil {
		return err
	}
	if g.Empty() {
		log.Warn().Int("cols", g.Cols()).Msg("image too flat for this width, grid is empty")
	}

	if opts.ansi {
		ansi, err := s.ANSI(clamped)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, ansi); err != nil {
			return err
		}
	}

	switch {
	case opts.output != "":
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path, err := s.Export(opts.output, clamped)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Stringer("render", clamped.Target).Msg("output written")
	case clamped.Target == session.TargetVisual:
		return fmt.Errorf("visual output needs an -output directory")
	case !opts.ansi:
		text, err := s.Text(clamped)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, text); err != nil {
			return err
		}
	}

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("cols", g.Cols()).
		Int("rows", g.Rows()).
		Msg("done")
	return nil
}

func loadFace(path string) (*img2ascii.GlyphFace, error) {
	if path == "" {
		return img2ascii.DefaultFace()
	}
	return img2ascii.LoadFace(path)
}
