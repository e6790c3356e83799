// Command rank_glyphs measures how much ink each glyph of a font leaves in
// a character cell and prints the characters as a palette, least ink
// first, ready for img2ascii -chars.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/wbrown/img2ascii"
)

// blockChars are the shade and block elements worth ranking alongside
// printable ASCII.
var blockChars = []rune{
	'▀', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█',
	'▌', '▍', '▎', '▏', '▐', '░', '▒', '▓',
	'▖', '▗', '▘', '▙', '▚', '▛', '▜', '▝', '▞', '▟',
	'·', '○', '●',
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rank_glyphs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fontPath := fs.String("font", "", "Path to a TTF font (default: Go Mono)")
	chars := fs.String("chars", "", "Characters to rank (default: printable ASCII and block elements)")
	count := fs.Int("n", 0, "Pick this many evenly spaced characters from the ranking (0 keeps all)")
	table := fs.Bool("table", false, "Print the coverage of every character")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	face, err := loadFace(*fontPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load font")
		return 1
	}

	set := []rune(*chars)
	if len(set) == 0 {
		set = defaultSet()
	}
	p, err := img2ascii.NewPalette("ranked", set)
	if err != nil {
		log.Error().Err(err).Msg("nothing to rank")
		return 1
	}

	ranked := p.SortByCoverage(face)
	log.Info().Str("font", face.Name()).Int("glyphs", ranked.Len()).Msg("computed coverage")

	if *table {
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, r := range ranked.Runes() {
			fmt.Fprintf(tw, "%q\tU+%04X\t%.4f\n", r, r, face.Coverage(r))
		}
		tw.Flush()
		return 0
	}

	fmt.Fprintln(stdout, string(spread(ranked.Runes(), *count)))
	return 0
}

func defaultSet() []rune {
	set := make([]rune, 0, 95+len(blockChars))
	for r := rune(32); r <= rune(126); r++ {
		set = append(set, r)
	}
	return append(set, blockChars...)
}

// spread picks n characters evenly from ranked, always keeping the first
// and last. n <= 0 or n >= len(ranked) returns ranked unchanged.
func spread(ranked []rune, n int) []rune {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	if n == 1 {
		return ranked[len(ranked)-1:]
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = ranked[i*(len(ranked)-1)/(n-1)]
	}
	return out
}

func loadFace(path string) (*img2ascii.GlyphFace, error) {
	if path == "" {
		return img2ascii.DefaultFace()
	}
	return img2ascii.LoadFace(path)
}
