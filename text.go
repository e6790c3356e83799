package img2ascii

import (
	"bufio"
	"io"
	"strings"
)

// RenderText serialises the grid as lines of characters, top to bottom.
// Every row, including the last, ends with a newline. An empty grid gives
// the empty string.
func RenderText(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	writeText(&sb, g)
	return sb.String()
}

// WriteText writes the RenderText serialisation of g to w.
func WriteText(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	writeText(bw, g)
	return bw.Flush()
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
	WriteByte(c byte) error
}

func writeText(w runeWriter, g *Grid) {
	for y := 0; y < g.Rows(); y++ {
		for _, cell := range g.cells[y] {
			w.WriteRune(cell.Char)
		}
		w.WriteByte('\n')
	}
}
