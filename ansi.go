package img2ascii

import (
	"fmt"
	"image/color"
	"strings"
)

const (
	ESC = "\u001b"

	ansiReset = ESC + "[0m"
)

// RenderANSI renders the grid for a 24-bit color terminal, painting each
// character the way RenderVisual would. Adjacent cells that share a color
// share one escape sequence, and every row ends with a reset and a
// newline.
func RenderANSI(g *Grid, s RenderSettings) string {
	var sb strings.Builder
	for y := 0; y < g.Rows(); y++ {
		var current color.RGBA
		started := false
		for x := 0; x < g.Cols(); x++ {
			c := cellColor(g, s, x, y)
			if !started || c != current {
				sb.WriteString(formatANSIForeground(c))
				current, started = c, true
			}
			sb.WriteRune(g.At(x, y).Char)
		}
		sb.WriteString(ansiReset)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatANSIForeground formats a 24-bit foreground color escape.
func formatANSIForeground(c color.RGBA) string {
	return fmt.Sprintf("%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
}
