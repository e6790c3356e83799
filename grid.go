package img2ascii

import (
	"github.com/wbrown/img2ascii/imageutil"
)

// Cell is one character position of a Grid. RGB is the color sampled from
// the source image before inversion and palette mapping.
type Cell struct {
	Char rune
	RGB  imageutil.RGB
}

// Grid is a rectangular array of cells produced by Rasterize. A Grid is
// never modified after construction; accessors return copies.
type Grid struct {
	cells   [][]Cell
	cols    int
	palette Palette
}

// NewGrid builds a grid from rows of characters, for callers that already
// hold text. All rows must have the same length. Sample colors are zero.
func NewGrid(palette Palette, rows [][]rune) (*Grid, error) {
	g := &Grid{palette: palette, cells: make([][]Cell, len(rows))}
	for y, row := range rows {
		if y == 0 {
			g.cols = len(row)
		} else if len(row) != g.cols {
			return nil, ErrRaggedGrid
		}
		g.cells[y] = make([]Cell, len(row))
		for x, r := range row {
			g.cells[y][x] = Cell{Char: r}
		}
	}
	return g, nil
}

func newGrid(palette Palette, cols, rows int) *Grid {
	g := &Grid{palette: palette, cols: cols, cells: make([][]Cell, rows)}
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Cols returns the number of columns. An empty grid may still report the
// width it was computed for.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.cells[y][x]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	return append([]Cell(nil), g.cells[y]...)
}

// Palette returns the palette the grid characters were chosen from.
func (g *Grid) Palette() Palette {
	if g == nil {
		return Palette{}
	}
	return g.palette
}
