package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid represents the board as a square grid of cells.
// Cells are stored in row-major order: index = row*Size + col.
// Grids are value-semantic within the package: the search never
// mutates a grid it was handed, it derives tile lists instead.
type Grid struct {
	Size  int    // Side length of the square board
	Cells []Cell // Flat array of cells, length Size*Size
}

// NewGrid creates a new grid with all cells empty.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

// FromRows builds a grid from a slice of rows. Every row must have
// exactly as many entries as there are rows; all positional arithmetic
// assumes a square board, so a ragged input fails here rather than
// deep inside a search.
func FromRows(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	g := NewGrid(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("grid is not square: row %d has %d cells, want %d", r, len(row), n)
		}
		for c, cell := range row {
			g.Set(C(r, c), cell)
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Size + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.Cells[g.index(c)]
}

// Set sets the cell at the given coordinate.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// SetEmpty clears the cell at the given coordinate.
func (g *Grid) SetEmpty(c Coord) {
	g.Set(c, Empty())
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Size:  g.Size,
		Cells: cells,
	}
}

// Occupied returns the number of non-empty cells in the grid.
func (g *Grid) Occupied() int {
	count := 0
	for _, cell := range g.Cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as text, one row per line: numbers print as
// themselves, wildcards as "*", empty cells as ".".
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := g.Get(C(r, c))
			switch cell.Kind {
			case KindNumber:
				b.WriteString(strconv.Itoa(cell.Value))
			case KindWildcard:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
