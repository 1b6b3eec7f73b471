package core

import "fmt"

// Coord represents a (row, col) position on the grid.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether other is one of the 8 cells surrounding c,
// i.e. the Chebyshev distance between them is exactly 1. A coordinate
// is not adjacent to itself.
func (c Coord) Adjacent(other Coord) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	if dr == 0 && dc == 0 {
		return false
	}
	return dr <= 1 && dc <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
