package core

import (
	"sort"
	"strconv"
)

// Tile is an occupied grid cell: a position plus the cell it carries.
type Tile struct {
	Pos  Coord
	Cell Cell
}

// State is the multiset of tiles currently on the board. Empty cells
// carry no information and are omitted, so both searches operate on
// tile lists instead of full grid arrays.
type State []Tile

// Tiles extracts the state from a grid, scanning in row-major order
// and omitting empty cells.
func Tiles(g *Grid) State {
	tiles := make(State, 0, g.Occupied())
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			cell := g.Get(C(r, c))
			if !cell.IsEmpty() {
				tiles = append(tiles, Tile{Pos: C(r, c), Cell: cell})
			}
		}
	}
	return tiles
}

// Key returns a canonical serialization of the state: two states
// produce the same key exactly when they hold the same multiset of
// (value, position) pairs, regardless of the order tiles were placed
// or discovered. Tiles are sorted by row, then column, then value;
// wildcards serialize as "*", which no numeric value can produce.
// Keys are computed once per visited state in both searches, so the
// serialization stays allocation-light.
func (s State) Key() string {
	sorted := make(State, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Pos.Row != b.Pos.Row {
			return a.Pos.Row < b.Pos.Row
		}
		if a.Pos.Col != b.Pos.Col {
			return a.Pos.Col < b.Pos.Col
		}
		return a.Cell.Value < b.Cell.Value
	})

	buf := make([]byte, 0, len(sorted)*8)
	for _, t := range sorted {
		buf = strconv.AppendInt(buf, int64(t.Pos.Row), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(t.Pos.Col), 10)
		buf = append(buf, ':')
		if t.Cell.IsWild() {
			buf = append(buf, '*')
		} else {
			buf = strconv.AppendInt(buf, int64(t.Cell.Value), 10)
		}
		buf = append(buf, ';')
	}
	return string(buf)
}
