package core

import "sort"

// Normalize rescales the numeric values on a grid to consecutive
// integers starting at 1, preserving their relative order: the k
// distinct values present map to 1..k. Empty and wildcard cells are
// untouched. The result is a new grid; the operation is idempotent
// and is the identity when values already are exactly 1..k.
func Normalize(g *Grid) *Grid {
	distinct := make(map[int]bool)
	for _, cell := range g.Cells {
		if cell.IsNumber() {
			distinct[cell.Value] = true
		}
	}

	values := make([]int, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Ints(values)

	rank := make(map[int]int, len(values))
	for i, v := range values {
		rank[v] = i + 1
	}

	out := g.Clone()
	for i, cell := range out.Cells {
		if cell.IsNumber() {
			out.Cells[i] = Number(rank[cell.Value])
		}
	}
	return out
}
