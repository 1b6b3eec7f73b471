package core

// Move is a single merge: the source tile is dragged onto the target.
type Move struct {
	Src Tile
	Dst Tile
}

// CanMerge reports whether dragging src onto dst is a legal merge:
//   - src and dst must be adjacent (Chebyshev distance exactly 1)
//   - src must not be a wildcard (wildcards are merged into, never dragged)
//   - a numeric src merges into a wildcard dst unconditionally
//   - two numeric tiles merge iff their values differ by exactly 1
//
// Everything else, wildcard onto wildcard included, is illegal.
func CanMerge(src, dst Tile) bool {
	if !src.Pos.Adjacent(dst.Pos) {
		return false
	}
	if !src.Cell.IsNumber() {
		return false
	}
	switch dst.Cell.Kind {
	case KindWildcard:
		return true
	case KindNumber:
		return abs(src.Cell.Value-dst.Cell.Value) == 1
	default:
		return false
	}
}

// Apply performs a merge and returns the resulting state: both tiles
// are removed and a new tile carrying the source's value appears at
// the target's position. The result always has exactly one fewer tile.
// The receiver is not modified.
func (s State) Apply(m Move) State {
	next := make(State, 0, len(s)-1)
	for _, t := range s {
		if t.Pos == m.Src.Pos || t.Pos == m.Dst.Pos {
			continue
		}
		next = append(next, t)
	}
	return append(next, Tile{Pos: m.Dst.Pos, Cell: m.Src.Cell})
}

// Moves enumerates every legal merge from the state: all ordered pairs
// of distinct tiles satisfying CanMerge. Enumeration order is
// deterministic (index order) and only influences which witness path a
// depth-first search happens to find first.
func (s State) Moves() []Move {
	moves := make([]Move, 0)
	for i, src := range s {
		for j, dst := range s {
			if i == j {
				continue
			}
			if CanMerge(src, dst) {
				moves = append(moves, Move{Src: src, Dst: dst})
			}
		}
	}
	return moves
}

// HasMergeablePair reports whether at least one legal merge exists.
// A mergeable pair is necessary but not sufficient for solvability,
// which makes this the generator's cheap rejection test.
func (s State) HasMergeablePair() bool {
	for i, src := range s {
		for j, dst := range s {
			if i != j && CanMerge(src, dst) {
				return true
			}
		}
	}
	return false
}
