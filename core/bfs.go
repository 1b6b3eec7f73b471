package core

// MinMoves returns the minimum number of merges needed to reduce the
// grid to a single tile, searching up to the default move limit. The
// second result is false when no solution exists within the budget;
// that is the expected outcome for unsolvable boards, not an error.
// A board with at most one tile needs 0 moves.
func MinMoves(g *Grid) (int, bool) {
	return MinMovesWithin(g, DefaultMoveLimit(g.Occupied()))
}

// MinMovesWithin is MinMoves with an explicit move budget.
//
// The traversal is breadth-first, so the first single-tile state
// produced is reached in the minimal number of moves. It shares the
// transition function with SolvableWithin but deliberately not its
// memo: level-order expansion is what buys minimality, while the
// depth-first search only proves a path exists.
func MinMovesWithin(g *Grid, moveLimit int) (int, bool) {
	state := Tiles(g)
	if len(state) <= 1 {
		return 0, true
	}

	type entry struct {
		state State
		moves int
	}

	queue := []entry{{state: state}}
	visited := map[string]bool{state.Key(): true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.moves >= moveLimit {
			continue
		}

		for _, m := range cur.state.Moves() {
			next := cur.state.Apply(m)
			if len(next) == 1 {
				return cur.moves + 1, true
			}
			key := next.Key()
			if !visited[key] {
				visited[key] = true
				queue = append(queue, entry{state: next, moves: cur.moves + 1})
			}
		}
	}

	return 0, false
}
