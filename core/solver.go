package core

// MaxMoveLimit caps the search budget regardless of tile count.
const MaxMoveLimit = 50

// DefaultMoveLimit returns the default search budget for a board with
// the given tile count: min(2*tileCount, MaxMoveLimit). The factor of
// two is a tuned heuristic rather than a derived bound; in practice
// solvable boards resolve well inside it, and the cap keeps the search
// bounded on large boards.
func DefaultMoveLimit(tileCount int) int {
	limit := 2 * tileCount
	if limit > MaxMoveLimit {
		return MaxMoveLimit
	}
	return limit
}

// Solvable reports whether some sequence of merges reduces the grid to
// a single tile, searching up to the default move limit. A board with
// at most one tile is trivially solvable.
func Solvable(g *Grid) bool {
	return SolvableWithin(g, DefaultMoveLimit(g.Occupied()))
}

// SolvableWithin is Solvable with an explicit move budget. A false
// verdict means "unsolvable within the budget"; exhausting the budget
// is a normal outcome, not an error.
func SolvableWithin(g *Grid, moveLimit int) bool {
	state := Tiles(g)
	if len(state) <= 1 {
		return true
	}
	s := newSolver(moveLimit)
	return s.solve(state, 0)
}

// solver carries the memo tables for a single search invocation.
// A verdict depends on the budget remaining when a state is reached,
// so a plain key -> bool cache would be unsound: a false computed with
// little budget left must not veto the same state visited again with
// more budget to spend. proven maps a key to the smallest budget known
// to suffice; failed maps a key to the largest budget known to be
// insufficient. Both directions are safe to reuse.
type solver struct {
	limit  int
	proven map[string]int
	failed map[string]int
}

func newSolver(limit int) *solver {
	return &solver{
		limit:  limit,
		proven: make(map[string]int),
		failed: make(map[string]int),
	}
}

func (s *solver) solve(state State, depthUsed int) bool {
	if len(state) == 1 {
		return true
	}
	if depthUsed >= s.limit {
		return false
	}
	remaining := s.limit - depthUsed

	key := state.Key()
	if sufficient, ok := s.proven[key]; ok && remaining >= sufficient {
		return true
	}
	if insufficient, ok := s.failed[key]; ok && remaining <= insufficient {
		return false
	}

	// A state with tiles but no legal moves falls through the loop and
	// is recorded as a dead end.
	for _, m := range state.Moves() {
		if s.solve(state.Apply(m), depthUsed+1) {
			if prev, ok := s.proven[key]; !ok || remaining < prev {
				s.proven[key] = remaining
			}
			return true
		}
	}

	if prev, ok := s.failed[key]; !ok || remaining > prev {
		s.failed[key] = remaining
	}
	return false
}
