package core

import (
	"errors"
	"fmt"
)

// Generation failure sentinels. Both mean "no grid", reported as a
// definite result rather than a panic: ErrInvalidParams wraps a
// description of the offending field, ErrNoSolvableGrid reports an
// exhausted attempt budget. Callers branch with errors.Is.
var (
	ErrInvalidParams  = errors.New("invalid generator params")
	ErrNoSolvableGrid = errors.New("no solvable grid found within attempt budget")
)

// GenParams configures level generation.
type GenParams struct {
	GridSize  int // Side length of the square board
	TileCount int // Occupied cells to place, in (0, GridSize*GridSize]
	MinValue  int // Smallest numeric value (inclusive), >= 1
	MaxValue  int // Largest numeric value (inclusive)
	Wildcards int // How many placed tiles become wildcards, <= TileCount

	// Generation limits
	MaxAttempts int // Retry budget for the generate-and-test loop
	MoveLimit   int // Solvability budget per candidate; 0 derives the default

	Seed uint64 // Seed for the default RNG, used when Rand is nil
	Rand Rand   // Randomness source; nil means NewRNG(Seed)
}

// DefaultGenParams returns sensible defaults for level generation.
func DefaultGenParams() GenParams {
	return GenParams{
		GridSize:    3,
		TileCount:   5,
		MinValue:    1,
		MaxValue:    7,
		Wildcards:   0,
		MaxAttempts: 300,
		MoveLimit:   0,
		Seed:        0,
	}
}

func (p GenParams) validate() error {
	if p.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidParams, p.GridSize)
	}
	if p.TileCount < 1 || p.TileCount > p.GridSize*p.GridSize {
		return fmt.Errorf("%w: %d tiles on a %dx%d board", ErrInvalidParams, p.TileCount, p.GridSize, p.GridSize)
	}
	if p.MinValue < 1 || p.MaxValue < p.MinValue {
		return fmt.Errorf("%w: value range [%d, %d]", ErrInvalidParams, p.MinValue, p.MaxValue)
	}
	if p.Wildcards < 0 || p.Wildcards > p.TileCount {
		return fmt.Errorf("%w: %d wildcards for %d tiles", ErrInvalidParams, p.Wildcards, p.TileCount)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d", ErrInvalidParams, p.MaxAttempts)
	}
	return nil
}

// Generate produces a random board that is proven solvable, or reports
// failure after the attempt budget runs out. Each attempt places
// TileCount tiles on distinct cells chosen uniformly, assigns uniform
// values in [MinValue, MaxValue] (the first Wildcards of the shuffled
// selection become wildcards), discards boards with no mergeable pair
// without running the solver, and accepts the first candidate the
// solver proves solvable. Accepted boards are returned normalized.
//
// Generation is a pure function of the supplied randomness: the same
// seed always yields the same board.
func Generate(p GenParams) (*Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rng := p.Rand
	if rng == nil {
		rng = NewRNG(p.Seed)
	}
	limit := p.MoveLimit
	if limit <= 0 {
		limit = DefaultMoveLimit(p.TileCount)
	}

	cellCount := p.GridSize * p.GridSize
	indices := make([]int, cellCount)
	span := p.MaxValue - p.MinValue + 1

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		g := NewGrid(p.GridSize)

		// Partial Fisher-Yates: after TileCount swaps the prefix is a
		// uniform sample of distinct cells.
		for i := range indices {
			indices[i] = i
		}
		for i := 0; i < p.TileCount; i++ {
			j := i + rng.IntN(cellCount-i)
			indices[i], indices[j] = indices[j], indices[i]
		}

		for i := 0; i < p.TileCount; i++ {
			pos := C(indices[i]/p.GridSize, indices[i]%p.GridSize)
			if i < p.Wildcards {
				g.Set(pos, Wild())
			} else {
				g.Set(pos, Number(p.MinValue+rng.IntN(span)))
			}
		}

		// The pair test only applies to boards that still need a merge;
		// a single tile has no pair yet is already solved.
		if p.TileCount > 1 && !Tiles(g).HasMergeablePair() {
			continue
		}
		if g.Occupied() != p.TileCount {
			// Should not happen, but safety check
			continue
		}
		if SolvableWithin(g, limit) {
			return Normalize(g), nil
		}
	}

	return nil, ErrNoSolvableGrid
}
