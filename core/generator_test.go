package core

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultGenParams()
	p.Seed = 12345

	a, errA := Generate(p)
	b, errB := Generate(p)

	if (errA == nil) != (errB == nil) {
		t.Fatalf("same seed diverged: %v vs %v", errA, errB)
	}
	if errA != nil {
		return
	}
	if !a.Equal(b) {
		t.Errorf("same seed should produce the same board:\n%v\nvs\n%v", a, b)
	}
}

func TestGenerateWildcardWalk(t *testing.T) {
	// A full board of wildcards around one number always succeeds on
	// the first attempt: the number can absorb every wildcard in turn.
	p := GenParams{
		GridSize:    3,
		TileCount:   9,
		MinValue:    1,
		MaxValue:    7,
		Wildcards:   8,
		MaxAttempts: 1,
		Seed:        7,
	}

	g, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if g.Size != 3 {
		t.Errorf("Size = %d, want 3", g.Size)
	}
	if got := g.Occupied(); got != 9 {
		t.Errorf("Occupied() = %d, want 9", got)
	}

	wilds, numbers := 0, 0
	for _, cell := range g.Cells {
		switch cell.Kind {
		case KindWildcard:
			wilds++
		case KindNumber:
			numbers++
			if cell.Value != 1 {
				t.Errorf("lone number should normalize to 1, got %d", cell.Value)
			}
		}
	}
	if wilds != 8 || numbers != 1 {
		t.Errorf("got %d wildcards and %d numbers, want 8 and 1", wilds, numbers)
	}

	if !Solvable(g) {
		t.Error("generated board must be solvable")
	}
}

func TestGenerateProperties(t *testing.T) {
	// The standard config either yields a valid board or the definite
	// no-result sentinel, never anything in between.
	for _, seed := range []uint64{1, 2, 3, 99, 12345} {
		p := DefaultGenParams()
		p.Seed = seed

		g, err := Generate(p)
		if err != nil {
			if !errors.Is(err, ErrNoSolvableGrid) {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			continue
		}

		if g.Size != p.GridSize {
			t.Errorf("seed %d: Size = %d, want %d", seed, g.Size, p.GridSize)
		}
		if got := g.Occupied(); got != p.TileCount {
			t.Errorf("seed %d: Occupied() = %d, want %d", seed, got, p.TileCount)
		}
		if !Solvable(g) {
			t.Errorf("seed %d: generated board is not solvable:\n%v", seed, g)
		}
		assertNormalized(t, g)
	}
}

func TestGenerateSingleTile(t *testing.T) {
	p := GenParams{
		GridSize:    2,
		TileCount:   1,
		MinValue:    1,
		MaxValue:    5,
		MaxAttempts: 1,
	}

	g, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := g.Occupied(); got != 1 {
		t.Errorf("Occupied() = %d, want 1", got)
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	base := DefaultGenParams()

	tests := []struct {
		name   string
		mutate func(*GenParams)
	}{
		{name: "zero grid size", mutate: func(p *GenParams) { p.GridSize = 0 }},
		{name: "zero tiles", mutate: func(p *GenParams) { p.TileCount = 0 }},
		{name: "too many tiles", mutate: func(p *GenParams) { p.TileCount = 10 }},
		{name: "zero min value", mutate: func(p *GenParams) { p.MinValue = 0 }},
		{name: "inverted value range", mutate: func(p *GenParams) { p.MinValue = 5; p.MaxValue = 3 }},
		{name: "negative wildcards", mutate: func(p *GenParams) { p.Wildcards = -1 }},
		{name: "more wildcards than tiles", mutate: func(p *GenParams) { p.Wildcards = 6 }},
		{name: "zero attempts", mutate: func(p *GenParams) { p.MaxAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			_, err := Generate(p)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Generate = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	// Equal values never merge, so no candidate can pass the pair
	// pre-filter and the budget must run out.
	p := GenParams{
		GridSize:    2,
		TileCount:   2,
		MinValue:    5,
		MaxValue:    5,
		MaxAttempts: 50,
	}

	_, err := Generate(p)
	if !errors.Is(err, ErrNoSolvableGrid) {
		t.Fatalf("Generate = %v, want ErrNoSolvableGrid", err)
	}
}

func TestGenerateCustomRand(t *testing.T) {
	p := GenParams{
		GridSize:    2,
		TileCount:   2,
		MinValue:    1,
		MaxValue:    3,
		Wildcards:   1,
		MaxAttempts: 10,
	}

	p.Rand = rand.New(rand.NewPCG(1, 2))
	a, errA := Generate(p)

	p.Rand = rand.New(rand.NewPCG(1, 2))
	b, errB := Generate(p)

	if errA != nil || errB != nil {
		t.Fatalf("Generate with injected source: %v, %v", errA, errB)
	}
	if !a.Equal(b) {
		t.Errorf("identical sources should produce identical boards:\n%v\nvs\n%v", a, b)
	}
}

// assertNormalized checks that the numeric values on the board are
// exactly 1..k for k distinct values.
func assertNormalized(t *testing.T, g *Grid) {
	t.Helper()

	distinct := make(map[int]bool)
	for _, cell := range g.Cells {
		if cell.IsNumber() {
			distinct[cell.Value] = true
		}
	}
	for i := 1; i <= len(distinct); i++ {
		if !distinct[i] {
			t.Errorf("values are not consecutive from 1: missing %d in %v", i, distinct)
			return
		}
	}
}
