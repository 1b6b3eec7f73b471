package formats

import (
	"testing"

	"github.com/mkravets/onetile/core"
)

const sampleYAML = `
id: 3
name: "First Steps"
size: 3
par: 2
tiles:
  - {row: 0, col: 0, value: 1}
  - {row: 0, col: 1, value: 2}
  - {row: 1, col: 1, wild: true}
metadata:
  author: "tests"
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if l.ID != 3 || l.Name != "First Steps" || l.Size != 3 || l.Par != 2 {
		t.Errorf("header = %d %q %d %d, want 3 \"First Steps\" 3 2", l.ID, l.Name, l.Size, l.Par)
	}
	if len(l.Tiles) != 3 {
		t.Fatalf("tiles = %d, want 3", len(l.Tiles))
	}
	if l.Metadata["author"] != "tests" {
		t.Errorf("metadata author = %q, want tests", l.Metadata["author"])
	}

	g, err := l.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if got := g.Get(core.C(0, 1)); got != core.Number(2) {
		t.Errorf("cell (0,1) = %v, want Number(2)", got)
	}
	if got := g.Get(core.C(1, 1)); !got.IsWild() {
		t.Errorf("cell (1,1) = %v, want wildcard", got)
	}
	if got := g.Occupied(); got != 3 {
		t.Errorf("Occupied() = %d, want 3", got)
	}
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	if _, err := ParseYAML([]byte("{not yaml")); err == nil {
		t.Error("ParseYAML should reject malformed input")
	}
}

func TestValidate(t *testing.T) {
	valid := Level{
		ID:   1,
		Size: 2,
		Par:  1,
		Tiles: []Tile{
			{Row: 0, Col: 0, Value: 1},
			{Row: 1, Col: 1, Wild: true},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Level)
		code   string
	}{
		{
			name:   "zero size",
			mutate: func(l *Level) { l.Size = 0 },
			code:   "BAD_SIZE",
		},
		{
			name:   "negative par",
			mutate: func(l *Level) { l.Par = -1 },
			code:   "BAD_PAR",
		},
		{
			name:   "tile out of bounds",
			mutate: func(l *Level) { l.Tiles[0].Col = 2 },
			code:   "OUT_OF_BOUNDS",
		},
		{
			name:   "negative coordinate",
			mutate: func(l *Level) { l.Tiles[0].Row = -1 },
			code:   "OUT_OF_BOUNDS",
		},
		{
			name:   "duplicate position",
			mutate: func(l *Level) { l.Tiles[1] = Tile{Row: 0, Col: 0, Value: 2} },
			code:   "DUPLICATE_TILE",
		},
		{
			name:   "wildcard with value",
			mutate: func(l *Level) { l.Tiles[1].Value = 4 },
			code:   "BAD_VALUE",
		},
		{
			name:   "tile with nothing on it",
			mutate: func(l *Level) { l.Tiles[0].Value = 0 },
			code:   "EMPTY_TILE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			l.Tiles = append([]Tile(nil), valid.Tiles...)
			tt.mutate(&l)

			err := l.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			verr, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s", verr.Code, tt.code)
			}
		})
	}
}

func TestFromGridRoundTrip(t *testing.T) {
	g := core.NewGrid(2)
	g.Set(core.C(0, 0), core.Number(1))
	g.Set(core.C(1, 1), core.Wild())

	record := FromGrid(g, 7, "round trip", 1)

	data, err := EncodeYAML(record)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	parsed, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if parsed.ID != 7 || parsed.Par != 1 {
		t.Errorf("header = %d par %d, want 7 par 1", parsed.ID, parsed.Par)
	}

	back, err := parsed.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("round trip changed the board:\n%v\nvs\n%v", back, g)
	}
}

func TestEncodeYAMLRejectsInvalid(t *testing.T) {
	bad := Level{ID: 1, Size: 0}
	if _, err := EncodeYAML(bad); err == nil {
		t.Error("EncodeYAML should refuse an invalid record")
	}
}
