// Package formats provides pluggable level file format codecs.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/onetile/core"
)

// ValidationError contains details about a malformed level record.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Level is a level record as stored on disk: the board paired with its
// size and par (the minimal move count computed at authoring time).
type Level struct {
	ID       int               `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size"`
	Par      int               `yaml:"par"`
	Tiles    []Tile            `yaml:"tiles"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Tile is a single occupied cell in a level record. A tile is either
// numeric (value >= 1) or a wildcard, never both.
type Tile struct {
	Row   int  `yaml:"row"`
	Col   int  `yaml:"col"`
	Value int  `yaml:"value,omitempty"`
	Wild  bool `yaml:"wild,omitempty"`
}

// ParseYAML parses and validates a YAML level record.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// EncodeYAML renders a level record as YAML.
func EncodeYAML(l Level) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks the record's structural invariants.
func (l Level) Validate() error {
	if l.Size < 1 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("grid size %d, must be at least 1", l.Size),
		}
	}
	if l.Par < 0 {
		return ValidationError{
			Code:    "BAD_PAR",
			Message: fmt.Sprintf("par %d, must not be negative", l.Par),
		}
	}

	seen := make(map[core.Coord]bool, len(l.Tiles))
	for _, t := range l.Tiles {
		pos := core.C(t.Row, t.Col)
		if t.Row < 0 || t.Row >= l.Size || t.Col < 0 || t.Col >= l.Size {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("tile %v outside a %dx%d grid", pos, l.Size, l.Size),
			}
		}
		if seen[pos] {
			return ValidationError{
				Code:    "DUPLICATE_TILE",
				Message: fmt.Sprintf("more than one tile at %v", pos),
			}
		}
		seen[pos] = true

		switch {
		case t.Wild && t.Value != 0:
			return ValidationError{
				Code:    "BAD_VALUE",
				Message: fmt.Sprintf("tile %v is a wildcard but carries value %d", pos, t.Value),
			}
		case !t.Wild && t.Value < 1:
			return ValidationError{
				Code:    "EMPTY_TILE",
				Message: fmt.Sprintf("tile %v has neither a positive value nor wild", pos),
			}
		}
	}

	return nil
}

// Grid builds the board the record describes. The record is validated
// first, so a returned grid is always well-formed.
func (l Level) Grid() (*core.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGrid(l.Size)
	for _, t := range l.Tiles {
		if t.Wild {
			g.Set(core.C(t.Row, t.Col), core.Wild())
		} else {
			g.Set(core.C(t.Row, t.Col), core.Number(t.Value))
		}
	}
	return g, nil
}

// FromGrid builds a level record from a board, scanning in row-major
// order and omitting empty cells.
func FromGrid(g *core.Grid, id int, name string, par int) Level {
	l := Level{
		ID:   id,
		Name: name,
		Size: g.Size,
		Par:  par,
	}
	for _, t := range core.Tiles(g) {
		if t.Cell.IsWild() {
			l.Tiles = append(l.Tiles, Tile{Row: t.Pos.Row, Col: t.Pos.Col, Wild: true})
		} else {
			l.Tiles = append(l.Tiles, Tile{Row: t.Pos.Row, Col: t.Pos.Col, Value: t.Cell.Value})
		}
	}
	return l
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
