// Package core provides the board model and search logic for the
// onetile merge puzzle. This package is UI-agnostic and deterministic:
// nothing here performs I/O, and no function mutates its input.
package core

// Kind identifies what occupies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumber
	KindWildcard
)

// String returns the string representation of a cell kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNumber:
		return "Number"
	case KindWildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell in the grid.
type Cell struct {
	Kind  Kind
	Value int // Valid only when Kind is KindNumber
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// Number returns a numeric cell with the given value.
// Values are expected to be positive; constructors do not validate,
// the level codec does.
func Number(n int) Cell {
	return Cell{Kind: KindNumber, Value: n}
}

// Wild returns a wildcard cell.
func Wild() Cell {
	return Cell{Kind: KindWildcard}
}

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool {
	return c.Kind == KindNumber
}

// IsWild reports whether the cell holds a wildcard.
func (c Cell) IsWild() bool {
	return c.Kind == KindWildcard
}
