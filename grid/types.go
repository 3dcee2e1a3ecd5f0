package grid

import "errors"

// ErrInvalidSide indicates a lattice side length n ≤ 0.
var ErrInvalidSide = errors.New("grid: side length must be at least 1")

// None marks an absent neighbor (beyond the left or right edge).
const None = -1

// Direction indexes the array returned by Lattice.Neighbors.
type Direction int

const (
	// Up is the site in the previous row (or Top on row 1).
	Up Direction = iota
	// Right is the site in the next column (None on column n).
	Right
	// Down is the site in the next row (or Bottom on row n).
	Down
	// Left is the site in the previous column (None on column 1).
	Left
)

// Lattice is an immutable square grid geometry. The zero value is unusable;
// build one with New.
type Lattice struct {
	n int
}
