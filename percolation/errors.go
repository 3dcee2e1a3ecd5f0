package percolation

import "errors"

// ErrInvalidArgument indicates a non-positive side length or an out-of-range
// (row, col) pair.
var ErrInvalidArgument = errors.New("percolation: invalid argument")
