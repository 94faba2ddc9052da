package grid

import "errors"

var (
	// ErrEmptyGrid indicates a lattice with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: width and height must be at least 1")
	// ErrOutOfRange indicates a coordinate or cell index outside the lattice.
	ErrOutOfRange = errors.New("grid: cell out of range")
)
