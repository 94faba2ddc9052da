// Package matrix provides the row-major dense storage behind a self-organizing
// map's weight grid.
//
// What:
//
//   - Dense: an r×c float64 matrix in one flat slice (offset = i*c + j).
//   - Row accessors (Row/SetRow) that return sentinel errors instead of
//     panicking on bad indices or non-finite values.
//   - Aliased row access (RawRow) for hot loops that update a whole weight
//     vector at once, and Clone for one-buffer snapshots.
//   - Centralized validators (ValidateSameShape, ValidateVecLen,
//     ValidateFinite).
//
// Layout used by the SOM trainer:
//
//	row k  = one grid cell (k = x*Height + y)
//	col j  = j-th component of that cell's weight vector
//
// Complexity:
//
//   - NewDense: O(r*c); RawRow: O(1); Row/SetRow: O(c); Clone/Apply: O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive shape on construction.
//   - ErrOutOfRange: row or column index outside bounds.
//   - ErrDimensionMismatch: vector/matrix shapes disagree.
//   - ErrNaNInf: NaN or ±Inf written under the finite-only policy.
//   - ErrNilMatrix: nil vector argument.
package matrix
