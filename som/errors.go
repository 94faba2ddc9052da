package som

import "github.com/cjdb01/nnk/dataset"

// The trainer shares its input sentinels with package dataset, so a single
// errors.Is check works whether a failure came from reading or from New.
var (
	// ErrInvalidInput indicates an empty or malformed input source, or a
	// hyperparameter outside its domain. No Trainer is returned with it.
	ErrInvalidInput = dataset.ErrInvalidInput

	// ErrDimensionMismatch indicates a vector whose component count differs
	// from Config.InputSize. It also matches ErrInvalidInput.
	ErrDimensionMismatch = dataset.ErrDimensionMismatch
)
