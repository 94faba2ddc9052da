package dataset

import "errors"

// inputError is a sentinel that also matches its parent class under errors.Is.
type inputError struct {
	msg    string
	parent error
}

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Unwrap() error { return e.parent }

var (
	// ErrInvalidInput indicates a malformed data source: a non-numeric or
	// non-finite token, an empty source, or an invalid record width.
	ErrInvalidInput = errors.New("dataset: invalid input")

	// ErrDimensionMismatch indicates a record whose component count differs
	// from the expected width. It matches ErrInvalidInput.
	ErrDimensionMismatch error = &inputError{"dataset: record arity does not match input size", ErrInvalidInput}

	// ErrEmpty indicates the source yielded zero records. It matches ErrInvalidInput.
	ErrEmpty error = &inputError{"dataset: no input vectors", ErrInvalidInput}
)
