// Package dataset holds the input vectors a self-organizing map is trained on
// and reads them from plain text.
//
// Input format:
//
//	whitespace-separated numeric tokens, grouped into records of exactly
//	width tokens. Records may span or share lines; end of stream fixes the
//	number of records. With WithLineRecords every non-blank line is one record.
//
// Errors:
//
//   - ErrInvalidInput: malformed or non-finite token, or an invalid width.
//   - ErrDimensionMismatch: a record whose arity differs from the width.
//   - ErrEmpty: the source yielded no records.
//
// ErrDimensionMismatch and ErrEmpty both match ErrInvalidInput under
// errors.Is, so callers that only care about "bad input" need one check.
package dataset
