package dataset

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// Vector is one input vector.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Set is an ordered, immutable collection of equally sized vectors.
// The zero value is not usable; build a Set with New or Read.
type Set struct {
	width   int
	vectors []Vector
}

// New builds a Set of the given width, deep-copying vectors.
//
// Errors:
//   - ErrInvalidInput when width < 1 or a component is NaN/±Inf.
//   - ErrDimensionMismatch when a vector's length differs from width.
//   - ErrEmpty when no vectors are given.
func New(width int, vectors ...Vector) (*Set, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "width %d", width)
	}
	if len(vectors) == 0 {
		return nil, ErrEmpty
	}
	s := &Set{width: width, vectors: make([]Vector, 0, len(vectors))}
	for i, v := range vectors {
		if err := s.check(v); err != nil {
			return nil, errors.Wrapf(err, "vector %d", i)
		}
		s.vectors = append(s.vectors, v.Clone())
	}

	return s, nil
}

// check validates arity and finiteness of v against the set's width.
func (s *Set) check(v Vector) error {
	if len(v) != s.width {
		return errors.Wrapf(ErrDimensionMismatch, "got %d components, want %d", len(v), s.width)
	}
	for k, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Wrapf(ErrInvalidInput, "component %d is not finite", k)
		}
	}

	return nil
}

// Len returns the number of vectors.
func (s *Set) Len() int { return len(s.vectors) }

// Width returns the component count shared by every vector.
func (s *Set) Width() int { return s.width }

// At returns a copy of the i-th vector. It panics if i is out of range, like
// a slice index.
func (s *Set) At(i int) Vector {
	return s.vectors[i].Clone()
}

// Row returns the i-th vector without copying. The result is shared with the
// Set and must not be modified.
func (s *Set) Row(i int) Vector {
	return s.vectors[i]
}

// All yields (index, vector) pairs in read order. The vectors are shared
// with the Set and must not be modified.
func (s *Set) All() iter.Seq2[int, Vector] {
	return func(yield func(int, Vector) bool) {
		for i, v := range s.vectors {
			if !yield(i, v) {
				return
			}
		}
	}
}
