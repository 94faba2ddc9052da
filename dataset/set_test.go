package dataset_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/cjdb01/nnk/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	src := dataset.Vector{1, 2}
	s, err := dataset.New(2, src, dataset.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	src[0] = 99 // New deep-copies
	assert.Equal(t, dataset.Vector{1, 2}, s.At(0))

	got := s.At(1)
	got[0] = -1 // At returns a copy
	assert.Equal(t, dataset.Vector{3, 4}, s.At(1))

	_, err = dataset.New(2)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
	_, err = dataset.New(2, dataset.Vector{1, 2, 3})
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
	_, err = dataset.New(2, dataset.Vector{1, math.Inf(1)})
	assert.ErrorIs(t, err, dataset.ErrInvalidInput)
	_, err = dataset.New(0, dataset.Vector{})
	assert.ErrorIs(t, err, dataset.ErrInvalidInput)
}

func TestAll(t *testing.T) {
	s, err := dataset.New(2, dataset.Vector{0, 0}, dataset.Vector{1, 1}, dataset.Vector{2, 4})
	require.NoError(t, err)

	var idx []int
	for i := range s.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	// Row shares storage with the set; All stops on break.
	assert.Equal(t, dataset.Vector{2, 4}, s.Row(2))
	var n int
	for range s.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestWriteRoundTrip checks Write output parses back to the same values.
func TestWriteRoundTrip(t *testing.T) {
	rows := [][]float64{{0.1, -2}, {1e-7, 3.25}}
	var b strings.Builder
	require.NoError(t, dataset.Write(&b, slices.Values(rows)))
	assert.Equal(t, "0.1 -2\n1e-07 3.25\n", b.String())

	s, err := dataset.Read(strings.NewReader(b.String()), 2, dataset.WithLineRecords())
	require.NoError(t, err)
	assert.Equal(t, dataset.Vector(rows[1]), s.At(1))
}
