package som_test

import (
	"testing"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/som"
	"github.com/stretchr/testify/require"
)

// mustSet builds a dataset of the given width or fails the test.
func mustSet(t testing.TB, width int, vs ...dataset.Vector) *dataset.Set {
	t.Helper()
	s, err := dataset.New(width, vs...)
	require.NoError(t, err)

	return s
}

// mustTrainer builds a trainer or fails the test.
func mustTrainer(t testing.TB, set *dataset.Set, cfg som.Config, opts ...som.Option) *som.Trainer {
	t.Helper()
	tr, err := som.New(set, cfg, opts...)
	require.NoError(t, err)

	return tr
}

// corners is a four-cluster 2-D set around the corners of the unit square.
func corners() []dataset.Vector {
	return []dataset.Vector{
		{0, 0}, {0.05, 0.02}, {0.02, 0.04},
		{1, 0}, {0.97, 0.03}, {0.95, 0.01},
		{0, 1}, {0.03, 0.98}, {0.01, 0.96},
		{1, 1}, {0.98, 0.97}, {0.96, 0.99},
	}
}
