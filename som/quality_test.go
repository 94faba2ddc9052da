package som_test

import (
	"math"
	"testing"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/grid"
	"github.com/cjdb01/nnk/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinner_Errors(t *testing.T) {
	tr := mustTrainer(t, mustSet(t, 2, dataset.Vector{0, 0}), som.DefaultConfig(), som.WithSeed(1))
	_, err := tr.Winner([]float64{1})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)
}

func TestQuantizationError_SingleCell(t *testing.T) {
	cfg := som.Config{InputSize: 2, Width: 1, Height: 1, LearningRate: 1, NbdWidth: 1}
	tr := mustTrainer(t, mustSet(t, 2, dataset.Vector{3, 4}), cfg, som.WithSeed(1))

	// lr=1 moves the only cell onto the only input.
	tr.Train(1)
	assert.InDelta(t, 0, tr.QuantizationError(), 1e-12)
}

func TestTopographicError(t *testing.T) {
	tr := mustTrainer(t, mustSet(t, 2, corners()...), som.DefaultConfig(), som.WithSeed(6))
	tr.Train(10)
	te := tr.TopographicError()
	assert.GreaterOrEqual(t, te, 0.0)
	assert.LessOrEqual(t, te, 1.0)

	cfg := som.DefaultConfig()
	cfg.Width, cfg.Height = 1, 1
	single := mustTrainer(t, mustSet(t, 2, corners()...), cfg, som.WithSeed(6))
	assert.Zero(t, single.TopographicError())
}

// TestClusters covers the two extremes of the link threshold.
func TestClusters(t *testing.T) {
	tr := mustTrainer(t, mustSet(t, 2, corners()...), som.DefaultConfig(), som.WithSeed(2))
	n := tr.Grid().Len()

	one := tr.Clusters(math.Inf(1))
	require.Len(t, one, 1)
	assert.Len(t, one[0], n)
	assert.Equal(t, grid.Coord{}, one[0][0])

	all := tr.Clusters(-1)
	require.Len(t, all, n)
	for j, c := range all {
		require.Len(t, c, 1)
		want, err := tr.Grid().Coordinate(j)
		require.NoError(t, err)
		assert.Equal(t, want, c[0])
	}
}
