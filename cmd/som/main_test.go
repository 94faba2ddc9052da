package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrids(t *testing.T) {
	got, err := parseGrids("4x2, 4X4,1x1,")
	require.NoError(t, err)
	assert.Equal(t, []gridShape{{4, 2}, {4, 4}, {1, 1}}, got)
	assert.Equal(t, "4x2", got[0].String())

	for _, bad := range []string{"", ",", "4", "0x2", "4x-1", "ax2", "4x2x1"} {
		_, err = parseGrids(bad)
		assert.Error(t, err, bad)
	}
}

func TestRun(t *testing.T) {
	set, err := dataset.Read(strings.NewReader("0 0 1 1 0.5 0.5 0.2 0.9"), 2)
	require.NoError(t, err)

	rc := runConfig{
		base:    som.DefaultConfig(),
		grids:   []gridShape{{4, 2}, {1, 1}, {2, 3}},
		epochs:  2,
		seed:    7,
		workers: 1,
	}
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, set, rc))

	blocks := strings.Split(out.String(), "\n\n")
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		lines := strings.Split(strings.TrimSuffix(b, "\n"), "\n")
		assert.Len(t, lines, rc.grids[i].width*rc.grids[i].height)
	}

	// Same seed, same output.
	var again bytes.Buffer
	require.NoError(t, run(context.Background(), &again, set, rc))
	assert.Equal(t, out.String(), again.String())
}

func TestRun_Errors(t *testing.T) {
	set, err := dataset.Read(strings.NewReader("0 0 1 1"), 2)
	require.NoError(t, err)

	rc := runConfig{base: som.DefaultConfig(), grids: []gridShape{{2, 2}}, epochs: 1, workers: 1}
	rc.base.LearningRate = -1
	assert.ErrorIs(t, run(context.Background(), &bytes.Buffer{}, set, rc), som.ErrInvalidInput)

	rc.base = som.DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, run(ctx, &bytes.Buffer{}, set, rc), context.Canceled)
}
