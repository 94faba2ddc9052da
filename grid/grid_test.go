package grid_test

import (
	"testing"

	"github.com/cjdb01/nnk/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty lattices.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

// TestInBounds checks InBounds on a 3×2 lattice.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Indexing Tests
//----------------------------------------------------------------------------//

// TestIndexRowMajor verifies X-outer, Y-inner ordering and the round trip.
func TestIndexRowMajor(t *testing.T) {
	g, err := grid.New(4, 2)
	require.NoError(t, err)

	idx, err := g.Index(grid.Coord{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = g.Index(grid.Coord{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 7, idx)

	for i := 0; i < g.Len(); i++ {
		c, err := g.Coordinate(i)
		require.NoError(t, err)
		back, err := g.Index(c)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}

	_, err = g.Index(grid.Coord{X: 4, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Coordinate(8)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Coordinate(-1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestCells verifies Cells visits every cell once in index order and honors early stop.
func TestCells(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	var order []grid.Coord
	for i, c := range g.Cells() {
		assert.Equal(t, len(order), i)
		order = append(order, c)
	}
	assert.Equal(t, []grid.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
	}, order)

	n := 0
	for range g.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

func TestSquaredDistance(t *testing.T) {
	a := grid.Coord{X: 0, Y: 0}
	assert.Equal(t, 0.0, grid.SquaredDistance(a, a))
	assert.Equal(t, 25.0, grid.SquaredDistance(a, grid.Coord{X: 3, Y: 4}))
	assert.Equal(t, 2.0, grid.SquaredDistance(grid.Coord{X: 2, Y: 2}, grid.Coord{X: 1, Y: 1}))
}

func TestNeighborsAndAdjacent(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	corner := grid.Coord{X: 0, Y: 0}
	assert.Equal(t, []grid.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbors(corner, grid.Conn4))
	assert.Len(t, g.Neighbors(corner, grid.Conn8), 3)
	assert.Len(t, g.Neighbors(grid.Coord{X: 1, Y: 1}, grid.Conn8), 8)

	assert.True(t, grid.Adjacent(corner, grid.Coord{X: 1, Y: 0}, grid.Conn4))
	assert.False(t, grid.Adjacent(corner, grid.Coord{X: 1, Y: 1}, grid.Conn4))
	assert.True(t, grid.Adjacent(corner, grid.Coord{X: 1, Y: 1}, grid.Conn8))
	assert.False(t, grid.Adjacent(corner, corner, grid.Conn8), "a cell is not its own neighbor")
	assert.False(t, grid.Adjacent(corner, grid.Coord{X: 2, Y: 0}, grid.Conn8))
}

//----------------------------------------------------------------------------//
// Components Tests
//----------------------------------------------------------------------------//

// TestComponents_AllLinked yields a single region covering every cell.
func TestComponents_AllLinked(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)

	comps := g.Components(grid.Conn4, func(i, j int) bool { return true })
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 12)
}

// TestComponents_NoneLinked yields one singleton per cell.
func TestComponents_NoneLinked(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	comps := g.Components(grid.Conn8, func(i, j int) bool { return false })
	require.Len(t, comps, 4)
	for _, c := range comps {
		assert.Len(t, c, 1)
	}
}

// TestComponents_DiagonalOnlyUnderConn8 checks connectivity selection.
func TestComponents_DiagonalOnlyUnderConn8(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	// indices: (0,0)=0 (0,1)=1 (1,0)=2 (1,1)=3; link only the 0–3 diagonal.
	diag := func(i, j int) bool { return i+j == 3 && i != j && (i == 0 || j == 0) }

	assert.Len(t, g.Components(grid.Conn4, diag), 4)
	assert.Len(t, g.Components(grid.Conn8, diag), 3)
}
