package som

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cjdb01/nnk/grid"
)

// Winner returns the best-matching cell for v: the first cell in row-major
// order whose weight vector is closest to v.
func (t *Trainer) Winner(v []float64) (grid.Coord, error) {
	if err := t.checkInput(v); err != nil {
		return grid.Coord{}, err
	}
	t.compete(v, t.dist)

	return t.grid.Coordinate(argmin(t.dist))
}

// QuantizationError is the mean Euclidean distance between each input and
// the weight vector of its best-matching cell.
func (t *Trainer) QuantizationError() float64 {
	var sum float64
	for _, v := range t.inputs.All() {
		t.compete(v, t.dist)
		sum += floats.Distance(v, t.cells[argmin(t.dist)], 2)
	}

	return sum / float64(t.inputs.Len())
}

// TopographicError is the share of inputs whose best and second-best cells
// are not 8-neighbors on the grid. A single-cell grid has no second-best cell
// and reports 0.
func (t *Trainer) TopographicError() float64 {
	if t.grid.Len() < 2 {
		return 0
	}
	var bad int
	for _, v := range t.inputs.All() {
		t.compete(v, t.dist)
		first, second := bestTwo(t.dist)
		a, _ := t.grid.Coordinate(first)
		b, _ := t.grid.Coordinate(second)
		if !grid.Adjacent(a, b, grid.Conn8) {
			bad++
		}
	}

	return float64(bad) / float64(t.inputs.Len())
}

// bestTwo returns the indices of the smallest and second-smallest entries,
// first occurrence winning ties. len(xs) must be at least 2.
func bestTwo(xs []float64) (first, second int) {
	first, second = -1, -1
	b1, b2 := math.Inf(1), math.Inf(1)
	for j, x := range xs {
		switch {
		case first < 0 || x < b1:
			second, b2 = first, b1
			first, b1 = j, x
		case second < 0 || x < b2:
			second, b2 = j, x
		}
	}

	return first, second
}

// Clusters groups 4-neighboring cells whose weight vectors lie within maxDist
// (Euclidean) of each other into connected regions of the grid. Every cell
// belongs to exactly one cluster; regions are ordered by their first cell in
// row-major order.
func (t *Trainer) Clusters(maxDist float64) [][]grid.Coord {
	return t.grid.Components(grid.Conn4, func(i, j int) bool {
		return floats.Distance(t.cells[i], t.cells[j], 2) <= maxDist
	})
}
