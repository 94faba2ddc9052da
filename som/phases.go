package som

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cjdb01/nnk/grid"
	"github.com/cjdb01/nnk/matrix"
	"github.com/cjdb01/nnk/parallel"
)

// checkInput validates arity and finiteness of an externally supplied vector.
func (t *Trainer) checkInput(v []float64) error {
	if err := matrix.ValidateVecLen(v, t.cfg.InputSize); err != nil {
		return fmt.Errorf("som: input has %d components, want %d: %w", len(v), t.cfg.InputSize, ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(v); err != nil {
		return fmt.Errorf("som: %w: %w", ErrInvalidInput, err)
	}

	return nil
}

// Compete returns the squared Euclidean distance from v to every cell's
// weight vector, in row-major grid order. All values are >= 0.
//
// Errors: ErrDimensionMismatch for a vector of the wrong arity,
// ErrInvalidInput for non-finite components.
func (t *Trainer) Compete(v []float64) ([]float64, error) {
	if err := t.checkInput(v); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.cells))
	t.compete(v, out)

	return out, nil
}

// compete fills dist with squared distances. On large grids with more than
// one worker the cells are split into chunks; ForEachChunk returns only after
// every chunk is written, so dist is complete before Cooperate reads it.
func (t *Trainer) compete(v, dist []float64) {
	n := len(t.cells)
	if t.opts.workers > 1 && n >= ParallelThreshold {
		parallel.ForEachChunk(n, t.opts.workers, func(lo, hi int) {
			for j := lo; j < hi; j++ {
				dist[j] = sqDist(v, t.cells[j])
			}
		})
		return
	}
	for j := 0; j < n; j++ {
		dist[j] = sqDist(v, t.cells[j])
	}
}

// sqDist is ‖a−b‖² without the square root; a and b have equal length.
func sqDist(a, b []float64) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}

	return s
}

// Cooperate returns the coordinate of the smallest entry of dist, a Compete
// result. Ties go to the first minimum in row-major order.
//
// Errors: ErrDimensionMismatch when len(dist) is not the number of cells.
func (t *Trainer) Cooperate(dist []float64) (grid.Coord, error) {
	if len(dist) != t.grid.Len() {
		return grid.Coord{}, fmt.Errorf("som: %d distances for %d cells: %w", len(dist), t.grid.Len(), ErrDimensionMismatch)
	}

	return t.grid.Coordinate(argmin(dist))
}

// argmin returns the index of the first minimum of a non-empty slice.
func argmin(xs []float64) int {
	best := 0
	for j := 1; j < len(xs); j++ {
		if xs[j] < xs[best] {
			best = j
		}
	}

	return best
}

// Neighborhood is the Gaussian kernel h(j, winner) over grid coordinates at
// the current neighborhood width. Neighborhood(c, c) == 1 for every c.
func (t *Trainer) Neighborhood(j, winner grid.Coord) float64 {
	return kernel(grid.SquaredDistance(j, winner), t.nbd)
}

// kernel is exp(-d²/2σ²). The d == 0 case is answered directly: once σ has
// decayed far enough that σ² underflows, the quotient would be 0/0.
func kernel(gridDist2, width float64) float64 {
	if gridDist2 == 0 {
		return 1
	}
	return math.Exp(-gridDist2 / (2 * width * width))
}

// Adapt moves every cell toward v by lr·h(j, winner):
//
//	w[j] += lr · h(j, winner) · (v − w[j])
//
// evaluated as the blend w[j] = (1−α)·w[j] + α·v with α = lr·h, so inputs
// near ±MaxFloat64 do not overflow v − w[j] when α ≤ 1.
//
// Errors: ErrDimensionMismatch / ErrInvalidInput for a bad v,
// grid.ErrOutOfRange for a winner outside the lattice.
func (t *Trainer) Adapt(v []float64, winner grid.Coord) error {
	if err := t.checkInput(v); err != nil {
		return err
	}
	if !t.grid.Contains(winner) {
		return fmt.Errorf("som: winner %v: %w", winner, grid.ErrOutOfRange)
	}
	t.adapt(v, winner)

	return nil
}

func (t *Trainer) adapt(v []float64, winner grid.Coord) {
	for j, c := range t.grid.Cells() {
		alpha := t.lr * t.Neighborhood(c, winner)
		if alpha == 0 {
			continue // kernel underflowed; the update would be a no-op
		}
		w := t.cells[j]
		floats.Scale(1-alpha, w)
		floats.AddScaled(w, alpha, v)
	}
}

// Decay shrinks lr and nbdWidth by 1/(1+decay). A step that would underflow
// to zero is skipped, so both scalars stay strictly positive.
func (t *Trainer) Decay() {
	t.lr = decayed(t.lr, t.cfg.LRDecay)
	t.nbd = decayed(t.nbd, t.cfg.NbdWidthDecay)
}

func decayed(x, rate float64) float64 {
	next := x * (1 / (1 + rate))
	if next <= 0 {
		return x
	}

	return next
}

// step runs Compete, Cooperate and Adapt for one input vector.
func (t *Trainer) step(v []float64) {
	t.compete(v, t.dist)
	winner, _ := t.grid.Coordinate(argmin(t.dist))
	t.adapt(v, winner)
}
