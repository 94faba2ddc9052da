package som

import (
	"io"
	"iter"
	"strings"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/grid"
)

// Export is a lazy, read-only view of the grid: it yields every cell's
// coordinate and a copy of its weight vector in row-major order (X outer,
// Y inner). Values are read when iterated, not when Export is called.
func (t *Trainer) Export() iter.Seq2[grid.Coord, []float64] {
	return func(yield func(grid.Coord, []float64) bool) {
		for j, c := range t.grid.Cells() {
			if !yield(c, append([]float64(nil), t.cells[j]...)) {
				return
			}
		}
	}
}

// Print writes one weight vector per line, components separated by single
// spaces, in row-major grid order. It does not modify the trainer.
func (t *Trainer) Print(w io.Writer) error {
	return dataset.Write(w, func(yield func([]float64) bool) {
		for _, v := range t.Export() {
			if !yield(v) {
				return
			}
		}
	})
}

// String returns the Print output.
func (t *Trainer) String() string {
	var b strings.Builder
	_ = t.Print(&b)

	return b.String()
}
