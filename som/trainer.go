package som

import (
	"errors"
	"fmt"
	"io"

	"github.com/cjdb01/nnk/dataset"
	"github.com/cjdb01/nnk/grid"
	"github.com/cjdb01/nnk/matrix"
)

// Phase is the lifecycle state of a Trainer.
type Phase int

const (
	// PhaseConstructed: weights are freshly initialized, no epoch has run.
	PhaseConstructed Phase = iota
	// PhaseTraining: an epoch is in progress (observable from the epoch hook).
	PhaseTraining
	// PhaseTrained: at least one epoch has completed.
	PhaseTrained
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseTraining:
		return "training"
	case PhaseTrained:
		return "trained"
	default:
		return "constructed"
	}
}

// State is a snapshot of the mutable scalars.
type State struct {
	LearningRate float64
	NbdWidth     float64
	Epochs       int // epochs completed since construction
}

// Trainer owns an input set, a grid of weight vectors and the training state.
type Trainer struct {
	cfg    Config
	opts   options
	grid   *grid.Grid
	inputs *dataset.Set

	// weights has one row per cell (row-major grid index) and InputSize
	// columns; cells aliases each row of weights.
	weights *matrix.Dense
	cells   [][]float64

	lr, nbd float64
	epochs  int
	phase   Phase

	order []int     // presentation order of inputs
	dist  []float64 // Compete scratch, one entry per cell
}

// New builds a trainer over set with randomly initialized weights.
//
// Implementation:
//   - Stage 1: validate cfg and the set's width against cfg.InputSize.
//   - Stage 2: allocate the grid and the weight matrix.
//   - Stage 3: draw every weight uniformly from the init range.
//
// Errors:
//   - ErrInvalidInput for a nil set or an invalid cfg.
//   - ErrDimensionMismatch when set.Width() != cfg.InputSize.
//
// The set is shared, not copied; dataset.Set is immutable.
func New(set *dataset.Set, cfg Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("som: no input vectors: %w", ErrInvalidInput)
	}
	if set.Width() != cfg.InputSize {
		return nil, fmt.Errorf("som: input width %d, InputSize %d: %w", set.Width(), cfg.InputSize, ErrDimensionMismatch)
	}

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("som: %w: %w", ErrInvalidInput, err)
	}
	w, err := matrix.NewDense(g.Len(), cfg.InputSize)
	if err != nil {
		return nil, fmt.Errorf("som: %w: %w", ErrInvalidInput, err)
	}

	t := &Trainer{
		cfg:     cfg,
		opts:    gatherOptions(opts),
		grid:    g,
		inputs:  set,
		weights: w,
		cells:   make([][]float64, g.Len()),
		lr:      cfg.LearningRate,
		nbd:     cfg.NbdWidth,
		phase:   PhaseConstructed,
		order:   make([]int, set.Len()),
		dist:    make([]float64, g.Len()),
	}
	for j := range t.cells {
		if t.cells[j], err = w.RawRow(j); err != nil {
			return nil, err
		}
	}
	for i := range t.order {
		t.order[i] = i
	}
	if err = t.initWeights(); err != nil {
		return nil, err
	}

	return t, nil
}

// NewFromReader reads whitespace-separated records of cfg.InputSize numbers
// from r and builds a trainer over them. Reader errors carry the dataset
// sentinels (ErrInvalidInput, ErrDimensionMismatch, dataset.ErrEmpty).
func NewFromReader(r io.Reader, cfg Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set, err := dataset.Read(r, cfg.InputSize)
	if err != nil {
		return nil, err
	}

	return New(set, cfg, opts...)
}

// initWeights fills the grid uniformly from [initLow, initHi), row-major.
func (t *Trainer) initWeights() error {
	lo, span := t.opts.initLow, t.opts.initHi-t.opts.initLow
	rng := t.opts.rng

	return t.weights.Apply(func(_, _ int, _ float64) float64 {
		return lo + rng.Float64()*span
	})
}

// Config returns the configuration the trainer was built with.
func (t *Trainer) Config() Config { return t.cfg }

// Grid returns the trainer's lattice.
func (t *Trainer) Grid() *grid.Grid { return t.grid }

// Inputs returns the input set.
func (t *Trainer) Inputs() *dataset.Set { return t.inputs }

// Phase reports the lifecycle state.
func (t *Trainer) Phase() Phase { return t.phase }

// State returns the current learning rate, neighborhood width and epoch count.
func (t *Trainer) State() State {
	return State{LearningRate: t.lr, NbdWidth: t.nbd, Epochs: t.epochs}
}

// Weight returns a copy of the weight vector at c.
func (t *Trainer) Weight(c grid.Coord) ([]float64, error) {
	j, err := t.grid.Index(c)
	if err != nil {
		return nil, fmt.Errorf("som: Weight%v: %w", c, err)
	}

	return t.weights.Row(j)
}

// Weights returns a deep copy of every weight vector in row-major order. The
// rows share one snapshot buffer that the trainer never touches again.
func (t *Trainer) Weights() [][]float64 {
	snap := t.weights.Clone()
	out := make([][]float64, snap.Rows())
	for j := range out {
		out[j], _ = snap.RawRow(j)
	}

	return out
}

// SetWeights replaces every weight vector with rows, given in row-major grid
// order (the layout Print writes). lr, nbdWidth and the epoch count are kept,
// so a map printed earlier can be loaded and trained further.
//
// Errors: ErrDimensionMismatch when rows is not Width·Height vectors of
// InputSize components, ErrInvalidInput for non-finite values. The weights
// are unchanged on error.
func (t *Trainer) SetWeights(rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("som: SetWeights: no rows: %w", ErrDimensionMismatch)
	}
	next, err := matrix.NewDenseFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("som: SetWeights: %w: %w", ErrInvalidInput, err)
	case err != nil:
		return fmt.Errorf("som: SetWeights: %w: %w", ErrDimensionMismatch, err)
	}
	if err = matrix.ValidateSameShape(next, t.weights); err != nil {
		return fmt.Errorf("som: SetWeights: %d×%d, want %d×%d: %w",
			next.Rows(), next.Cols(), t.weights.Rows(), t.weights.Cols(), ErrDimensionMismatch)
	}
	for j, row := range rows {
		copy(t.cells[j], row)
	}

	return nil
}
