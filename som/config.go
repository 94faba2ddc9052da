package som

import (
	"fmt"
	"math"
)

// Config holds the shape and the hyperparameters of a map.
//
// Fields:
//   - InputSize      — components per input and per weight vector.
//   - Width, Height  — grid extents (OutputSizeX, OutputSizeY).
//   - LearningRate   — initial lr, > 0.
//   - NbdWidth       — initial neighborhood width σ, > 0.
//   - LRDecay        — lr is divided by (1+LRDecay) on each decay step, ≥ 0.
//   - NbdWidthDecay  — σ is divided by (1+NbdWidthDecay) on each decay step, ≥ 0.
type Config struct {
	InputSize     int
	Width, Height int

	LearningRate float64
	NbdWidth     float64

	LRDecay       float64
	NbdWidthDecay float64
}

// DefaultConfig returns the settings of the classic 2-D demo:
// InputSize=2, 4×2 grid, lr=0.1, σ=2.0, both decays 0.001.
func DefaultConfig() Config {
	return Config{
		InputSize:     2,
		Width:         4,
		Height:        2,
		LearningRate:  0.1,
		NbdWidth:      2.0,
		LRDecay:       0.001,
		NbdWidthDecay: 0.001,
	}
}

// Validate reports the first field outside its domain, wrapped around
// ErrInvalidInput.
func (c Config) Validate() error {
	switch {
	case c.InputSize < 1:
		return fmt.Errorf("som: InputSize %d: %w", c.InputSize, ErrInvalidInput)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("som: grid %dx%d: %w", c.Width, c.Height, ErrInvalidInput)
	case !positive(c.LearningRate):
		return fmt.Errorf("som: LearningRate %g: %w", c.LearningRate, ErrInvalidInput)
	case !positive(c.NbdWidth):
		return fmt.Errorf("som: NbdWidth %g: %w", c.NbdWidth, ErrInvalidInput)
	case !nonNegative(c.LRDecay):
		return fmt.Errorf("som: LRDecay %g: %w", c.LRDecay, ErrInvalidInput)
	case !nonNegative(c.NbdWidthDecay):
		return fmt.Errorf("som: NbdWidthDecay %g: %w", c.NbdWidthDecay, ErrInvalidInput)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func positive(x float64) bool { return finite(x) && x > 0 }

func nonNegative(x float64) bool { return finite(x) && x >= 0 }
