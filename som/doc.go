// Package som trains a Kohonen self-organizing map: a rectangular grid of
// weight vectors ("neurons") that competitive learning pulls toward a set of
// fixed-dimension input vectors.
//
// 🚀 Training loop
//
//	for each epoch:
//	    for each input v (read order, or reshuffled with WithShuffle):
//	        Compete:   d[j]   = ‖v − w[j]‖²                 for every cell j
//	        Cooperate: winner = first argmin d              (row-major scan)
//	        Adapt:     w[j]  += lr · h(j, winner) · (v − w[j])   for every cell j
//	    Decay:     lr ← lr/(1+lrDecay), nbdWidth ← nbdWidth/(1+nbdWidthDecay)
//
// with the Gaussian grid-space kernel
//
//	h(j, winner) = exp(−‖pos(j) − pos(winner)‖² / (2·nbdWidth²))
//
// ✨ Key properties:
//   - the kernel uses lattice coordinates, never input-space distance;
//   - winners are grid.Coord values, never references into the weights;
//   - lr and nbdWidth are strictly positive and never increase;
//   - given the same seed, config and input, training is bit-for-bit
//     reproducible, including with WithWorkers.
//
// ⚙️ Usage:
//
//	set, err := dataset.ReadFile("points.txt", 2)
//	if err != nil { ... }
//	cfg := som.DefaultConfig()
//	tr, err := som.New(set, cfg, som.WithSeed(42))
//	if err != nil { ... }
//	tr.Train(100)
//	_ = tr.Print(os.Stdout)
//
// Errors:
//   - ErrInvalidInput      — empty or malformed source, or bad hyperparameters.
//   - ErrDimensionMismatch — a vector whose arity differs from Config.InputSize.
//
// A Trainer is not safe for concurrent use.
package som
