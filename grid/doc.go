// Package grid treats the output layer of a self-organizing map as a
// rectangular lattice of cells ("neurons").
//
// What:
//
//   - Grid wraps a Width×Height lattice; cell (x, y) has the row-major index
//     x*Height + y (X outer, Y inner), the order in which weight vectors are
//     stored and printed.
//   - Grid-space geometry: squared Euclidean distance between coordinates,
//     4- or 8-neighborhoods, adjacency tests.
//   - Components groups cells into connected regions under a caller-supplied
//     link predicate (e.g. "weight vectors closer than a threshold").
//
// Why:
//
//   - The neighborhood kernel of a SOM is a function of lattice distance, never
//     of input-space distance; keeping that geometry here keeps the trainer
//     free of index arithmetic.
//   - Winners are plain Coord values, so nothing holds a reference into the
//     weight storage while it is being mutated.
//
// Complexity:
//
//   - Index / Coordinate / SquaredDistance: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Components: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrOutOfRange: a coordinate or index outside the lattice.
package grid
