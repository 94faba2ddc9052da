package grid

import "iter"

// New constructs a Width×Height lattice.
// Returns ErrEmptyGrid if either extent is below 1.
// Complexity: O(1).
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: width, Height: height}, nil
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the lattice.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// Index maps c to its row-major index x*Height + y.
// Returns ErrOutOfRange for a coordinate outside the lattice.
func (g *Grid) Index(c Coord) (int, error) {
	if !g.Contains(c) {
		return 0, ErrOutOfRange
	}

	return g.index(c.X, c.Y), nil
}

// index is the unchecked form of Index.
func (g *Grid) index(x, y int) int {
	return x*g.Height + y
}

// Coordinate converts a row-major index back to a Coord.
// Returns ErrOutOfRange for idx outside [0, Len()).
func (g *Grid) Coordinate(idx int) (Coord, error) {
	if idx < 0 || idx >= g.Len() {
		return Coord{}, ErrOutOfRange
	}

	return g.coordinate(idx), nil
}

func (g *Grid) coordinate(idx int) Coord {
	return Coord{X: idx / g.Height, Y: idx % g.Height}
}

// Cells yields every (index, coordinate) pair in row-major order.
func (g *Grid) Cells() iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		for idx := 0; idx < g.Len(); idx++ {
			if !yield(idx, g.coordinate(idx)) {
				return
			}
		}
	}
}

// SquaredDistance returns the squared Euclidean distance between two lattice
// coordinates. It does not check bounds.
// Complexity: O(1).
func SquaredDistance(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return dx*dx + dy*dy
}

// offsets returns the neighbor offsets for conn. The slice is shared.
func offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Neighbors returns the in-bounds neighbors of c under conn, in the fixed
// N, (NE,) E, (SE,) S, (SW,) W (,NW) order.
func (g *Grid) Neighbors(c Coord, conn Connectivity) []Coord {
	offs := offsets(conn)
	out := make([]Coord, 0, len(offs))
	for _, d := range offs {
		nx, ny := c.X+d[0], c.Y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}

	return out
}

// Adjacent reports whether a and b are distinct neighbors under conn.
func Adjacent(a, b Coord, conn Connectivity) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx == 0 && dy == 0 {
		return false
	}
	if conn == Conn8 {
		return dx <= 1 && dy <= 1
	}

	return dx+dy == 1
}
