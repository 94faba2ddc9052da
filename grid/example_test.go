// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/cjdb01/nnk/grid"
)

// ExampleGrid_Components groups cells that carry the same label.
// Scenario:
//
//   - 3×2 lattice, labels by row-major index: a a b a b b
//   - Conn4: 4-directional adjacency
//   - Expect two regions: the "a" cells and the "b" cells.
func ExampleGrid_Components() {
	g, _ := grid.New(3, 2)
	labels := []byte("aababb")

	comps := g.Components(grid.Conn4, func(i, j int) bool { return labels[i] == labels[j] })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Print(" ", c)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (0,1) (1,1)
	// component 1: (1,0) (2,0) (2,1)
}

// ExampleGrid_Index shows the X-outer, Y-inner storage order.
func ExampleGrid_Index() {
	g, _ := grid.New(2, 3)
	for i, c := range g.Cells() {
		fmt.Println(i, c)
	}

	// Output:
	// 0 (0,0)
	// 1 (0,1)
	// 2 (0,2)
	// 3 (1,0)
	// 4 (1,1)
	// 5 (1,2)
}
