package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/watershed/lattice"
)

// ExampleScanner_Neighbors demonstrates enumerating the face-connected
// neighbors of a pixel near the corner of a 3x3 grid.
func ExampleScanner_Neighbors() {
	lat, _ := lattice.New([]int{3, 3})
	sc := lattice.NewScanner(lat, lattice.Face)

	idx, _ := lat.Index([]int{0, 0})
	neighbors, _ := sc.Neighbors(idx, nil)
	fmt.Println(neighbors)
	// Output: [3 1]
}
