package ift_test

import (
	"fmt"

	"github.com/katalvlaran/watershed/cost"
	"github.com/katalvlaran/watershed/ift"
	"github.com/katalvlaran/watershed/lattice"
)

// ExampleRun demonstrates the IFT watershed on a 1-D staircase; the
// bottleneck cost ties at the midpoint, and the earlier-inserted marker
// (the smaller index) wins via FIFO tie-break.
func ExampleRun() {
	lat, _ := lattice.New([]int{5})
	input, _ := lattice.WrapBuffer[int64](lat, []int64{0, 1, 2, 3, 4})
	markers, _ := lattice.WrapBuffer[uint32](lat, []uint32{1, 0, 0, 0, 2})

	out, _ := ift.Run[int64, uint32, int64](input, markers, cost.Grad[int64]{}, lattice.Face)
	fmt.Println(out.Data)
	// Output: [1 1 1 2 2]
}
