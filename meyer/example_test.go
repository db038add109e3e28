package meyer_test

import (
	"fmt"

	"github.com/katalvlaran/watershed/cost"
	"github.com/katalvlaran/watershed/lattice"
	"github.com/katalvlaran/watershed/meyer"
)

// ExampleRun demonstrates flooding a 1-D plateau from two markers; the
// floods meet in the middle and leave a watershed line (label 0).
func ExampleRun() {
	lat, _ := lattice.New([]int{5})
	input, _ := lattice.WrapBuffer[int64](lat, []int64{5, 5, 5, 5, 5})
	markers, _ := lattice.WrapBuffer[uint32](lat, []uint32{1, 0, 0, 0, 2})

	out, _ := meyer.Run[int64, uint32, int64](input, markers, cost.Grad[int64]{}, lattice.Face)
	fmt.Println(out.Data)
	// Output: [1 1 0 2 2]
}
