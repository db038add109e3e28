package linepaint

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/watershed/lattice"
)

// Functor is the dissimilarity contract Fill requires; it matches the local
// Functor interfaces declared by packages meyer and ift so the same functor
// value can be passed to the engine and to Fill without either importing a
// shared concrete type.
type Functor[T any, P cmp.Ordered] interface {
	Eval(a, b T) P
}

// Fill returns a copy of output in which every watershed-line pixel
// (output[i] == 0) is reassigned the label of its most-similar neighbor
// under functor, ties broken by the fixed neighborhood enumeration order.
// A pixel all of whose neighbors are themselves unlabeled remains 0. Fill
// performs a single sweep over a snapshot of output: it never reads a
// label that Fill itself just wrote, so the result does not depend on
// pixel iteration order.
func Fill[T any, L lattice.Label, P cmp.Ordered](
	input *lattice.Buffer[T],
	output *lattice.Buffer[L],
	functor Functor[T, P],
	conn lattice.Connectivity,
) (*lattice.Buffer[L], error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("linepaint: input and output buffers must be non-nil")
	}
	if !input.Lat.SameShape(output.Lat) {
		return nil, fmt.Errorf("%w: input=%v output=%v", lattice.ErrShapeMismatch, input.Lat.Shape(), output.Lat.Shape())
	}

	result := make([]L, len(output.Data))
	copy(result, output.Data)

	scanner := lattice.NewScanner(input.Lat, conn)
	neighbor := make([]int, 0, scanner.Degree())

	for i, l := range output.Data {
		if l != 0 {
			continue
		}

		var err error
		neighbor, err = scanner.Neighbors(i, neighbor[:0])
		if err != nil {
			return nil, err
		}

		var best L
		var bestCost P
		haveBest := false
		for _, j := range neighbor {
			c := functor.Eval(input.Data[i], input.Data[j])
			if !haveBest || c < bestCost {
				haveBest = true
				bestCost = c
				best = output.Data[j]
			}
		}
		if haveBest {
			result[i] = best
		}
	}

	return &lattice.Buffer[L]{Lat: output.Lat, Data: result}, nil
}
