package meyer

import "cmp"

// Functor is the dissimilarity contract Run requires: a pure function from a
// pixel and its proposed neighbor to a totally ordered priority. Run does
// not import package cost; any value with this method set qualifies,
// including cost.Grad, cost.NeighbourOnly, or a caller-defined type.
type Functor[T any, P cmp.Ordered] interface {
	Eval(a, b T) P
}
