package ift

import "cmp"

// Functor is the dissimilarity contract Run requires: a pure function from
// a pixel and its proposed neighbor to a totally ordered step cost. Run
// does not import package cost; any value with this method set qualifies.
type Functor[T any, P cmp.Ordered] interface {
	Eval(a, b T) P
}

// priority is IFT's composite queue key: path cost first, insertion
// sequence second. It breaks ties on equal cost in FIFO arrival order,
// which is what gives plateau regions a deterministic partition.
type priority[P cmp.Ordered] struct {
	cost P
	seq  uint64
}

// less implements the lexicographic (cost, seq) order used by the
// addressable queue; priority is not itself cmp.Ordered (it is a struct),
// so the queue is constructed with this comparator rather than relying on
// built-in operators.
func less[P cmp.Ordered](a, b priority[P]) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.seq < b.seq
}
