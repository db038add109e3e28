package cost

// NeighbourOnly implements c(a,b) = b, i.e. the dissimilarity of a step is
// simply the neighbor's own value. Used when Input already holds a
// precomputed gradient magnitude, yielding the conventional gradient-image
// watershed.
type NeighbourOnly[T Value] struct{}

// Eval returns b, ignoring a.
func (NeighbourOnly[T]) Eval(a, b T) T { return b }
