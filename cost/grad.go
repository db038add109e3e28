package cost

// Grad is the classical morphological dissimilarity: c(a,b) = |b-a|.
//
// Ceiling, when non-zero, treats any pair where either value is >= Ceiling
// as a wall: Eval returns Ceiling itself regardless of the true difference,
// except that c(a,a) is always 0 (the functor contract documented on the
// package holds regardless of Ceiling). This is a new, self-contained
// addition beyond spec.md's CostFunctor list, not a recovered original_source
// feature (see SPEC_FULL.md §4.10); leaving Ceiling at its zero value
// reproduces the plain c(a,b) = |b-a|.
type Grad[T Value] struct {
	Ceiling T
}

// GradOption configures a Grad built via NewGrad.
type GradOption[T Value] func(*Grad[T])

// WithCeiling sets Grad's Ceiling. Must pass a non-negative value; a
// negative ceiling panics with ErrNegativeCeiling, mirroring
// dijkstra.WithMaxDistance's panic-on-invalid-argument convention.
func WithCeiling[T Value](ceiling T) GradOption[T] {
	return func(g *Grad[T]) {
		if ceiling < 0 {
			// Panic to signal invalid configuration early, as dijkstra's
			// WithMaxDistance/WithInfEdgeThreshold do for their own thresholds.
			panic(ErrNegativeCeiling)
		}
		g.Ceiling = ceiling
	}
}

// NewGrad builds a Grad from functional options. NewGrad[T]() (no options)
// is equivalent to the zero value Grad[T]{}.
func NewGrad[T Value](opts ...GradOption[T]) Grad[T] {
	var g Grad[T]
	for _, opt := range opts {
		opt(&g)
	}

	return g
}

// Eval returns |b-a|, clipped to Ceiling if a ceiling is configured and
// either endpoint reaches or exceeds it. Equal inputs always return 0,
// regardless of Ceiling, satisfying the package's c(a,a) == 0 contract.
func (g Grad[T]) Eval(a, b T) T {
	if a == b {
		return 0
	}
	if g.Ceiling != 0 && (a >= g.Ceiling || b >= g.Ceiling) {
		return g.Ceiling
	}

	// Subtract the smaller from the larger so unsigned T cannot wrap.
	if b > a {
		return b - a
	}

	return a - b
}
