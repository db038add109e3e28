// Package cost provides pluggable dissimilarity functors c(a, b) -> priority
// for use by the meyer and ift flooding engines. A functor must be pure,
// deterministic, non-negative, and satisfy c(a,a) == 0.
//
// Provided functors
//
//   - Grad[T]: scalar absolute difference, c(a,b) = |b-a|. The classical
//     morphological dissimilarity. An optional Ceiling (set via WithCeiling,
//     or the zero value to disable it) treats any pixel at or above a
//     threshold as a wall; this is a self-contained addition, not a feature
//     recovered from original_source/ (see SPEC_FULL.md §4.10).
//   - NeighbourOnly[T]: c(a,b) = b. Produces the conventional gradient-image
//     watershed when Input already holds a precomputed gradient magnitude.
//   - VecNorm: c(a,b) = the Euclidean norm of b-a for vector-valued (multi-
//     channel) pixels, computed via gonum.org/v1/gonum/floats.Distance.
//
// Engines do not import this package; they accept any value whose method
// set matches their local Functor[T,P] interface (c(T,T) P). That keeps the
// engines decoupled from any specific functor implementation, per the
// "replace functor objects with a small polymorphic capability" guidance.
package cost
