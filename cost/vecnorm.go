package cost

import "gonum.org/v1/gonum/floats"

// VecNorm is the multi-channel dissimilarity c(a,b) = ||b-a||_2 for
// vector-valued (multi-component) pixels, where each pixel is a []float64
// of equal, fixed length (one entry per channel).
//
// Eval delegates to gonum's floats.Distance, which computes the Minkowski
// distance between two vectors directly (L=2 gives the Euclidean norm of
// their difference) without an intermediate allocation for b-a.
type VecNorm struct{}

// Eval returns the Euclidean distance between vectors a and b. a and b must
// have equal length — Eval itself has no way to check this against the rest
// of the buffer, since it only ever sees one pixel pair at a time. Callers
// building a vector buffer should validate channel-count consistency once,
// up front, via watershed.ValidateVectorChannels (wired into
// cmd/markerwsmulticomp before Run); an unvalidated mismatch surfaces as a
// panic inside gonum/floats.Distance rather than a clean error here.
func (VecNorm) Eval(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
