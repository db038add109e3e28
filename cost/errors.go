package cost

import "errors"

// Sentinel errors for functor construction.
var (
	// ErrNegativeCeiling indicates WithCeiling was called with a negative value.
	ErrNegativeCeiling = errors.New("cost: Ceiling must be non-negative")
)
