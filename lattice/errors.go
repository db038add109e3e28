package lattice

import "errors"

// Sentinel errors for lattice construction and indexing.
var (
	// ErrEmptyShape indicates that a Lattice was built from a shape with zero dimensions.
	ErrEmptyShape = errors.New("lattice: shape must have at least one dimension")

	// ErrBadDimension indicates that a shape dimension was zero or negative.
	ErrBadDimension = errors.New("lattice: every dimension must be positive")

	// ErrShapeMismatch indicates that two buffers expected to share a shape do not.
	ErrShapeMismatch = errors.New("lattice: shapes differ")

	// ErrCoordOutOfRange indicates a coordinate tuple does not address a pixel in the grid.
	ErrCoordOutOfRange = errors.New("lattice: coordinate out of range")

	// ErrIndexOutOfRange indicates a linear index does not address a pixel in the grid.
	ErrIndexOutOfRange = errors.New("lattice: index out of range")

	// ErrBufferSize indicates a buffer's Data slice length does not match its Lattice's NumPixels.
	ErrBufferSize = errors.New("lattice: buffer length does not match lattice size")
)
