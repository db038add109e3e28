package meyer

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilInput indicates a nil input buffer was passed to Run.
	ErrNilInput = errors.New("meyer: input buffer is nil")

	// ErrNilMarkers indicates a nil markers buffer was passed to Run.
	ErrNilMarkers = errors.New("meyer: markers buffer is nil")

	// ErrSizeMismatch indicates the input and markers buffers have different shapes.
	ErrSizeMismatch = errors.New("meyer: input and markers shapes differ")
)
