package rawimage

import "errors"

// Sentinel errors returned by ReadBuffer and WriteBuffer.
var (
	// ErrBadMagic indicates the stream does not start with the "RWI1" magic.
	ErrBadMagic = errors.New("rawimage: bad magic header")

	// ErrTooManyDims indicates a header claims more dimensions than this
	// codec will allocate for (a corrupt-stream guard, not a real limit).
	ErrTooManyDims = errors.New("rawimage: dimension count exceeds sanity limit")

	// ErrUnsupportedDType indicates a dtype byte this codec does not know.
	ErrUnsupportedDType = errors.New("rawimage: unsupported dtype byte")

	// ErrNilBuffer indicates WriteBuffer was given a nil buffer.
	ErrNilBuffer = errors.New("rawimage: buffer is nil")
)
