package rawimage

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/watershed/lattice"
)

var magic = [4]byte{'R', 'W', 'I', '1'}
var vectorMagic = [4]byte{'R', 'W', 'I', 'V'}

// maxDims bounds the dimension count accepted from a header, guarding
// against reading a corrupt or truncated stream as a huge allocation.
const maxDims = 32

// DType identifies the on-disk element encoding of a raw image stream.
type DType uint8

// Supported element encodings. Callers pick the DType matching the Go type
// they intend to decode into; ReadBuffer does not infer it.
const (
	DTypeUint8 DType = iota + 1
	DTypeUint16
	DTypeUint32
	DTypeUint64
	DTypeInt16
	DTypeInt32
	DTypeInt64
	DTypeFloat64
)

// String renders the dtype for diagnostics.
func (d DType) String() string {
	switch d {
	case DTypeUint8:
		return "uint8"
	case DTypeUint16:
		return "uint16"
	case DTypeUint32:
		return "uint32"
	case DTypeUint64:
		return "uint64"
	case DTypeInt16:
		return "int16"
	case DTypeInt32:
		return "int32"
	case DTypeInt64:
		return "int64"
	case DTypeFloat64:
		return "float64"
	default:
		return "DType(unknown)"
	}
}

// ParseDType maps a dtype name (as returned by DType.String) to a DType.
func ParseDType(name string) (DType, error) {
	switch name {
	case "uint8":
		return DTypeUint8, nil
	case "uint16":
		return DTypeUint16, nil
	case "uint32":
		return DTypeUint32, nil
	case "uint64":
		return DTypeUint64, nil
	case "int16":
		return DTypeInt16, nil
	case "int32":
		return DTypeInt32, nil
	case "int64":
		return DTypeInt64, nil
	case "float64":
		return DTypeFloat64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, name)
	}
}

// WriteBuffer writes buf's shape, dtype, and raw data to w in the layout
// documented on the package.
func WriteBuffer[E any](w io.Writer, buf *lattice.Buffer[E], dtype DType) error {
	if buf == nil {
		return ErrNilBuffer
	}

	shape := buf.Lat.Shape()
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(shape))); err != nil {
		return err
	}
	for _, d := range shape {
		if err := binary.Write(w, binary.LittleEndian, uint32(d)); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(dtype)); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, buf.Data)
}

// ReadBuffer reconstructs a lattice.Buffer[E] from r. The caller's type
// parameter E must match the byte width declared for dtype; ReadBuffer does
// not check this, so a mismatch either misreads the bytes or fails with a
// read error. The CLI tools decode input as int16 and markers as uint32.
func ReadBuffer[E any](r io.Reader) (*lattice.Buffer[E], DType, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, 0, err
	}
	if gotMagic != magic {
		return nil, 0, ErrBadMagic
	}

	var ndim uint32
	if err := binary.Read(r, binary.LittleEndian, &ndim); err != nil {
		return nil, 0, err
	}
	if ndim > maxDims {
		return nil, 0, fmt.Errorf("%w: %d", ErrTooManyDims, ndim)
	}

	shape := make([]int, ndim)
	for i := range shape {
		var d uint32
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, 0, err
		}
		shape[i] = int(d)
	}

	var dtypeByte uint8
	if err := binary.Read(r, binary.LittleEndian, &dtypeByte); err != nil {
		return nil, 0, err
	}
	dtype := DType(dtypeByte)
	if dtype < DTypeUint8 || dtype > DTypeFloat64 {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedDType, dtypeByte)
	}

	lat, err := lattice.New(shape)
	if err != nil {
		return nil, 0, err
	}

	buf := lattice.NewBuffer[E](lat)
	if err := binary.Read(r, binary.LittleEndian, buf.Data); err != nil {
		return nil, 0, err
	}

	return buf, dtype, nil
}

// WriteVectorBuffer writes a multi-component (vector-valued) image: buf's
// shape, its per-pixel channel count, and its data flattened row-major as
// float64, in the layout documented on the package (vector variant).
func WriteVectorBuffer(w io.Writer, buf *lattice.Buffer[[]float64]) error {
	if buf == nil {
		return ErrNilBuffer
	}

	numComponents := 0
	if len(buf.Data) > 0 {
		numComponents = len(buf.Data[0])
	}

	shape := buf.Lat.Shape()
	if _, err := w.Write(vectorMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(shape))); err != nil {
		return err
	}
	for _, d := range shape {
		if err := binary.Write(w, binary.LittleEndian, uint32(d)); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(numComponents)); err != nil {
		return err
	}

	flat := make([]float64, 0, len(buf.Data)*numComponents)
	for _, px := range buf.Data {
		flat = append(flat, px...)
	}

	return binary.Write(w, binary.LittleEndian, flat)
}

// ReadVectorBuffer reconstructs a multi-component image written by
// WriteVectorBuffer. Each returned pixel is a fixed-length []float64 view
// into one contiguous backing array (no per-pixel allocation).
func ReadVectorBuffer(r io.Reader) (*lattice.Buffer[[]float64], error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, err
	}
	if gotMagic != vectorMagic {
		return nil, ErrBadMagic
	}

	var ndim uint32
	if err := binary.Read(r, binary.LittleEndian, &ndim); err != nil {
		return nil, err
	}
	if ndim > maxDims {
		return nil, fmt.Errorf("%w: %d", ErrTooManyDims, ndim)
	}

	shape := make([]int, ndim)
	for i := range shape {
		var d uint32
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, err
		}
		shape[i] = int(d)
	}

	var numComponents uint32
	if err := binary.Read(r, binary.LittleEndian, &numComponents); err != nil {
		return nil, err
	}

	lat, err := lattice.New(shape)
	if err != nil {
		return nil, err
	}

	flat := make([]float64, lat.NumPixels()*int(numComponents))
	if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
		return nil, err
	}

	data := make([][]float64, lat.NumPixels())
	for i := range data {
		data[i] = flat[i*int(numComponents) : (i+1)*int(numComponents)]
	}

	return lattice.WrapBuffer[[]float64](lat, data)
}
