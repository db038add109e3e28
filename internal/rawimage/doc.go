// Package rawimage is a minimal dense N-D buffer codec used by the CLI
// commands in cmd/markerws and cmd/markerwsmulticomp. It is not a NIfTI or
// DICOM reader — those formats, and image I/O generally, are explicitly out
// of scope — but the CLI surfaces need something runnable end to end, so
// this package defines a small self-describing binary layout:
//
//	magic   [4]byte   "RWI1"
//	ndim    uint32
//	shape   [ndim]uint32
//	dtype   uint8
//	data    ndim-product elements of dtype, little-endian
//
// The vector variant (WriteVectorBuffer / ReadVectorBuffer) stores
// multi-component float64 pixels:
//
//	magic   [4]byte   "RWIV"
//	ndim    uint32
//	shape   [ndim]uint32
//	ncomp   uint32    channels per pixel
//	data    ndim-product * ncomp float64 values, pixel by pixel, little-endian
//
// Reading and writing are symmetric: WriteBuffer emits a header matching
// the buffer's lattice.Lattice and DType, ReadBuffer reconstructs both.
package rawimage
