package rawimage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watershed/internal/rawimage"
	"github.com/katalvlaran/watershed/lattice"
)

func TestWriteReadBuffer_RoundTrip(t *testing.T) {
	lat, err := lattice.New([]int{2, 3})
	require.NoError(t, err)
	buf, err := lattice.WrapBuffer[int16](lat, []int16{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, rawimage.WriteBuffer(&out, buf, rawimage.DTypeInt16))

	got, dtype, err := rawimage.ReadBuffer[int16](&out)
	require.NoError(t, err)
	require.Equal(t, rawimage.DTypeInt16, dtype)
	require.Equal(t, []int{2, 3}, got.Lat.Shape())
	require.Equal(t, buf.Data, got.Data)
}

func TestReadBuffer_BadMagic(t *testing.T) {
	_, _, err := rawimage.ReadBuffer[int16](bytes.NewReader([]byte("nope")))
	require.ErrorIs(t, err, rawimage.ErrBadMagic)
}

func TestWriteReadVectorBuffer_RoundTrip(t *testing.T) {
	lat, err := lattice.New([]int{2, 2})
	require.NoError(t, err)
	buf, err := lattice.WrapBuffer[[]float64](lat, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, rawimage.WriteVectorBuffer(&out, buf))

	got, err := rawimage.ReadVectorBuffer(&out)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, got.Lat.Shape())
	require.Equal(t, buf.Data, got.Data)
}

func TestReadVectorBuffer_BadMagic(t *testing.T) {
	_, err := rawimage.ReadVectorBuffer(bytes.NewReader([]byte("nope")))
	require.ErrorIs(t, err, rawimage.ErrBadMagic)
}

func TestParseDType(t *testing.T) {
	dt, err := rawimage.ParseDType("uint16")
	require.NoError(t, err)
	require.Equal(t, rawimage.DTypeUint16, dt)

	_, err = rawimage.ParseDType("bogus")
	require.ErrorIs(t, err, rawimage.ErrUnsupportedDType)
}
