package dsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubtractGreenKnownValues(t *testing.T) {
	argb := []uint32{0x11223344, 0xff000000, 0x00ffffff, 0x80804020}
	want := []uint32{0x11ef3311, 0xff000000, 0x0000ff00, 0x804040e0}

	subtractGreen(argb, len(argb))
	require.Equal(t, want, argb)
}

func TestSubtractGreenZeroPixels(t *testing.T) {
	argb := []uint32{0x12345678}
	subtractGreen(argb, 0)
	require.Equal(t, uint32(0x12345678), argb[0])
}

func TestColorTransformDelta(t *testing.T) {
	tests := []struct {
		pred, color int8
		want        int32
	}{
		{0, 127, 0},
		{66, 64, 132},
		{-51, 64, -102},
		{16, -128, -64},
		// Arithmetic shift rounds toward negative infinity, so small
		// negative products still produce -1, not 0.
		{1, -1, -1},
		{-1, 1, -1},
		{127, 127, 504},
		{-128, -128, 512},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, colorTransformDelta(tt.pred, tt.color),
			"colorTransformDelta(%d, %d)", tt.pred, tt.color)
	}
}

func TestTransformColorIdentity(t *testing.T) {
	m := &Multipliers{}
	argb := []uint32{0x00000000, 0xffffffff, 0x11223344, 0x80804020, 0xdeadbeef}
	want := append([]uint32(nil), argb...)

	transformColor(m, argb, len(argb))
	require.Equal(t, want, argb)

	transformColorBulk(m, argb, len(argb))
	require.Equal(t, want, argb)
}

func TestTransformColorKnownValues(t *testing.T) {
	// Hand-computed: a=0xff r=0x80 g=0x40 b=0xc0 with
	// green_to_red=66, green_to_blue=-51, red_to_blue=16:
	//   delta_r = (66*64)>>5   = 132  -> red'  = (0x80-132)  & 0xff = 0xfc
	//   db1     = (-51*64)>>5  = -102
	//   db2     = (16*-128)>>5 = -64  -> blue' = (0xc0+102+64) & 0xff = 0x66
	m := &Multipliers{GreenToRed: 66, GreenToBlue: 0xcd, RedToBlue: 16}
	argb := []uint32{0xff8040c0}
	transformColor(m, argb, 1)
	require.Equal(t, uint32(0xfffc4066), argb[0])
}

func TestTransformColorFloorRounding(t *testing.T) {
	// green=0xff sign-extends to -1; (1 * -1) >> 5 must be -1, so the
	// predictor adds 1 to red. Truncation toward zero would leave red
	// unchanged and diverge from the decoder.
	m := &Multipliers{GreenToRed: 1}
	argb := []uint32{0x00ffff00}
	transformColor(m, argb, 1)
	require.Equal(t, uint32(0x0000ff00), argb[0])
}

func TestCollectColorRedTransformsKnownValues(t *testing.T) {
	// With a zero multiplier the transformed red byte is the red channel.
	argb := []uint32{
		0xff112233, 0xff442233, 0x00000000, 0x00000000,
		0xff112233, 0xff992233, 0x00000000, 0x00000000,
	}
	histo := make([]uint32, 256)
	collectColorRedTransforms(argb, 4, 2, 2, 0, histo)

	require.Equal(t, uint32(2), histo[0x11])
	require.Equal(t, uint32(1), histo[0x44])
	require.Equal(t, uint32(1), histo[0x99])
	require.Equal(t, uint32(0), histo[0x00], "pixels outside the tile width must not count")
}

func TestCollectColorBlueTransformsKnownValues(t *testing.T) {
	argb := []uint32{0xff112233, 0xff442255}
	histo := make([]uint32, 256)
	collectColorBlueTransforms(argb, 2, 2, 1, 0, 0, histo)

	require.Equal(t, uint32(1), histo[0x33])
	require.Equal(t, uint32(1), histo[0x55])
}

func TestAddVectorAliasing(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{10, 20, 30, 40}

	// out aliased with a.
	addVector(a, b, a, 4)
	require.Equal(t, []uint32{11, 22, 33, 44}, a)

	addVectorEq([]uint32{1, 1, 1, 1}, b, 4)
	require.Equal(t, []uint32{11, 21, 31, 41}, b)
}
