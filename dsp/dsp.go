// Package dsp provides the pixel-transform and vector-accumulation kernels
// used by the VP8L lossless encoder ahead of entropy coding.
//
// Every operation is exposed as a package-level function variable so that a
// bulk (chunked) implementation can be installed over the scalar reference
// when the CPU has a vector unit. All candidate implementations of an
// operation are bit-for-bit equivalent, so redundant or racing installs are
// harmless: whichever assignment lands last, callers observe identical
// behavior.
//
// Reference: libwebp/src/dsp/lossless_enc.c and lossless_enc_sse2.c.
package dsp

// Multipliers holds the VP8L color-space transform coefficients. Each is a
// signed 8-bit fixed-point value with an implicit /32 scale, stored in its
// raw byte form.
type Multipliers struct {
	GreenToRed  uint8
	GreenToBlue uint8
	RedToBlue   uint8
}

// Transform function variables for dispatch. These are set by Init() and
// must not be reassigned by callers.
var (
	// SubtractGreenFromBlueAndRed subtracts the green channel from the red
	// and blue channels of the first numPixels ARGB values, in place,
	// wrapping modulo 256. Alpha and green are unchanged.
	SubtractGreenFromBlueAndRed func(argb []uint32, numPixels int)

	// TransformColor applies the forward color-space transform to the first
	// numPixels ARGB values, in place. A zero Multipliers set is the
	// identity.
	TransformColor func(m *Multipliers, data []uint32, numPixels int)

	// CollectColorRedTransforms accumulates a 256-bin histogram of the
	// transformed red bytes over a tile. argb holds the tile rows at the
	// given stride; histo must have 256 entries.
	CollectColorRedTransforms func(argb []uint32, stride, tileWidth, tileHeight int, greenToRed uint8, histo []uint32)

	// CollectColorBlueTransforms accumulates a 256-bin histogram of the
	// transformed blue bytes over a tile.
	CollectColorBlueTransforms func(argb []uint32, stride, tileWidth, tileHeight int, greenToBlue, redToBlue uint8, histo []uint32)

	// AddVector computes out[i] = a[i] + b[i] for i in [0, size). Plain
	// 32-bit addition, no saturation. out may alias a or b.
	AddVector func(a, b, out []uint32, size int)

	// AddVectorEq computes out[i] += a[i] for i in [0, size).
	AddVectorEq func(a, out []uint32, size int)
)

// Init installs the kernel implementations: scalar references first, then
// the bulk variants where the CPU has a vector unit. Idempotent, and safe
// to call concurrently since every candidate for a given operation produces
// identical output.
func Init() {
	SubtractGreenFromBlueAndRed = subtractGreen
	TransformColor = transformColor
	CollectColorRedTransforms = collectColorRedTransforms
	CollectColorBlueTransforms = collectColorBlueTransforms
	AddVector = addVector
	AddVectorEq = addVectorEq

	if hasVectorUnit {
		SubtractGreenFromBlueAndRed = subtractGreenBulk
		TransformColor = transformColorBulk
		CollectColorRedTransforms = collectColorRedTransformsBulk
		CollectColorBlueTransforms = collectColorBlueTransformsBulk
		AddVector = addVectorBulk
		AddVectorEq = addVectorEqBulk
	}
}

func init() {
	Init()
}
