package dsp

// Scalar reference kernels for the lossless encoder transforms. These
// define the authoritative per-pixel semantics; the bulk kernels in
// lossless_enc_bulk.go must match them bit for bit.
//
// Pixels are packed ARGB uint32 values in native order:
//   bits [31:24] = A, [23:16] = R, [15:8] = G, [7:0] = B

// subtractGreen subtracts the green channel from both the red and blue
// channels of each pixel, modulo 256. Matches VP8LSubtractGreenFromBlueAndRed_C.
func subtractGreen(argb []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		p := argb[i]
		green := (p >> 8) & 0xff
		r := ((p >> 16) & 0xff) - green
		b := (p & 0xff) - green
		argb[i] = (p & 0xff00ff00) | ((r & 0xff) << 16) | (b & 0xff)
	}
}

// colorTransformDelta computes (colorPred * color) >> 5 with both operands
// sign-extended from 8 bits. The arithmetic shift rounds toward negative
// infinity, which the decoder relies on. Matches C ColorTransformDelta.
func colorTransformDelta(colorPred, color int8) int32 {
	return (int32(colorPred) * int32(color)) >> 5
}

// transformColor applies the forward color-space transform in place.
// Matches VP8LTransformColor_C.
func transformColor(m *Multipliers, data []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		argb := data[i]
		green := int8(argb >> 8)
		red := int8(argb >> 16)

		newRed := int32(argb>>16) & 0xff
		newRed -= colorTransformDelta(int8(m.GreenToRed), green)
		newRed &= 0xff
		newBlue := int32(argb) & 0xff
		newBlue -= colorTransformDelta(int8(m.GreenToBlue), green)
		newBlue -= colorTransformDelta(int8(m.RedToBlue), red)
		newBlue &= 0xff

		data[i] = (argb & 0xff00ff00) | (uint32(newRed) << 16) | uint32(newBlue)
	}
}

// transformColorRed returns the transformed red byte of a pixel.
// Matches C TransformColorRed.
func transformColorRed(greenToRed uint8, argb uint32) uint8 {
	green := int8(argb >> 8)
	newRed := int32(argb>>16) & 0xff
	newRed -= colorTransformDelta(int8(greenToRed), green)
	return uint8(newRed & 0xff)
}

// transformColorBlue returns the transformed blue byte of a pixel.
// Matches C TransformColorBlue.
func transformColorBlue(greenToBlue, redToBlue uint8, argb uint32) uint8 {
	green := int8(argb >> 8)
	red := int8(argb >> 16)
	newBlue := int32(argb) & 0xff
	newBlue -= colorTransformDelta(int8(greenToBlue), green)
	newBlue -= colorTransformDelta(int8(redToBlue), red)
	return uint8(newBlue & 0xff)
}

// collectColorRedTransforms histograms the transformed red bytes of a tile.
// Matches VP8LCollectColorRedTransforms_C.
func collectColorRedTransforms(argb []uint32, stride, tileWidth, tileHeight int, greenToRed uint8, histo []uint32) {
	for y := 0; y < tileHeight; y++ {
		row := argb[y*stride:]
		for x := 0; x < tileWidth; x++ {
			histo[transformColorRed(greenToRed, row[x])]++
		}
	}
}

// collectColorBlueTransforms histograms the transformed blue bytes of a tile.
// Matches VP8LCollectColorBlueTransforms_C.
func collectColorBlueTransforms(argb []uint32, stride, tileWidth, tileHeight int, greenToBlue, redToBlue uint8, histo []uint32) {
	for y := 0; y < tileHeight; y++ {
		row := argb[y*stride:]
		for x := 0; x < tileWidth; x++ {
			histo[transformColorBlue(greenToBlue, redToBlue, row[x])]++
		}
	}
}

// addVector computes out[i] = a[i] + b[i]. Matches AddVector_C.
func addVector(a, b, out []uint32, size int) {
	for i := 0; i < size; i++ {
		out[i] = a[i] + b[i]
	}
}

// addVectorEq computes out[i] += a[i]. Matches AddVectorEq_C.
func addVectorEq(a, out []uint32, size int) {
	for i := 0; i < size; i++ {
		out[i] += a[i]
	}
}
