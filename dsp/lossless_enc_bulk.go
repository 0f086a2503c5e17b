package dsp

// Bulk kernels: width-chunked versions of the scalar references. Each
// processes pixels (or counters) in fixed-size groups and hands any
// remainder to the scalar kernel, so bulk and scalar output is identical
// for every input.
//
// The pixel kernels keep the whole ARGB word in flight and operate on the
// red and blue byte lanes with SWAR word arithmetic, the same lane layout
// the SSE2 code in libwebp lossless_enc_sse2.c uses.

// pixelStep is the group size of the bulk pixel kernels.
const pixelStep = 4

// vectorLineSize is the group size of the bulk counter adders, matching the
// LINE_SIZE unrolling of the SSE2 AddVector.
const vectorLineSize = 16

// subtractGreenPixel subtracts green from the red and blue lanes of one
// packed pixel. The 0x01000100 bias guards each lane against borrow from
// the lane below, so the two subtractions run in a single word op.
func subtractGreenPixel(p uint32) uint32 {
	green := (p >> 8) & 0xff
	rb := ((p & 0x00ff00ff) | 0x01000100) - green*0x00010001
	return (p & 0xff00ff00) | (rb & 0x00ff00ff)
}

func subtractGreenBulk(argb []uint32, numPixels int) {
	i := 0
	for ; i+pixelStep <= numPixels; i += pixelStep {
		argb[i+0] = subtractGreenPixel(argb[i+0])
		argb[i+1] = subtractGreenPixel(argb[i+1])
		argb[i+2] = subtractGreenPixel(argb[i+2])
		argb[i+3] = subtractGreenPixel(argb[i+3])
	}
	subtractGreen(argb[i:], numPixels-i)
}

// colorCst pre-shifts a raw multiplier byte the way the SSE2 kernel does:
// sign-extend into the high byte of a 16-bit lane, then arithmetic shift
// right by 5. Multiplying a channel lane (value << 8) by the result and
// taking the high 16 bits of the 32-bit product equals the scalar
// colorTransformDelta.
func colorCst(mult uint8) int32 {
	return int32(int16(uint16(mult)<<8) >> 5)
}

// transformColorPixel transforms one packed pixel using the high-half-word
// multiply formulation.
func transformColorPixel(p uint32, cstGR, cstGB, cstRB int32) uint32 {
	// Channel lanes hold the byte value shifted into the high half of a
	// sign-extended 16-bit word, i.e. green<<8 and red<<8.
	greenLane := int32(int16(uint16(p & 0xff00)))
	redLane := int32(int16(uint16((p >> 8) & 0xff00)))

	deltaRed := (greenLane * cstGR) >> 16
	deltaBlue := ((greenLane * cstGB) >> 16) + ((redLane * cstRB) >> 16)

	newRed := uint32((int32(p>>16)&0xff)-deltaRed) & 0xff
	newBlue := uint32((int32(p)&0xff)-deltaBlue) & 0xff
	return (p & 0xff00ff00) | (newRed << 16) | newBlue
}

func transformColorBulk(m *Multipliers, data []uint32, numPixels int) {
	cstGR := colorCst(m.GreenToRed)
	cstGB := colorCst(m.GreenToBlue)
	cstRB := colorCst(m.RedToBlue)
	i := 0
	for ; i+pixelStep <= numPixels; i += pixelStep {
		data[i+0] = transformColorPixel(data[i+0], cstGR, cstGB, cstRB)
		data[i+1] = transformColorPixel(data[i+1], cstGR, cstGB, cstRB)
		data[i+2] = transformColorPixel(data[i+2], cstGR, cstGB, cstRB)
		data[i+3] = transformColorPixel(data[i+3], cstGR, cstGB, cstRB)
	}
	transformColor(m, data[i:], numPixels-i)
}

func collectColorRedTransformsBulk(argb []uint32, stride, tileWidth, tileHeight int, greenToRed uint8, histo []uint32) {
	cstGR := colorCst(greenToRed)
	for y := 0; y < tileHeight; y++ {
		row := argb[y*stride:]
		x := 0
		for ; x+pixelStep <= tileWidth; x += pixelStep {
			histo[transformedRedByte(row[x+0], cstGR)]++
			histo[transformedRedByte(row[x+1], cstGR)]++
			histo[transformedRedByte(row[x+2], cstGR)]++
			histo[transformedRedByte(row[x+3], cstGR)]++
		}
		for ; x < tileWidth; x++ {
			histo[transformColorRed(greenToRed, row[x])]++
		}
	}
}

func collectColorBlueTransformsBulk(argb []uint32, stride, tileWidth, tileHeight int, greenToBlue, redToBlue uint8, histo []uint32) {
	cstGB := colorCst(greenToBlue)
	cstRB := colorCst(redToBlue)
	for y := 0; y < tileHeight; y++ {
		row := argb[y*stride:]
		x := 0
		for ; x+pixelStep <= tileWidth; x += pixelStep {
			histo[transformedBlueByte(row[x+0], cstGB, cstRB)]++
			histo[transformedBlueByte(row[x+1], cstGB, cstRB)]++
			histo[transformedBlueByte(row[x+2], cstGB, cstRB)]++
			histo[transformedBlueByte(row[x+3], cstGB, cstRB)]++
		}
		for ; x < tileWidth; x++ {
			histo[transformColorBlue(greenToBlue, redToBlue, row[x])]++
		}
	}
}

func transformedRedByte(p uint32, cstGR int32) uint8 {
	greenLane := int32(int16(uint16(p & 0xff00)))
	delta := (greenLane * cstGR) >> 16
	return uint8((int32(p>>16) & 0xff) - delta)
}

func transformedBlueByte(p uint32, cstGB, cstRB int32) uint8 {
	greenLane := int32(int16(uint16(p & 0xff00)))
	redLane := int32(int16(uint16((p >> 8) & 0xff00)))
	delta := ((greenLane * cstGB) >> 16) + ((redLane * cstRB) >> 16)
	return uint8((int32(p) & 0xff) - delta)
}

func addVectorBulk(a, b, out []uint32, size int) {
	i := 0
	for ; i+vectorLineSize <= size; i += vectorLineSize {
		out[i+0] = a[i+0] + b[i+0]
		out[i+1] = a[i+1] + b[i+1]
		out[i+2] = a[i+2] + b[i+2]
		out[i+3] = a[i+3] + b[i+3]
		out[i+4] = a[i+4] + b[i+4]
		out[i+5] = a[i+5] + b[i+5]
		out[i+6] = a[i+6] + b[i+6]
		out[i+7] = a[i+7] + b[i+7]
		out[i+8] = a[i+8] + b[i+8]
		out[i+9] = a[i+9] + b[i+9]
		out[i+10] = a[i+10] + b[i+10]
		out[i+11] = a[i+11] + b[i+11]
		out[i+12] = a[i+12] + b[i+12]
		out[i+13] = a[i+13] + b[i+13]
		out[i+14] = a[i+14] + b[i+14]
		out[i+15] = a[i+15] + b[i+15]
	}
	addVector(a[i:], b[i:], out[i:], size-i)
}

func addVectorEqBulk(a, out []uint32, size int) {
	i := 0
	for ; i+vectorLineSize <= size; i += vectorLineSize {
		out[i+0] += a[i+0]
		out[i+1] += a[i+1]
		out[i+2] += a[i+2]
		out[i+3] += a[i+3]
		out[i+4] += a[i+4]
		out[i+5] += a[i+5]
		out[i+6] += a[i+6]
		out[i+7] += a[i+7]
		out[i+8] += a[i+8]
		out[i+9] += a[i+9]
		out[i+10] += a[i+10]
		out[i+11] += a[i+11]
		out[i+12] += a[i+12]
		out[i+13] += a[i+13]
		out[i+14] += a[i+14]
		out[i+15] += a[i+15]
	}
	addVectorEq(a[i:], out[i:], size-i)
}
