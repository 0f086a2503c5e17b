// Package lossless provides the symbol-frequency histograms used by the
// VP8L lossless encoder to estimate entropy-coding cost during search.
//
// A Histogram holds counts for the five VP8L symbol streams (green+length,
// red, blue, alpha, distance). The encoder builds one histogram per
// candidate block or configuration and repeatedly merges them to evaluate
// the aggregate cost of a grouping, all before any bitstream is produced.
//
// Reference: libwebp/src/enc/histogram_enc.c.
package lossless

import "github.com/deepteams/vp8ldsp/dsp"

// Histogram holds per-symbol frequency counts for the five VP8L symbol
// streams. Counts stay below 1<<28 (the maximum pixel count of a WebP
// image), so adding two histograms never overflows 32 bits.
type Histogram struct {
	Literal  []uint32 // green/length/cache indices, sized by paletteCodeBits
	Red      [NumLiteralCodes]uint32
	Blue     [NumLiteralCodes]uint32
	Alpha    [NumLiteralCodes]uint32
	Distance [NumDistanceCodes]uint32

	paletteCodeBits int // color cache bits (0 = disabled)
}

// NewHistogram allocates a Histogram with the literal slice sized for the
// given color cache bits. cacheBits must be in [0, MaxColorCacheBits].
func NewHistogram(cacheBits int) *Histogram {
	if cacheBits < 0 || cacheBits > MaxColorCacheBits {
		panic("lossless: cache bits out of range")
	}
	return &Histogram{
		paletteCodeBits: cacheBits,
		Literal:         make([]uint32, HistogramNumCodes(cacheBits)),
	}
}

// PaletteCodeBits returns the color cache bits the histogram was sized for.
func (h *Histogram) PaletteCodeBits() int { return h.paletteCodeBits }

// Clear zeros out all frequency arrays.
func (h *Histogram) Clear() {
	for i := range h.Literal {
		h.Literal[i] = 0
	}
	h.Red = [NumLiteralCodes]uint32{}
	h.Blue = [NumLiteralCodes]uint32{}
	h.Alpha = [NumLiteralCodes]uint32{}
	h.Distance = [NumDistanceCodes]uint32{}
}

// AddLiteral accumulates one literal ARGB pixel: each channel byte counts
// into its stream, with green feeding the literal stream.
func (h *Histogram) AddLiteral(argb uint32) {
	h.Alpha[(argb>>24)&0xff]++
	h.Red[(argb>>16)&0xff]++
	h.Literal[(argb>>8)&0xff]++
	h.Blue[argb&0xff]++
}

// MergeHistograms computes out[i] = a[i] + b[i] over all five frequency
// arrays. a and b must share palette code bits, and out must be sized for
// the same; violating that is a caller bug and panics. out may alias a or
// b: passing out == b accumulates a into b in place, with results identical
// to merging into a fresh histogram.
//
// The fixed 256-entry blocks go through the dispatched vector adders; the
// literal extension (length and cache codes past index 256) and the
// distance array are summed scalarly, matching HistogramAdd in
// lossless_enc_sse2.c.
func MergeHistograms(a, b, out *Histogram) {
	if a.paletteCodeBits != b.paletteCodeBits {
		panic("lossless: histogram palette code bits mismatch")
	}
	literalSize := HistogramNumCodes(a.paletteCodeBits)

	if b != out {
		dsp.AddVector(a.Literal, b.Literal, out.Literal, NumLiteralCodes)
		dsp.AddVector(a.Red[:], b.Red[:], out.Red[:], NumLiteralCodes)
		dsp.AddVector(a.Blue[:], b.Blue[:], out.Blue[:], NumLiteralCodes)
		dsp.AddVector(a.Alpha[:], b.Alpha[:], out.Alpha[:], NumLiteralCodes)
	} else {
		dsp.AddVectorEq(a.Literal, out.Literal, NumLiteralCodes)
		dsp.AddVectorEq(a.Red[:], out.Red[:], NumLiteralCodes)
		dsp.AddVectorEq(a.Blue[:], out.Blue[:], NumLiteralCodes)
		dsp.AddVectorEq(a.Alpha[:], out.Alpha[:], NumLiteralCodes)
	}
	for i := NumLiteralCodes; i < literalSize; i++ {
		out.Literal[i] = a.Literal[i] + b.Literal[i]
	}
	for i := 0; i < NumDistanceCodes; i++ {
		out.Distance[i] = a.Distance[i] + b.Distance[i]
	}
	out.paletteCodeBits = a.paletteCodeBits
}

// HistogramAdd adds the frequency counts of src to dst in place.
func HistogramAdd(dst, src *Histogram) {
	MergeHistograms(src, dst, dst)
}

// histogramIndex enumerates the five sub-histogram streams.
type histogramIndex int

const (
	histLiteral histogramIndex = iota
	histRed
	histBlue
	histAlpha
	histDistance
)

func (h *Histogram) population(idx histogramIndex) []uint32 {
	switch idx {
	case histLiteral:
		return h.Literal
	case histRed:
		return h.Red[:]
	case histBlue:
		return h.Blue[:]
	case histAlpha:
		return h.Alpha[:]
	case histDistance:
		return h.Distance[:]
	}
	return nil
}
