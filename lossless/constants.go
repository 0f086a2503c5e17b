package lossless

// VP8L symbol-alphabet constants derived from libwebp/src/webp/format_constants.h.

const (
	// NumLiteralCodes is the number of literal codes (256 byte values).
	NumLiteralCodes = 256
	// NumLengthCodes is the number of length prefix codes.
	NumLengthCodes = 24
	// NumDistanceCodes is the number of distance prefix codes.
	NumDistanceCodes = 40
	// CodeLengthCodes is the number of code-length codes.
	CodeLengthCodes = 19

	// MaxColorCacheBits is the largest supported color-cache size exponent.
	MaxColorCacheBits = 10
)

// HistogramNumCodes returns the literal alphabet size for the given color
// cache bits: the 256 literals, the length prefix codes, and one cache-index
// code per cache entry when the cache is enabled.
func HistogramNumCodes(cacheBits int) int {
	n := NumLiteralCodes + NumLengthCodes
	if cacheBits > 0 {
		n += 1 << cacheBits
	}
	return n
}
