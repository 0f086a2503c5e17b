package lossless

import "math"

// Entropy-cost estimation for histogram populations, used by the encoder
// search to compare candidate configurations without emitting bits.
// Adapted from libwebp histogram_enc.c (VP8LBitsEntropy,
// VP8LHistogramEstimateBits), with costs in float64.

// fastSLog2LUTSize is the LUT size for fastSLog2. 4096 entries cover the
// vast majority of histogram count values encountered in practice.
const fastSLog2LUTSize = 4096

// fastSLog2LUT is a precomputed lookup table for v * log2(v).
var fastSLog2LUT [fastSLog2LUTSize]float64

func init() {
	fastSLog2LUT[0] = 0
	for i := 1; i < fastSLog2LUTSize; i++ {
		fv := float64(i)
		fastSLog2LUT[i] = fv * math.Log2(fv)
	}
}

// fastSLog2 computes v * log2(v) for v > 0, returning 0 for v == 0.
func fastSLog2(v uint32) float64 {
	if v < fastSLog2LUTSize {
		return fastSLog2LUT[v]
	}
	fv := float64(v)
	return fv * math.Log2(fv)
}

// bitEntropy holds intermediate entropy calculation results.
type bitEntropy struct {
	entropy     float64
	sum         uint32
	nonzeros    int
	maxVal      uint32
	nonzeroCode uint32
}

// streaks holds run-length statistics for Huffman cost estimation.
type streaks struct {
	counts  [2]int    // [zero, non-zero] number of streaks > 3
	streaks [2][2]int // [zero/non-zero][streak<=3 / streak>3]
}

// processStreak folds one value-run transition into the accumulators.
func processStreak(valPrev uint32, iPrev, i int, be *bitEntropy, st *streaks) {
	streak := i - iPrev
	if valPrev != 0 {
		be.sum += valPrev * uint32(streak)
		be.nonzeros += streak
		be.nonzeroCode = uint32(iPrev)
		be.entropy += fastSLog2(valPrev) * float64(streak)
		if be.maxVal < valPrev {
			be.maxVal = valPrev
		}
	}
	isNZ := 0
	if valPrev != 0 {
		isNZ = 1
	}
	longStreak := 0
	if streak > 3 {
		longStreak = 1
	}
	st.counts[isNZ] += longStreak
	st.streaks[isNZ][longStreak] += streak
}

// getEntropyUnrefined computes the unrefined bit entropy and streak stats
// for a population array.
func getEntropyUnrefined(population []uint32) (bitEntropy, streaks) {
	var be bitEntropy
	var st streaks

	if len(population) == 0 {
		return be, st
	}

	iPrev := 0
	xPrev := population[0]
	for i := 1; i < len(population); i++ {
		x := population[i]
		if x != xPrev {
			processStreak(xPrev, iPrev, i, &be, &st)
			xPrev = x
			iPrev = i
		}
	}
	processStreak(xPrev, iPrev, len(population), &be, &st)

	be.entropy = fastSLog2(be.sum) - be.entropy
	return be, st
}

// bitsEntropyUnrefined computes the unrefined bit entropy for a population
// without streak statistics.
func bitsEntropyUnrefined(array []uint32) bitEntropy {
	var be bitEntropy
	for i, v := range array {
		if v != 0 {
			be.sum += v
			be.nonzeroCode = uint32(i)
			be.nonzeros++
			be.entropy += fastSLog2(v)
			if be.maxVal < v {
				be.maxVal = v
			}
		}
	}
	be.entropy = fastSLog2(be.sum) - be.entropy
	return be
}

// bitsEntropyRefine applies the libwebp heuristic refinement to unrefined
// entropy, biasing sparse populations toward their run-length cost.
func bitsEntropyRefine(be *bitEntropy) float64 {
	if be.nonzeros < 5 {
		if be.nonzeros <= 1 {
			return 0
		}
		if be.nonzeros == 2 {
			return 0.99*float64(be.sum) + 0.01*be.entropy
		}
		var mix float64
		if be.nonzeros == 3 {
			mix = 0.95
		} else {
			mix = 0.7
		}
		minLimit := float64(2*be.sum - be.maxVal)
		minLimit = mix*minLimit + (1.0-mix)*be.entropy
		if be.entropy < minLimit {
			return minLimit
		}
		return be.entropy
	}

	mix := 0.627
	minLimit := float64(2*be.sum - be.maxVal)
	minLimit = mix*minLimit + (1.0-mix)*be.entropy
	if be.entropy < minLimit {
		return minLimit
	}
	return be.entropy
}

// BitsEntropy returns the refined Shannon-like entropy for a symbol
// population.
func BitsEntropy(array []uint32) float64 {
	be := bitsEntropyUnrefined(array)
	return bitsEntropyRefine(&be)
}

// initialHuffmanCost returns the initial Huffman overhead bias.
func initialHuffmanCost() float64 {
	return float64(CodeLengthCodes*3) - 9.1
}

// finalHuffmanCost computes the Huffman overhead from streak statistics.
// Constants are empirical, ported from the libwebp fixed-point values.
func finalHuffmanCost(st *streaks) float64 {
	retval := initialHuffmanCost()
	retval += float64(st.counts[0]) * 1.5625
	retval += float64(st.streaks[0][1]) * 0.234375
	retval += float64(st.counts[1]) * 2.578125
	retval += float64(st.streaks[1][1]) * 0.703125
	retval += float64(st.streaks[0][0]) * 1.796875
	retval += float64(st.streaks[1][0]) * 3.28125
	return retval
}

// populationCost computes entropy plus Huffman overhead for one population.
func populationCost(population []uint32) float64 {
	be, st := getEntropyUnrefined(population)
	return bitsEntropyRefine(&be) + finalHuffmanCost(&st)
}

// PopulationCost returns the estimated coding cost of a histogram, summed
// over the five symbol streams.
func PopulationCost(h *Histogram) float64 {
	var cost float64
	for i := histLiteral; i <= histDistance; i++ {
		cost += populationCost(h.population(i))
	}
	return cost
}

// extraCost computes the extra-bits cost carried by length or distance
// prefix codes, which encode a payload of trailing bits per symbol.
func extraCost(population []uint32, length int) float64 {
	if length < 6 {
		return 0
	}
	var cost float64
	cost += float64(population[4] + population[5])
	halfLen := length/2 - 1
	for i := 2; i < halfLen; i++ {
		cost += float64(i) * float64(population[2*i+2]+population[2*i+3])
	}
	return cost
}

// EstimateBits returns the full estimated coding cost of a histogram,
// including the extra bits of length and distance codes. Matches
// VP8LHistogramEstimateBits.
func EstimateBits(h *Histogram) float64 {
	return PopulationCost(h) +
		extraCost(h.Literal[NumLiteralCodes:], NumLengthCodes) +
		extraCost(h.Distance[:], NumDistanceCodes)
}
