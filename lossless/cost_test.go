package lossless

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastSLog2(t *testing.T) {
	tests := []struct {
		v    uint32
		want float64
	}{
		{0, 0},
		{1, 0},
		{2, 2},
		{4, 8},
		{8, 24},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, fastSLog2(tt.v), 1e-9, "fastSLog2(%d)", tt.v)
	}

	// Values past the LUT fall back to direct computation.
	v := uint32(fastSLog2LUTSize + 1)
	want := float64(v) * math.Log2(float64(v))
	require.InDelta(t, want, fastSLog2(v), 1e-9)
}

func TestBitsEntropy(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, 0.0, BitsEntropy(make([]uint32, 256)))
	})

	t.Run("single symbol", func(t *testing.T) {
		pop := make([]uint32, 256)
		pop[42] = 100
		require.Equal(t, 0.0, BitsEntropy(pop))
	})

	t.Run("two equal symbols", func(t *testing.T) {
		pop := make([]uint32, 256)
		pop[0] = 1
		pop[255] = 1
		// Unrefined entropy is 2 bits; the two-symbol refinement mixes
		// 0.99*sum + 0.01*entropy = 0.99*2 + 0.01*2 = 2.
		require.InDelta(t, 2.0, BitsEntropy(pop), 1e-9)
	})

	t.Run("uniform distribution", func(t *testing.T) {
		// A flat 256-symbol population costs exactly 8 bits per symbol.
		pop := make([]uint32, 256)
		for i := range pop {
			pop[i] = 10
		}
		require.InDelta(t, 8.0*256*10, BitsEntropy(pop), 1e-6)
	})
}

func TestPopulationCostAllZero(t *testing.T) {
	// One zero streak of length 256:
	//   initialHuffmanCost() + 1*1.5625 + 256*0.234375 = 47.9 + 1.5625 + 60
	cost := populationCost(make([]uint32, 256))
	require.InDelta(t, 109.4625, cost, 1e-9)
}

func TestPopulationCostSingleSymbol(t *testing.T) {
	// One non-zero symbol in the red stream. Per stream, the cost is pure
	// streak overhead (entropy refines to zero everywhere):
	//   literal, 280 zeros:  47.9 + 1.5625 + 280*0.234375          = 115.0875
	//   red, one symbol:     47.9 + 2*1.5625 + 255*0.234375
	//                             + 1*3.28125                      = 114.071875
	//   blue, alpha zeros:   2 * (47.9 + 1.5625 + 256*0.234375)    = 218.925
	//   distance, 40 zeros:  47.9 + 1.5625 + 40*0.234375           = 58.8375
	h := NewHistogram(0)
	h.Red[42] = 100
	require.InDelta(t, 506.921875, PopulationCost(h), 1e-6)
}

func TestEstimateBits(t *testing.T) {
	h := NewHistogram(0)
	// Length codes 4 and 5 carry one extra bit each:
	// extraCost adds population[4] + population[5] = 5.
	h.Literal[NumLiteralCodes+4] = 2
	h.Literal[NumLiteralCodes+5] = 3

	extra := EstimateBits(h) - PopulationCost(h)
	require.InDelta(t, 5.0, extra, 1e-9)
}
