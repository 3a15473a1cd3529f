package poly

import (
	"math/bits"

	"github.com/ethpandaops/go-das-kzg/bls"
)

// bitReversalPermutationIndices precomputes, for a domain of the given
// power-of-two size, the index j such that position i in bit-reversed
// order holds the natural-order element at index j.
func bitReversalPermutationIndices(size uint64) []uint32 {
	logSize := bits.TrailingZeros64(size)
	out := make([]uint32, size)
	for i := range out {
		out[i] = uint32(bits.Reverse64(uint64(i)) >> (64 - logSize))
	}
	return out
}

// BitReverse permutes vals in place according to the bit-reversal of its
// own length, which must be a power of two.
func BitReverse(vals []bls.Fr) {
	n := uint64(len(vals))
	logN := bits.TrailingZeros64(n)
	for i := range vals {
		j := int(bits.Reverse64(uint64(i)) >> (64 - logN))
		if j > i {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}
}

// BitReverseG1 permutes a slice of G1 points the same way BitReverse
// permutes field elements; used by the G1 FFT butterfly and to put
// FK20's natural-order proofs into wire cell-index order.
func BitReverseG1(vals []bls.G1Point) {
	n := uint64(len(vals))
	logN := bits.TrailingZeros64(n)
	for i := range vals {
		j := int(bits.Reverse64(uint64(i)) >> (64 - logN))
		if j > i {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}
}

// BitReverseIndex reverses the low log2(size) bits of v: the same
// permutation BitReverse/BitReverseG1 apply to a whole slice, exposed
// for index arithmetic (cell <-> domain position mapping) where only a
// single index needs reversing.
func BitReverseIndex(v, size uint64) uint64 {
	logSize := bits.TrailingZeros64(size)
	return bits.Reverse64(v) >> (64 - logSize)
}
