// Package simhash fingerprints content-block markup so that upstream layout
// changes show up as a Hamming distance between two 64-bit values.
package simhash

import (
	"fmt"
	"hash/fnv"
	"math/bits"
)

// Sum folds features into a 64-bit SimHash. Each feature votes on every bit
// with its FNV-64a hash; a bit is set when more features voted for it than
// against. No features yields 0.
func Sum(features []string) uint64 {
	if len(features) == 0 {
		return 0
	}

	var votes [64]int
	h := fnv.New64a()
	for _, f := range features {
		h.Reset()
		h.Write([]byte(f))
		sum := h.Sum64()
		for i := range votes {
			if sum&(1<<uint(i)) != 0 {
				votes[i]++
			} else {
				votes[i]--
			}
		}
	}

	var fp uint64
	for i, v := range votes {
		if v > 0 {
			fp |= 1 << uint(i)
		}
	}
	return fp
}

// Distance returns the Hamming distance between two fingerprints.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Hex formats a fingerprint as 16 lowercase hex digits.
func Hex(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
