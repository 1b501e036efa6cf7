package reducer

import (
	"math"
	"math/bits"
)

// StageBound returns the number of stages to run for a slice of length n.
type StageBound func(n int) int

// SqrtBound runs floor(sqrt(n)) + 1 stages. Stages past the point where
// 2^k >= n only visit out-of-range pairs and leave the slice unchanged.
func SqrtBound(n int) int {
	if n <= 0 {
		return 0
	}
	return isqrt(n) + 1
}

// Log2Bound runs ceil(log2(n)) stages, the minimum needed for the base at
// position 0 to absorb every other position.
func Log2Bound(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func isqrt(n int) int {
	// Compare by division so the squares never overflow near math.MaxInt.
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// offset returns 2^k, saturating at math.MaxInt once the shift no longer
// fits in an int.
func offset(k int) int {
	if k >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << k
}
