package mathx

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MulDiv returns floor(a*mul/div) computed with a 128-bit intermediate, so the
// product never wraps. A quotient wider than 64 bits saturates at MaxUint64.
// div == 0 yields 0.
func MulDiv[T constraints.Unsigned](a, mul, div T) uint64 {
	if div == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(a), uint64(mul))
	d := uint64(div)
	if hi >= d {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, d)
	return q
}
