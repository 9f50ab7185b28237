package factor63

import "math/bits"

// oddGCD computes gcd(x, y) with x required to be odd: strip trailing
// zeros from y up front, then repeatedly subtract the smaller from the
// larger and strip the trailing zeros the subtraction introduces, until
// the two operands meet.
func oddGCD(x, y uint64) uint64 {
	if y == 0 {
		return x
	}
	y >>= bits.TrailingZeros64(y)
	for x != y {
		if x < y {
			y -= x
			y >>= bits.TrailingZeros64(y)
		} else {
			x -= y
			x >>= bits.TrailingZeros64(x)
		}
	}
	return x
}
