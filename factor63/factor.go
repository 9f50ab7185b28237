package factor63

import "math/bits"

// Factor returns the prime factorization of n0 as an ordered
// (discovery-order, not necessarily sorted) slice of at most 16 Factor
// entries, and true, or (nil, false) if n0 is 0.
//
// n0 == 0 has no well-defined factorization, so it is rejected
// explicitly rather than fed as a zero argument into oddGCD.
//
// Guarantees: n0 == (-1 if negative else 1) * product of p^e over the
// returned entries; every prime is genuinely prime or the literal -1,
// which if present occupies index 0 with exponent 1; every exponent is
// >= 1.
func (db *Database) Factor(n0 int64) ([]Factor, bool) {
	if n0 == 0 {
		return nil, false
	}

	var buf [16]Factor
	k := 0

	var n uint64
	if n0 < 0 {
		buf[k] = Factor{Prime: -1, Exponent: 1}
		k++
		n = uint64(-n0)
	} else {
		n = uint64(n0)
	}

	if n&1 == 0 {
		tz := bits.TrailingZeros64(n)
		buf[k] = Factor{Prime: 2, Exponent: tz}
		k++
		n >>= tz
	}

	f := oddGCD(n, wheel)
	for _, p := range smallPrimes {
		if f <= 1 {
			break
		}
		up := uint64(p)
		if f%up != 0 {
			continue
		}
		f /= up
		exp := 0
		for {
			n /= up
			exp++
			if n%up != 0 {
				break
			}
		}
		buf[k] = Factor{Prime: p, Exponent: exp}
		k++
	}

	if n < M {
		k += db.smallFactors(buf[k:], n, &n)
		return buf[:k], true
	}
	if db.fastIsPrime63(int64(n)) {
		buf[k] = Factor{Prime: int64(n), Exponent: 1}
		k++
		return buf[:k], true
	}

	k = db.pollardRho(buf[:], k, n)
	return buf[:k], true
}
