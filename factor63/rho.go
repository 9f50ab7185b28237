package factor63

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// iterations and maxStride are the Brent-epoch rho tuning constants.
// iterations must be > 13193 (so every prime below 2^21 is guaranteed
// hit during rho), a multiple of maxStride, and satisfy
// collIndex[iterations-1] != 0 against the shipped database; maxStride
// must be a power of two. These values match the database this package
// is calibrated against: they are not independently tunable.
const (
	iterations = 300288
	maxStride  = 256
)

// isqrt returns the integer square root of f, computed with extended
// working precision via bigfloat.Sqrt so that a float64-rounding edge
// case (the true root landing just above a float64 approximation) cannot
// occur; the result is always corrected to satisfy s*s <= f < (s+1)*(s+1)
// exactly before being returned, so callers can compare f == s*s exactly
// rather than trust the float computation.
func isqrt(f uint64) uint64 {
	if f == 0 {
		return 0
	}
	root := bigfloat.Sqrt(new(big.Float).SetPrec(128).SetUint64(f))
	s, _ := root.Uint64()
	for s > 0 && s*s > f {
		s--
	}
	for (s+1)*(s+1) <= f {
		s++
	}
	return s
}

func absDiff(a, b uint64) uint64 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// pollardRho is a Brent-style rho driver: it factors the odd composite n
// (known to be >= M and not prime) into out, starting at index k, and
// returns the new entry count. n is also the fixed Montgomery modulus
// for the whole call; m is the shrinking cofactor actually being
// factored, tracked separately because extracted small factors divide m
// (and the accumulated-product GCD target) without changing the modulus
// the arithmetic is performed against.
func (db *Database) pollardRho(out []Factor, k int, n uint64) int {
	c := newMontCtx(n)
	m := n
	y := c.one
	f := c.one

	for i := 1; i < iterations; i <<= 1 {
		mask := i - 1
		if i >= maxStride {
			mask = maxStride - 1
		}

		x := y
		y0 := y
		j := 0

		for j < i && i+j < iterations {
			y = c.mulRedc(y, y+c.one)
			f = c.mulRedc(f, absDiff(y, x))
			j++

			if j&mask != 0 {
				continue
			}
			if f = oddGCD(m, f); f == 1 {
				y0 = y
				continue
			}

			if f >= M {
				// Backtrack to the exact cycle index that produced this
				// collision, re-stepping one Brent iteration at a time.
				y = y0
				j -= mask + 1
				for {
					y = c.mulRedc(y, y+c.one)
					f = oddGCD(m, absDiff(y, x))
					j++
					if f != 1 {
						break
					}
				}

				ptr := int(db.collIndex[i+j-2])
				for f >= M {
					s := isqrt(f)
					switch {
					case db.fastIsPrime63(int64(f)):
						out[k] = Factor{Prime: int64(f), Exponent: 1}
						m /= f
						k++
						f = 1
					case f == s*s:
						f = s
					default:
						for f%uint64(db.collTable[ptr]) != 0 {
							ptr++
						}
						p := uint64(db.collTable[ptr])
						ptr++
						exp := 0
						for {
							f /= p
							m /= p
							exp++
							if f%p != 0 {
								break
							}
						}
						for m%p == 0 {
							m /= p
							exp++
						}
						out[k] = Factor{Prime: int64(p), Exponent: exp}
						k++
					}
				}
			}

			k += db.smallFactors(out[k:], f, &m)
			if m < M {
				k += db.smallFactors(out[k:], m, &m)
				return k
			}
			if db.fastIsPrime63(int64(m)) {
				out[k] = Factor{Prime: int64(m), Exponent: 1}
				k++
				return k
			}

			y0 = y
			f = c.one
		}
	}

	// Every remaining epoch has been exhausted without resolving m: since
	// iterations exceeds 13193, every prime below 2^21 has necessarily
	// been considered, so m is guaranteed to be a prime square or a
	// semiprime whose smaller prime is recorded in the database's final
	// collision bucket.
	ptr := int(db.collIndex[iterations-1])
	for m%uint64(db.collTable[ptr]) != 0 {
		ptr++
	}
	p := uint64(db.collTable[ptr])
	m /= p
	if m == p {
		out[k] = Factor{Prime: int64(p), Exponent: 2}
		k++
	} else {
		out[k] = Factor{Prime: int64(p), Exponent: 1}
		k++
		out[k] = Factor{Prime: int64(m), Exponent: 1}
		k++
	}
	return k
}
