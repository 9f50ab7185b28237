package factor63

import "math/bits"

// montCtx is the Montgomery arithmetic context for one odd modulus n with
// M <= n < 2^63: nbar = -n^{-1} mod 2^64, one = 2^64 mod n (the Montgomery
// form of 1), and neg1 = n - one (the Montgomery form of -1). It is
// transient, stack-resident, and scoped to a single Factor/fastIsPrime63
// call; it is never shared across goroutines.
type montCtx struct {
	n, nbar, one, neg1 uint64
}

// newMontCtx computes nbar by lifting a mod-16 inverse through four Newton
// steps (4->8->16->32->64 bits of precision).
func newMontCtx(n uint64) montCtx {
	k := uint32((n+1)>>2<<3 - n)
	k *= 2 + k*uint32(n)
	k *= 2 + k*uint32(n)
	k *= 2 + k*uint32(n)
	nbar := uint64(k) * (2 + uint64(k)*n)

	one := 1 + ^uint64(0)%n
	neg1 := n - one

	return montCtx{n: n, nbar: nbar, one: one, neg1: neg1}
}

// mulRedc computes x*y*2^-64 mod n for 0 <= x, y < n, via a 128-bit
// intermediate product and one Montgomery reduction step. The final
// conditional subtraction uses a branchless sign-extension trick: a
// potentially negative r is corrected by adding n masked with the sign
// bit of r, rather than a data-dependent branch.
func (c *montCtx) mulRedc(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	m := lo * c.nbar
	mhi, mlo := bits.Mul64(m, c.n)
	_, carry := bits.Add64(lo, mlo, 0) // low 64 bits of the sum are guaranteed zero
	hi += mhi + carry

	r := hi - c.n
	r += c.n & uint64(int64(r)>>63)
	return r
}
