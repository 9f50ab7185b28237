package factor63

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbooker/factor63/internal/sampling"
)

// toMontgomery computes x*2^64 mod n via big.Int, independently of the
// package's own Newton-iteration nbar machinery, to serve as an oracle.
func toMontgomery(x, n uint64) uint64 {
	r := new(big.Int).Lsh(big.NewInt(0).SetUint64(x), 64)
	r.Mod(r, new(big.Int).SetUint64(n))
	return r.Uint64()
}

func TestNbarInverse(t *testing.T) {
	// nbar must satisfy n*nbar == -1 mod 2^64, the Newton-iteration target.
	for _, n := range []uint64{3, 97, 1009, M + 1, 9223372036854775783} {
		c := newMontCtx(n | 1)
		require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), n*c.nbar, "n=%d", n)
	}
}

func TestMulRedcAgainstBigIntOracle(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("factor63-montgomery-test-seed-00"))
	require.NoError(t, err)

	moduli := []uint64{97, 1000003, M + 1, 9223372036854775783}
	for _, n := range moduli {
		c := newMontCtx(n)
		for i := 0; i < 200; i++ {
			x := uint64(prng.Int63n(int64(n)))
			y := uint64(prng.Int63n(int64(n)))

			xm := toMontgomery(x, n)
			ym := toMontgomery(y, n)

			got := c.mulRedc(xm, ym)

			// x*y can overflow uint64 for our chosen moduli, so the
			// reference product mod n is computed with big.Int.
			prod := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			prod.Mod(prod, new(big.Int).SetUint64(n))
			want := toMontgomery(prod.Uint64(), n)

			require.Equal(t, want, got, "n=%d x=%d y=%d", n, x, y)
		}
	}
}

func TestMontgomeryOneAndNeg1(t *testing.T) {
	for _, n := range []uint64{97, M + 1, 9223372036854775783} {
		c := newMontCtx(n)
		require.Equal(t, uint64(0), (c.one+c.neg1)%n, "one + neg1 must be 0 mod n")
		require.Equal(t, toMontgomery(1, n), c.one)
	}
}
