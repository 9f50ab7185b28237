package factor63

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOddGCDAgainstBigIntOracle(t *testing.T) {
	cases := []struct{ x, y uint64 }{
		{1, 0}, {1, 1}, {97, 0}, {97, 1001}, {9, 12}, {15, 0},
		{16294579238595022365, 35184372088831}, {1099511627791, 1099511627789},
	}
	for _, tc := range cases {
		got := oddGCD(tc.x, tc.y)
		want := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(tc.x), new(big.Int).SetUint64(tc.y)).Uint64()
		require.Equal(t, want, got, "gcd(%d,%d)", tc.x, tc.y)
	}
}

func TestOddGCDWheelConstant(t *testing.T) {
	// The wheel constant used by Factor's single GCD must equal the
	// product of exactly the 15 small odd primes 3*5*7*...*53.
	product := uint64(1)
	for _, p := range smallPrimes {
		product *= uint64(p)
	}
	require.Equal(t, wheel, product)
}
