package factor63

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbooker/factor63/internal/testdb"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	// 25326001 is a known base-2 strong (Fermat) pseudoprime: it must
	// pass the raw strong-Fermat test even though it is composite. Its
	// exclusion is the job of fastIsPrime63's exception table, not of
	// isProbablePrime itself.
	require.True(t, isProbablePrime(25326001))
	// A genuine prime passes too.
	require.True(t, isProbablePrime(9223372036854775783))
	// 9 is odd and composite and must fail the strong-Fermat test outright.
	require.False(t, isProbablePrime(9))
}

func TestFastIsPrime63ExceptionFilter(t *testing.T) {
	psp := []int64{2047, 3277, 4033, 4681, 8321, 25326001, 29341, 42799}
	sort.Slice(psp, func(i, j int) bool { return psp[i] < psp[j] })
	db := NewSyntheticDatabase(psp, testdb.BuildPSPIndex(psp), nil, nil, nil)

	// 25326001 passes the strong-Fermat test but is listed in the
	// exception table: fastIsPrime63 must say composite.
	require.False(t, db.fastIsPrime63(25326001))

	// A real large prime is absent from the table and must be confirmed.
	require.True(t, db.fastIsPrime63(9223372036854775783))
}

func TestIsPrimeSmallRange(t *testing.T) {
	const maxOdd = 4000
	factorTable := testdb.BuildFactorTable(maxOdd)
	db := NewSyntheticDatabase(nil, nil, nil, nil, factorTable)

	cases := map[int64]bool{
		0: false, 1: false, 2: true, 3: true, 4: false, 9: false,
		17: true, 49: false, 997: true, 999: false, 3989: true,
	}
	for n, want := range cases {
		require.Equal(t, want, db.IsPrime(n), "n=%d", n)
	}
}

func TestFactorTableConsistency(t *testing.T) {
	// factor_table[v>>1] == 0 iff v is prime, otherwise it is the least
	// prime factor of v.
	const maxOdd = 20000
	table := testdb.BuildFactorTable(maxOdd)
	for v := uint64(3); v < maxOdd; v += 2 {
		entry := table[v>>1]
		if entry == 0 {
			require.True(t, isPrimeTrialDivision(v), "v=%d flagged prime by table", v)
			continue
		}
		require.Equal(t, uint64(0), v%uint64(entry), "v=%d not divisible by recorded factor %d", v, entry)
		for p := uint64(3); p < uint64(entry); p += 2 {
			require.NotEqual(t, uint64(0), v%p, "v=%d has smaller factor %d than recorded %d", v, p, entry)
		}
	}
}

func isPrimeTrialDivision(v uint64) bool {
	if v < 2 {
		return false
	}
	for p := uint64(2); p*p <= v; p++ {
		if v%p == 0 {
			return false
		}
	}
	return true
}
