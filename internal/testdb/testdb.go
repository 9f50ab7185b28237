// Package testdb builds small, hand-computed stand-ins for the real
// factor63 database tables, for use in unit tests that cannot practically
// embed the real multi-gigabyte factor.bin. It is not part of the public
// API and must never be used to serve real factoring requests: a
// synthetic factor table only covers the small range it was built for.
package testdb

import "sort"

// BuildFactorTable returns a factor-table slice covering every odd v in
// [3, maxOdd): entry v>>1 is the smallest prime factor of v, or 0 if v is
// prime. Entry 0 (v = 1) is left 0. This mirrors the real factor_table layout, just truncated to a
// small range instead of running all the way to 2*M.
func BuildFactorTable(maxOdd uint64) []uint16 {
	table := make([]uint16, maxOdd/2+1)
	for v := uint64(3); v < maxOdd; v += 2 {
		table[v>>1] = uint16(smallestFactor(v))
	}
	return table
}

func smallestFactor(v uint64) uint64 {
	for p := uint64(3); p*p <= v; p += 2 {
		if v%p == 0 {
			return p
		}
	}
	return 0
}

// BuildPSPIndex computes the psptable63_index bucket-boundary array
// (length 64) for a sorted ascending list of pseudoprimes: index[b] is
// the first position in psp whose value is >= 2^b.
func BuildPSPIndex(psp []int64) []int32 {
	if !sort.SliceIsSorted(psp, func(i, j int) bool { return psp[i] < psp[j] }) {
		panic("testdb: psp must be sorted ascending")
	}
	index := make([]int32, 64)
	pos := 0
	for b := 0; b < 64; b++ {
		threshold := int64(1) << uint(b)
		for pos < len(psp) && psp[pos] < threshold {
			pos++
		}
		index[b] = int32(pos)
	}
	return index
}
