/*
Package factor63 implements deterministic prime factorization of signed
64-bit integers with |n| < 2^63. It features:

  - A Montgomery-arithmetic strong-Fermat primality test backed by a
    precomputed base-2 strong-pseudoprime exception table, giving full
    primality certainty rather than a probabilistic answer.
  - A Brent-variant Pollard-rho factoring loop with batched GCD probing and
    a precomputed collision table that turns a rho cycle length directly
    into the small prime that caused it.
  - An orchestrator cascading sieve-based small-factor stripping, a bounded
    wheel GCD, a small-prime factor table, primality testing, and rho, to
    produce a complete factorization in one pass.

The package consumes a read-only, memory-mapped database built out of band
(see internal/dbhash and the database layout in database.go); construction
of that database, argument parsing, and sorting of returned factors are
left to callers.
*/
package factor63

// M is the threshold below which factor_table answers directly: the
// smallest integer whose square exceeds 2^63.
const M = 3037000500

// smallPrimes are the first 15 odd primes, whose product is smaller than
// 2^64 and used once per call to strip small factors via a single GCD.
var smallPrimes = [15]int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// wheel is the product of smallPrimes, 16294579238595022365.
const wheel uint64 = 16294579238595022365

// Factor pairs a prime (or -1, for the sign of a negative input) with its
// multiplicity.
type Factor struct {
	Prime    int64
	Exponent int
}
