package factor63

import "github.com/arbooker/factor63/internal/dbhash"

// DatabaseDigest computes the best-effort integrity digest described in
// internal/dbhash over the factor.bin at path, without mapping it. It is
// useful for a caller that wants to compare a downloaded database against
// a known-good digest before calling Init; a mismatch is a reason to
// refuse to load the file, but Init's own open/map errors remain the only
// two error kinds factor63 itself reports.
func DatabaseDigest(path string) ([32]byte, error) {
	return dbhash.Digest(path, TotalLength)
}
