// Package sampling provides a deterministic, keyed pseudorandom byte
// stream for generating reproducible test corpora: same key in, same
// byte stream out, with a Reset back to the start of the stream.
package sampling

import (
	"github.com/zeebo/blake3"
	"golang.org/x/exp/constraints"
)

// KeyedPRNG is a BLAKE3-XOF-backed byte stream keyed by a fixed seed. Two
// KeyedPRNGs created from the same key produce identical output, and
// Reset rewinds a stream back to its first byte, useful for replaying a
// failing property-test seed.
type KeyedPRNG struct {
	h *blake3.Hasher
	d *blake3.Digest
}

// NewKeyedPRNG derives a fresh XOF stream from key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{h: h, d: h.Digest()}, nil
}

// Read fills buf with the next len(buf) bytes of the stream.
func (p *KeyedPRNG) Read(buf []byte) (int, error) {
	return p.d.Read(buf)
}

// Reset rewinds the stream back to its first byte.
func (p *KeyedPRNG) Reset() {
	p.d = p.h.Digest()
}

// Int63n draws a uniformly distributed int64 in [0, bound) from the
// stream, by rejection sampling 8 bytes at a time against the sign bit.
func (p *KeyedPRNG) Int63n(bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	var buf [8]byte
	for {
		if _, err := p.Read(buf[:]); err != nil {
			return 0
		}
		v := int64(uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
			uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7]))
		if v < 0 {
			continue
		}
		return v % bound
	}
}

// UniformInts draws n uniformly distributed values in [0, bound) of any
// integer type from the stream, using the same rejection sampling as
// Int63n. It lets both the int64 factor63 corpora and, e.g., a uint32
// collision-table index corpus share one generator.
func UniformInts[T constraints.Integer](p *KeyedPRNG, bound T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(p.Int63n(int64(bound)))
	}
	return out
}
