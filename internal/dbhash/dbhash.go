// Package dbhash computes a cheap, best-effort integrity digest over a
// factor63 database file: the recorded total length plus a fixed-size
// sample from the start, middle, and end of the file. It is not a
// replacement for factor63.Init's own open/mmap error reporting: a file
// that is merely the wrong factor.bin will usually, but not provably,
// produce a different digest than the one the caller expected.
package dbhash

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// DefaultSampleSize is the number of bytes sampled from each of the three
// probe points (start, middle, end) of the file.
const DefaultSampleSize = 4096

// Digest hashes totalLength together with three DefaultSampleSize-byte
// samples of path (at offset 0, centred on totalLength/2, and at
// totalLength-sampleSize)
// using BLAKE2b-256. It returns an error if path is shorter than
// totalLength.
func Digest(path string, totalLength int64) ([32]byte, error) {
	return digest(path, totalLength, DefaultSampleSize)
}

func digest(path string, totalLength int64, sampleSize int) ([32]byte, error) {
	var zero [32]byte

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("dbhash: open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return zero, fmt.Errorf("dbhash: stat: %w", err)
	}
	if info.Size() < totalLength {
		return zero, fmt.Errorf("dbhash: %s is %d bytes, expected at least %d", path, info.Size(), totalLength)
	}
	if totalLength < int64(sampleSize) {
		sampleSize = int(totalLength)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return zero, fmt.Errorf("dbhash: %w", err)
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(totalLength))
	h.Write(lenBuf[:])

	offsets := []int64{0, totalLength/2 - int64(sampleSize)/2, totalLength - int64(sampleSize)}
	buf := make([]byte, sampleSize)
	for _, off := range offsets {
		if off < 0 {
			off = 0
		}
		n, err := f.ReadAt(buf, off)
		if err != nil && err != io.EOF {
			return zero, fmt.Errorf("dbhash: read at %d: %w", off, err)
		}
		h.Write(buf[:n])
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}
