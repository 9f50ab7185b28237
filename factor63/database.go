package factor63

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Database counts, in array-element units, exactly as laid out in factor.bin.
const (
	psp63Count      = 23355139
	psp63IndexCount = 64
	collTableCount  = 146144317
	collIndexCount  = 808315
	factorTabCount  = 1518500250
)

// TotalLength is the exact byte length of a well-formed factor.bin: the
// sum of the five arrays' byte sizes. Init maps exactly this many bytes;
// internal/dbhash.Digest uses it to validate a candidate file before
// Init is even attempted.
const TotalLength = psp63Count*8 + psp63IndexCount*4 + collTableCount*4 + collIndexCount*4 + factorTabCount*2

// ErrDatabaseOpen is returned by Init when the database file cannot be
// opened for reading.
var ErrDatabaseOpen = errors.New("factor63: cannot open database")

// ErrDatabaseMap is returned by Init when the database file cannot be
// mapped into memory.
var ErrDatabaseMap = errors.New("factor63: cannot map database")

// Database holds the five read-only, memory-mapped tables factor63 needs:
// the base-2 strong-pseudoprime exception table and its bit-length index,
// the Pollard-rho collision table and its cycle-length index, and the
// small-prime factor table. It is immutable after Init returns and safe
// for concurrent use by any number of goroutines calling IsPrime or Factor
// with independent result buffers.
type Database struct {
	mapping []byte

	psp63       []int64
	psp63Index  []int32
	collTable   []uint32
	collIndex   []int32
	factorTable []uint16
}

// Init opens path, memory-maps it read-only for the lifetime of the
// process, and installs the five table views at their fixed offsets. A
// successful Init must happen-before any call to IsPrime or Factor; the
// caller is responsible for that ordering (e.g. a sync.Once in program
// startup).
//
// Init never partially initializes a Database: on any error the returned
// Database is nil.
func Init(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOpen, err)
	}
	defer f.Close()

	length := TotalLength

	mapping, err := unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseMap, err)
	}
	// Best-effort; the kernel is free to ignore this hint, and a failure
	// here never invalidates an already-successful mapping.
	_ = unix.Madvise(mapping, unix.MADV_WILLNEED)

	db := &Database{mapping: mapping}

	off := 0
	db.psp63 = unsafe.Slice((*int64)(unsafe.Pointer(&mapping[off])), psp63Count)
	off += psp63Count * 8
	db.psp63Index = unsafe.Slice((*int32)(unsafe.Pointer(&mapping[off])), psp63IndexCount)
	off += psp63IndexCount * 4
	db.collTable = unsafe.Slice((*uint32)(unsafe.Pointer(&mapping[off])), collTableCount)
	off += collTableCount * 4
	db.collIndex = unsafe.Slice((*int32)(unsafe.Pointer(&mapping[off])), collIndexCount)
	off += collIndexCount * 4
	db.factorTable = unsafe.Slice((*uint16)(unsafe.Pointer(&mapping[off])), factorTabCount)

	return db, nil
}

// Close unmaps the database. It is provided for tests and short-lived
// tools; a long-running server that holds the mapping for its whole
// process lifetime need never call it.
func (db *Database) Close() error {
	if db == nil || db.mapping == nil {
		return nil
	}
	err := unix.Munmap(db.mapping)
	db.mapping = nil
	return err
}
