package factor63

// NewSyntheticDatabase builds a Database directly from in-memory slices,
// bypassing Init's mmap step. It exists for tests and tooling that need a
// Database covering only a small, hand-computed range of values (see
// internal/testdb), never for production use, where factorTable must
// cover every odd integer below M and psp63 must be the real, complete
// base-2 strong-pseudoprime table.
func NewSyntheticDatabase(psp63 []int64, psp63Index []int32, collTable []uint32, collIndex []int32, factorTable []uint16) *Database {
	return &Database{
		psp63:       psp63,
		psp63Index:  psp63Index,
		collTable:   collTable,
		collIndex:   collIndex,
		factorTable: factorTable,
	}
}
