/*
Package table holds the frozen representation of a compiled case mapping table
and its run-time lookup.

Tables are produced by package compiler and are either built at program start,
restored from a binary artifact with Unmarshal, or emitted as Go source by
package emit.
*/
package table

import "fmt"

// Table is a frozen, two-level case mapping table.
//
//   - The code-point domain is partitioned into blocks of BlockSize() code points.
//   - Offsets has one entry per block address between FirstCodePoint and
//     LastCodePoint (inclusive), holding the index of the block storing that range.
//   - Identical blocks are stored once, in first-seen order.
//
// Payloads:
//   - Indirect encoding: Blocks holds record indices, Records[0] is the zero record.
//   - Inline encoding: InlineBlocks holds full records, Records is kept for
//     statistics and emission only.
//
// A Table is never mutated after compilation and may be shared between goroutines.
type Table struct {
	// Shift is log2 of the block size.
	Shift uint8

	// Encoding selects which of Blocks or InlineBlocks is populated.
	Encoding Encoding

	// FirstCodePoint and LastCodePoint bound the mapped domain. Every code point
	// outside of [FirstCodePoint, LastCodePoint] resolves to the zero record.
	FirstCodePoint rune
	LastCodePoint  rune

	// Records is the record table, indexed by mapping index.
	Records []Record

	// Blocks is the concatenation of all distinct blocks (indirect encoding).
	Blocks []uint16

	// InlineBlocks is the concatenation of all distinct blocks (inline encoding).
	InlineBlocks []Record

	// Offsets maps block addresses, relative to FirstCodePoint>>Shift, to block indices.
	Offsets []uint16
}

// BlockSize returns the number of code points covered by one block.
func (t *Table) BlockSize() int { return 1 << t.Shift }

// NumBlocks returns the number of distinct blocks stored.
func (t *Table) NumBlocks() int {
	if t.Encoding == Inline {
		return len(t.InlineBlocks) >> t.Shift
	}
	return len(t.Blocks) >> t.Shift
}

// Lookup returns the record for code point r. Code points without a case
// mapping, including negative values and values beyond the Unicode range,
// resolve to the zero record.
func (t *Table) Lookup(r rune) Record {
	if r < t.FirstCodePoint || r > t.LastCodePoint {
		return Record{}
	}
	address := int(r>>t.Shift) - int(t.FirstCodePoint>>t.Shift)
	slot := int(t.Offsets[address])<<t.Shift | int(r&(1<<t.Shift-1))
	if t.Encoding == Inline {
		return t.InlineBlocks[slot]
	}
	return t.Records[t.Blocks[slot]]
}

// Check verifies the structural invariants of t. It does not compare the table
// against its raw source.
func (t *Table) Check() error {
	if t.Shift < MinShift || t.Shift > MaxShift {
		return fmt.Errorf("block shift out of range (%d..%d): %d", MinShift, MaxShift, t.Shift)
	}
	if len(t.Records) == 0 || !t.Records[0].IsZero() {
		return fmt.Errorf("record table must start with the zero record")
	}
	if t.FirstCodePoint > t.LastCodePoint || t.FirstCodePoint < 0 {
		return fmt.Errorf("invalid code point bounds %U..%U", t.FirstCodePoint, t.LastCodePoint)
	}
	addresses := int(t.LastCodePoint>>t.Shift) - int(t.FirstCodePoint>>t.Shift) + 1
	if len(t.Offsets) != addresses {
		return fmt.Errorf("offset index has %d entries, want %d", len(t.Offsets), addresses)
	}
	var slots int
	switch t.Encoding {
	case Indirect:
		slots = len(t.Blocks)
		for i, index := range t.Blocks {
			if int(index) >= len(t.Records) {
				return fmt.Errorf("block slot %d references record %d of %d", i, index, len(t.Records))
			}
		}
	case Inline:
		slots = len(t.InlineBlocks)
	default:
		return fmt.Errorf("unknown encoding %d", t.Encoding)
	}
	if slots == 0 || slots%t.BlockSize() != 0 {
		return fmt.Errorf("block table size %d is not a multiple of block size %d", slots, t.BlockSize())
	}
	for address, block := range t.Offsets {
		if int(block) >= t.NumBlocks() {
			return fmt.Errorf("address %d references block %d of %d", address, block, t.NumBlocks())
		}
	}
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%s,block=%d,records=%d,blocks=%d,range=%U..%U)", t.Encoding,
		t.BlockSize(), len(t.Records), t.NumBlocks(), t.FirstCodePoint, t.LastCodePoint)
}
