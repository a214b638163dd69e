package table

// Block returns the slots of the i-th distinct block (indirect encoding).
// Returns nil for inline tables.
func (t *Table) Block(i int) []uint16 {
	if t.Encoding != Indirect {
		return nil
	}
	base := i << t.Shift
	return t.Blocks[base : base+t.BlockSize()]
}

// InlineBlock returns the slots of the i-th distinct block (inline encoding).
// Returns nil for indirect tables.
func (t *Table) InlineBlock(i int) []Record {
	if t.Encoding != Inline {
		return nil
	}
	base := i << t.Shift
	return t.InlineBlocks[base : base+t.BlockSize()]
}

// FirstUse returns, for every distinct block, the first code point of the
// lowest address range resolving to it.
func (t *Table) FirstUse() []rune {
	first := make([]rune, t.NumBlocks())
	seen := make([]bool, len(first))
	base := t.FirstCodePoint >> t.Shift
	for address, block := range t.Offsets {
		if seen[block] {
			continue
		}
		seen[block] = true
		first[block] = (base + rune(address)) << t.Shift
	}
	return first
}

// References counts how many address ranges resolve to each distinct block.
func (t *Table) References() []int {
	refs := make([]int, t.NumBlocks())
	for _, block := range t.Offsets {
		refs[block]++
	}
	return refs
}

// Locate returns where r is found in t: the block address relative to
// FirstCodePoint>>Shift, the index of the block, and the slot within the
// concatenated block table. ok is false if r is outside of the mapped range.
func (t *Table) Locate(r rune) (address, block, slot int, ok bool) {
	if r < t.FirstCodePoint || r > t.LastCodePoint {
		return 0, 0, 0, false
	}
	address = int(r>>t.Shift) - int(t.FirstCodePoint>>t.Shift)
	block = int(t.Offsets[address])
	slot = block<<t.Shift | int(r&(1<<t.Shift-1))
	return address, block, slot, true
}

// RecordIndex returns the index of the record of r in Records, 0 for code
// points without a mapping. Inline tables are searched linearly.
func (t *Table) RecordIndex(r rune) int {
	_, _, slot, ok := t.Locate(r)
	if !ok {
		return 0
	}
	if t.Encoding != Inline {
		return int(t.Blocks[slot])
	}
	rec := t.InlineBlocks[slot]
	if rec.IsZero() {
		return 0
	}
	for i := range t.Records {
		if t.Records[i] == rec {
			return i
		}
	}
	return 0
}
