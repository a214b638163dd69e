package table

// Slot widths of a Record. Unicode never needs more than these.
const (
	LowerWidth = 2
	UpperWidth = 3
	TitleWidth = 3
)

// Default and permitted block shifts. A block covers 1<<Shift code points.
const (
	DefaultShift = 7
	MinShift     = 4
	MaxShift     = 10
)

// Record holds the case mappings of a single code point.
//
// Sequences are left-aligned and padded with 0. 0 never appears as a mapped
// character, so it always means "no further character". The zero Record means
// "no special case mapping", i.e. identity for every kind. A zero Fold means
// the code point has no simple case fold.
type Record struct {
	Lower [LowerWidth]rune
	Upper [UpperWidth]rune
	Title [TitleWidth]rune
	Fold  rune
}

// IsZero is true for the identity record.
func (rec Record) IsZero() bool {
	return rec == Record{}
}

// Encoding selects the payload of block slots.
type Encoding uint8

const (
	// Indirect blocks store mapping indices into the record table.
	Indirect Encoding = iota
	// Inline blocks store full records.
	Inline
)

func (e Encoding) String() string {
	switch e {
	case Indirect:
		return "indirect"
	case Inline:
		return "inline"
	}
	return "unknown"
}

// ParseEncoding maps an encoding name, as returned by String, to an Encoding.
func ParseEncoding(name string) (Encoding, bool) {
	switch name {
	case "indirect", "":
		return Indirect, true
	case "inline":
		return Inline, true
	}
	return Indirect, false
}
