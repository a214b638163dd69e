package compiler

import (
	"fmt"
	"math"
	"unicode"

	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
)

// recordIndex assigns record indices to the code points of [first, last].
//
// Records are appended in code point order, one per mapped code point, after
// the zero record. index[cp-first] is the record of cp, or 0.
type recordIndex struct {
	first   rune
	records []table.Record
	index   []uint16
}

// buildRecords walks the raw tables in parallel. Tables must be validated.
func buildRecords(tables *ucd.Tables, first, last rune) (*recordIndex, error) {
	ri := &recordIndex{
		first:   first,
		records: []table.Record{{}},
		index:   make([]uint16, int(last-first)+1),
	}
	var heads [ucd.NumKinds]int
	for {
		cp, ok := nextCodePoint(tables, &heads)
		if !ok {
			break
		}
		var rec table.Record
		for _, k := range ucd.Kinds {
			raw := tables.Table(k)
			if heads[k] >= len(raw) || raw[heads[k]].CodePoint != cp {
				continue
			}
			if err := setSlots(&rec, k, raw[heads[k]].Seq); err != nil {
				return nil, fmt.Errorf("%s mapping of %U: %w", k, cp, err)
			}
			heads[k]++
		}
		if len(ri.records) > math.MaxUint16 {
			return nil, fmt.Errorf("more than %d records at %U: %w", math.MaxUint16, cp, ErrOverflow)
		}
		assert(!rec.IsZero(), "mapped code point yields zero record")
		ri.index[cp-first] = uint16(len(ri.records))
		ri.records = append(ri.records, rec)
	}
	return ri, nil
}

// nextCodePoint returns the smallest code point at the heads of the raw tables.
func nextCodePoint(tables *ucd.Tables, heads *[ucd.NumKinds]int) (rune, bool) {
	var cp rune
	found := false
	for _, k := range ucd.Kinds {
		raw := tables.Table(k)
		if heads[k] >= len(raw) {
			continue
		}
		if c := raw[heads[k]].CodePoint; !found || c < cp {
			cp, found = c, true
		}
	}
	return cp, found
}

func setSlots(rec *table.Record, k ucd.Kind, seq []rune) error {
	switch k {
	case ucd.Lower:
		return fill(rec.Lower[:], seq)
	case ucd.Upper:
		return fill(rec.Upper[:], seq)
	case ucd.Title:
		return fill(rec.Title[:], seq)
	case ucd.Fold:
		if len(seq) != 1 {
			return fmt.Errorf("%d code points: %w", len(seq), ErrInvalidFold)
		}
		if !validTarget(seq[0]) {
			return fmt.Errorf("target %U: %w", seq[0], ErrInvalidFold)
		}
		rec.Fold = seq[0]
		return nil
	}
	return fmt.Errorf("unknown mapping kind %d", k)
}

// fill copies seq left-aligned into slots; the remaining slots stay 0.
func fill(slots []rune, seq []rune) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty sequence: %w", ErrInvalidSequence)
	}
	if len(seq) > len(slots) {
		return fmt.Errorf("%d code points, width %d: %w", len(seq), len(slots), ErrSequenceTooLong)
	}
	for i, r := range seq {
		if !validTarget(r) {
			return fmt.Errorf("code point %U at position %d: %w", r, i, ErrInvalidSequence)
		}
		slots[i] = r
	}
	return nil
}

// 0 is the padding sentinel and can never be a mapping target.
func validTarget(r rune) bool {
	return r > 0 && r <= unicode.MaxRune
}
