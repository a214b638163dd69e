/*
Package ucd holds the raw case mapping tables a case mapping table is compiled from.

A raw table is a sparse association from code points to short code point sequences,
one table per mapping kind. Tables are sorted and unique by code point and never
contain identity mappings.

Raw tables are either derived from the Go standard library's Unicode tables
(see Builtin) or streamed from the Unicode Character Database text files by
readers like the ones in package ucdtext.
*/
package ucd

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'casemapping.ucd'
func tracer() tracing.Trace {
	return tracing.Select("casemapping.ucd")
}

// ErrUnsorted is returned for raw tables whose keys are not strictly increasing.
var ErrUnsorted = errors.New("raw table keys not strictly increasing")

// ErrOutOfRange is returned for raw table keys outside of 0..unicode.MaxRune.
var ErrOutOfRange = errors.New("code point out of range")

// Kind identifies a case mapping kind.
type Kind uint8

const (
	Lower Kind = iota
	Upper
	Title
	Fold
	NumKinds int = iota
)

// Kinds lists all mapping kinds in table order.
var Kinds = [NumKinds]Kind{Lower, Upper, Title, Fold}

func (k Kind) String() string {
	switch k {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Title:
		return "title"
	case Fold:
		return "fold"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Mapping maps CodePoint to the sequence Seq.
type Mapping struct {
	CodePoint rune
	Seq       []rune
}

// RawTable is a list of mappings sorted by code point.
type RawTable []Mapping

// Lookup finds the mapping for code point r by binary search.
func (t RawTable) Lookup(r rune) ([]rune, bool) {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].CodePoint >= r
	})
	if i < len(t) && t[i].CodePoint == r {
		return t[i].Seq, true
	}
	return nil, false
}

// Validate checks that code points are valid and strictly increasing.
func (t RawTable) Validate() error {
	for _, m := range t {
		if m.CodePoint < 0 || m.CodePoint > unicode.MaxRune {
			return fmt.Errorf("%w: %#x", ErrOutOfRange, m.CodePoint)
		}
	}
	for i := 1; i < len(t); i++ {
		if t[i].CodePoint <= t[i-1].CodePoint {
			return fmt.Errorf("%w: %U follows %U", ErrUnsorted, t[i].CodePoint, t[i-1].CodePoint)
		}
	}
	return nil
}

// Tables bundles one raw table per mapping kind.
type Tables struct {
	Lower RawTable
	Upper RawTable
	Title RawTable
	Fold  RawTable // single code point per mapping
}

// Table returns the raw table for kind k.
func (t *Tables) Table(k Kind) RawTable {
	switch k {
	case Lower:
		return t.Lower
	case Upper:
		return t.Upper
	case Title:
		return t.Title
	case Fold:
		return t.Fold
	}
	return nil
}

// Len returns the total number of mappings over all kinds.
func (t *Tables) Len() int {
	return len(t.Lower) + len(t.Upper) + len(t.Title) + len(t.Fold)
}

// Validate checks every raw table with RawTable.Validate.
func (t *Tables) Validate() error {
	for _, k := range Kinds {
		if err := t.Table(k).Validate(); err != nil {
			return fmt.Errorf("%s table: %w", k, err)
		}
	}
	return nil
}

// Bounds returns the smallest and the largest code point mapped in any table.
// ok is false if all tables are empty.
func (t *Tables) Bounds() (first, last rune, ok bool) {
	for _, k := range Kinds {
		table := t.Table(k)
		if len(table) == 0 {
			continue
		}
		lo, hi := table[0].CodePoint, table[len(table)-1].CodePoint
		if !ok || lo < first {
			first = lo
		}
		if !ok || hi > last {
			last = hi
		}
		ok = true
	}
	return
}
