package ucd

import (
	"io"
	"slices"
)

// CaseEntry carries the case mappings of one code point as found in a UCD
// source. A nil sequence means "not given"; a sequence consisting of the code
// point itself means "maps to itself".
type CaseEntry struct {
	CodePoint rune
	Name      string
	Lower     []rune
	Upper     []rune
	Title     []rune
}

// CaseReader yields case entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type CaseReader interface {
	Next() (CaseEntry, error)
}

// FoldReader yields simple case folds one-by-one.
// It should return io.EOF when the stream is exhausted.
type FoldReader interface {
	Next() (from, to rune, err error)
}

// Builder collects case mappings and produces sorted raw tables.
//
// Simple mappings are added first; special mappings override them per kind.
// Identity mappings are dropped.
type Builder struct {
	mappings [NumKinds]map[rune][]rune
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	b := &Builder{}
	for i := range b.mappings {
		b.mappings[i] = make(map[rune][]rune)
	}
	return b
}

// AddSimple registers the one-to-one mappings of e. A missing title mapping
// defaults to the upper mapping.
func (b *Builder) AddSimple(e CaseEntry) {
	title := e.Title
	if title == nil {
		title = e.Upper
	}
	b.set(Lower, e.CodePoint, e.Lower, false)
	b.set(Upper, e.CodePoint, e.Upper, false)
	b.set(Title, e.CodePoint, title, false)
}

// AddSpecial registers the mappings of e, replacing earlier mappings of the same
// kind. A mapping of a code point to itself removes the kind's entry.
func (b *Builder) AddSpecial(e CaseEntry) {
	b.set(Lower, e.CodePoint, e.Lower, true)
	b.set(Upper, e.CodePoint, e.Upper, true)
	b.set(Title, e.CodePoint, e.Title, true)
}

// AddFold registers the simple case fold from -> to.
func (b *Builder) AddFold(from, to rune) {
	b.set(Fold, from, []rune{to}, true)
}

func (b *Builder) set(k Kind, r rune, seq []rune, override bool) {
	if seq == nil {
		return
	}
	if len(seq) == 1 && seq[0] == r {
		if override {
			delete(b.mappings[k], r)
		}
		return
	}
	if _, exists := b.mappings[k][r]; exists && !override {
		return
	}
	b.mappings[k][r] = slices.Clone(seq)
}

// Tables returns the collected mappings as sorted raw tables.
func (b *Builder) Tables() *Tables {
	t := &Tables{
		Lower: sortedTable(b.mappings[Lower]),
		Upper: sortedTable(b.mappings[Upper]),
		Title: sortedTable(b.mappings[Title]),
		Fold:  sortedTable(b.mappings[Fold]),
	}
	tracer().Debugf("raw tables: lower=%d upper=%d title=%d fold=%d",
		len(t.Lower), len(t.Upper), len(t.Title), len(t.Fold))
	return t
}

func sortedTable(m map[rune][]rune) RawTable {
	table := make(RawTable, 0, len(m))
	for r, seq := range m {
		table = append(table, Mapping{CodePoint: r, Seq: seq})
	}
	slices.SortFunc(table, func(a, b Mapping) int {
		return int(a.CodePoint - b.CodePoint)
	})
	return table
}

// LoadTables drains the given readers into a new set of raw tables. Any reader
// may be nil.
func LoadTables(simple, special CaseReader, folds FoldReader) (*Tables, error) {
	b := NewBuilder()
	for _, src := range []struct {
		reader CaseReader
		add    func(CaseEntry)
	}{
		{simple, b.AddSimple},
		{special, b.AddSpecial},
	} {
		if src.reader == nil {
			continue
		}
		for {
			e, err := src.reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			src.add(e)
		}
	}
	if folds != nil {
		for {
			from, to, err := folds.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			b.AddFold(from, to)
		}
	}
	return b.Tables(), nil
}
