package compiler

import (
	"fmt"

	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
)

type options struct {
	shift    uint8
	encoding table.Encoding
}

// Option configures Compile.
type Option func(*options)

// WithBlockShift sets the block size to 1<<shift code points. Shift must be in
// the range table.MinShift..table.MaxShift; the default is table.DefaultShift.
func WithBlockShift(shift uint8) Option {
	return func(o *options) {
		o.shift = shift
	}
}

// WithEncoding selects the block slot payload. The default is table.Indirect.
func WithEncoding(enc table.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// Compile builds a frozen case mapping table from raw tables.
//
// Example usage:
//
//	t, err := compiler.Compile(ucd.Builtin(), compiler.WithBlockShift(6))
//	if err != nil {
//		...
//	}
//	rec := t.Lookup('ß')
//
// Compile fails with ErrEmpty if there is nothing to compile, and with one of the
// other sentinel errors of this package if a raw table is malformed.
func Compile(tables *ucd.Tables, opts ...Option) (*table.Table, error) {
	o := options{shift: table.DefaultShift, encoding: table.Indirect}
	for _, opt := range opts {
		opt(&o)
	}
	if o.shift < table.MinShift || o.shift > table.MaxShift {
		return nil, fmt.Errorf("block shift out of range (%d..%d): %d", table.MinShift, table.MaxShift, o.shift)
	}
	if o.encoding != table.Indirect && o.encoding != table.Inline {
		return nil, fmt.Errorf("unknown encoding %d", o.encoding)
	}
	if tables == nil {
		return nil, ErrEmpty
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	first, last, ok := tables.Bounds()
	if !ok {
		return nil, ErrEmpty
	}
	ri, err := buildRecords(tables, first, last)
	if err != nil {
		return nil, err
	}
	t := &table.Table{
		Shift:          o.shift,
		Encoding:       o.encoding,
		FirstCodePoint: first,
		LastCodePoint:  last,
		Records:        ri.records,
	}
	size := 1 << o.shift
	switch o.encoding {
	case table.Indirect:
		store := newBlockStore(size, appendIndex)
		t.Offsets, err = partition(store, o.shift, first, last, func(cp rune) uint16 {
			return ri.index[cp-first]
		})
		t.Blocks = store.slots
	case table.Inline:
		store := newBlockStore(size, table.AppendRecord)
		t.Offsets, err = partition(store, o.shift, first, last, func(cp rune) table.Record {
			return ri.records[ri.index[cp-first]]
		})
		t.InlineBlocks = store.slots
	}
	if err != nil {
		return nil, err
	}
	if err = t.Check(); err != nil {
		panic(fmt.Sprintf("compiled table violates invariants: %v", err))
	}
	stats := Stats(t)
	tracer().Infof("compiled %s: %d records, %d/%d blocks, %s total", t, stats.Records,
		stats.DistinctBlocks, stats.AddressedBlocks, formatBytes(stats.TotalBytes()))
	return t, nil
}

// MustCompile is like Compile but panics on error. It is intended for package
// initialization from data known to be valid.
func MustCompile(tables *ucd.Tables, opts ...Option) *table.Table {
	t, err := Compile(tables, opts...)
	if err != nil {
		panic(fmt.Sprintf("casemapping: cannot compile tables: %v", err))
	}
	return t
}
