package compiler

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference builds the record of cp directly from the raw tables.
func reference(tables *ucd.Tables, cp rune) table.Record {
	var rec table.Record
	if seq, ok := tables.Lower.Lookup(cp); ok {
		copy(rec.Lower[:], seq)
	}
	if seq, ok := tables.Upper.Lookup(cp); ok {
		copy(rec.Upper[:], seq)
	}
	if seq, ok := tables.Title.Lookup(cp); ok {
		copy(rec.Title[:], seq)
	}
	if seq, ok := tables.Fold.Lookup(cp); ok {
		rec.Fold = seq[0]
	}
	return rec
}

func raw(pairs ...interface{}) ucd.RawTable {
	var t ucd.RawTable
	for i := 0; i < len(pairs); i += 2 {
		t = append(t, ucd.Mapping{CodePoint: pairs[i].(rune), Seq: pairs[i+1].([]rune)})
	}
	return t
}

func TestCompileSmallTable(t *testing.T) {
	tables := &ucd.Tables{
		Lower: raw('A', []rune{'a'}, 'C', []rune{'c'}),
		Fold:  raw('A', []rune{'a'}),
	}
	got, err := Compile(tables, WithBlockShift(4))
	require.NoError(t, err)
	blocks := make([]uint16, 16)
	blocks['A'&15] = 1
	blocks['C'&15] = 2
	want := &table.Table{
		Shift:          4,
		Encoding:       table.Indirect,
		FirstCodePoint: 'A',
		LastCodePoint:  'C',
		Records: []table.Record{
			{},
			{Lower: [2]rune{'a'}, Fold: 'a'},
			{Lower: [2]rune{'c'}},
		},
		Blocks:  blocks,
		Offsets: []uint16{0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("compiled table mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileRoundTripBuiltin(t *testing.T) {
	tables := ucd.Builtin()
	first, last, ok := tables.Bounds()
	require.True(t, ok)
	expected := make([]table.Record, int(last-first)+1)
	for cp := first; cp <= last; cp++ {
		expected[cp-first] = reference(tables, cp)
	}
	outside := []rune{-1, -0x7FFFFFFF, 0, first - 1, last + 1, 0x10FFFF, 0x110000, math.MaxInt32}
	for _, enc := range []table.Encoding{table.Indirect, table.Inline} {
		for _, shift := range []uint8{4, 5, 7, 10} {
			t.Run(fmt.Sprintf("%s/%d", enc, shift), func(t *testing.T) {
				tbl, err := Compile(tables, WithEncoding(enc), WithBlockShift(shift))
				require.NoError(t, err)
				require.NoError(t, tbl.Check())
				for cp := first; cp <= last; cp++ {
					if got := tbl.Lookup(cp); got != expected[cp-first] {
						t.Fatalf("lookup of %U: %s", cp, cmp.Diff(expected[cp-first], got))
					}
				}
				for _, cp := range outside {
					tassert.True(t, tbl.Lookup(cp).IsZero(), "%U should resolve to the zero record", cp)
				}
			})
		}
	}
}

func TestBlocksAreDistinct(t *testing.T) {
	for _, enc := range []table.Encoding{table.Indirect, table.Inline} {
		tbl := MustCompile(ucd.Builtin(), WithEncoding(enc))
		seen := make(map[string]int, tbl.NumBlocks())
		for i := 0; i < tbl.NumBlocks(); i++ {
			var key string
			if enc == table.Inline {
				key = fmt.Sprint(tbl.InlineBlock(i))
			} else {
				key = fmt.Sprint(tbl.Block(i))
			}
			if j, dup := seen[key]; dup {
				t.Fatalf("%s: blocks %d and %d are identical", enc, j, i)
			}
			seen[key] = i
		}
		for i, n := range tbl.References() {
			tassert.Positive(t, n, "%s: block %d is never addressed", enc, i)
		}
	}
}

func TestInlineBlocksDeduplicate(t *testing.T) {
	var lower ucd.RawTable
	for cp := rune(0x1000); cp < 0x2000; cp += 16 {
		lower = append(lower, ucd.Mapping{CodePoint: cp, Seq: []rune{'x'}})
	}
	tables := &ucd.Tables{Lower: lower}

	inline := MustCompile(tables, WithEncoding(table.Inline), WithBlockShift(4))
	tassert.Equal(t, 1, inline.NumBlocks())
	tassert.Len(t, inline.Offsets, 256)
	tassert.Equal(t, table.Record{Lower: [2]rune{'x'}}, inline.Lookup(0x1FF0))
	tassert.True(t, inline.Lookup(0x1FF1).IsZero())

	// every indirect block refers to a record of its own
	indirect := MustCompile(tables, WithBlockShift(4))
	tassert.Equal(t, 256, indirect.NumBlocks())
	tassert.Len(t, indirect.Records, 257)

	s := Stats(inline)
	tassert.Equal(t, 1, s.DistinctBlocks)
	tassert.Equal(t, 256, s.AddressedBlocks)
	tassert.InDelta(t, 1.0/256, s.DedupRatio(), 1e-9)
	tassert.Equal(t, 16*RecordSize+256*2, s.TotalBytes())
	tassert.Less(t, s.CompressionRatio(), 0.01)
}

func TestCompileErrors(t *testing.T) {
	tooMany := make(ucd.RawTable, 0, 70000)
	for cp := rune(0x10000); cp < 0x10000+70000; cp++ {
		tooMany = append(tooMany, ucd.Mapping{CodePoint: cp, Seq: []rune{'a'}})
	}
	tests := []struct {
		name   string
		tables *ucd.Tables
		want   error
	}{
		{"nil", nil, ErrEmpty},
		{"empty", &ucd.Tables{}, ErrEmpty},
		{"unsorted", &ucd.Tables{Lower: raw('B', []rune{'b'}, 'A', []rune{'a'})}, ErrUnsorted},
		{"duplicate", &ucd.Tables{Upper: raw('a', []rune{'A'}, 'a', []rune{'A'})}, ErrUnsorted},
		{"long lower", &ucd.Tables{Lower: raw('A', []rune{'a', 'b', 'c'})}, ErrSequenceTooLong},
		{"long title", &ucd.Tables{Title: raw('A', []rune{'a', 'b', 'c', 'd'})}, ErrSequenceTooLong},
		{"empty sequence", &ucd.Tables{Upper: raw('a', []rune{})}, ErrInvalidSequence},
		{"zero in sequence", &ucd.Tables{Upper: raw('a', []rune{'A', 0})}, ErrInvalidSequence},
		{"fold sequence", &ucd.Tables{Fold: raw('A', []rune{'a', 'b'})}, ErrInvalidFold},
		{"fold to zero", &ucd.Tables{Fold: raw('A', []rune{0})}, ErrInvalidFold},
		{"too many records", &ucd.Tables{Lower: tooMany}, ErrOverflow},
		{"negative key", &ucd.Tables{Lower: raw(rune(-5), []rune{'a'})}, ErrOutOfRange},
		{"key beyond unicode", &ucd.Tables{Upper: raw(unicode.MaxRune+1, []rune{'A'})}, ErrOutOfRange},
		{"maximal key", &ucd.Tables{Fold: raw('A', []rune{'a'}, rune(math.MaxInt32), []rune{'b'})}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.tables)
			require.Error(t, err)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
	tassert.True(t, errors.Is(ErrUnsorted, ucd.ErrUnsorted))
}

func TestCompileOptions(t *testing.T) {
	tables := &ucd.Tables{Lower: raw('A', []rune{'a'})}
	for _, shift := range []uint8{table.MinShift - 1, table.MaxShift + 1} {
		_, err := Compile(tables, WithBlockShift(shift))
		tassert.Error(t, err, "shift %d", shift)
	}
	_, err := Compile(tables, WithEncoding(table.Encoding(7)))
	tassert.Error(t, err)
	tbl, err := Compile(tables)
	require.NoError(t, err)
	tassert.Equal(t, uint8(table.DefaultShift), tbl.Shift)
	tassert.Equal(t, table.Indirect, tbl.Encoding)
	tassert.Panics(t, func() { MustCompile(&ucd.Tables{}) })
}

func TestCompiledTableSurvivesCodec(t *testing.T) {
	for _, enc := range []table.Encoding{table.Indirect, table.Inline} {
		tbl := MustCompile(ucd.Builtin(), WithEncoding(enc), WithBlockShift(6))
		data, err := tbl.MarshalBinary()
		require.NoError(t, err)
		decoded, err := table.Unmarshal(data)
		require.NoError(t, err)
		if diff := cmp.Diff(tbl, decoded); diff != "" {
			t.Fatalf("%s: decoded table differs (-want +got):\n%s", enc, diff)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	tables := ucd.Builtin()
	for i := 0; i < b.N; i++ {
		MustCompile(tables)
	}
}
