package ucd

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestRawTableLookup(t *testing.T) {
	table := RawTable{
		{CodePoint: 'A', Seq: []rune{'a'}},
		{CodePoint: 'C', Seq: []rune{'c'}},
		{CodePoint: 0x0130, Seq: []rune{'i', 0x0307}},
	}
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		r     rune
		want  []rune
		found bool
	}{
		{r: 'A', want: []rune{'a'}, found: true},
		{r: 'B'},
		{r: 'C', want: []rune{'c'}, found: true},
		{r: 0x0130, want: []rune{'i', 0x0307}, found: true},
		{r: 0},
		{r: 0x10FFFF},
	}
	for _, tt := range tests {
		got, found := table.Lookup(tt.r)
		if found != tt.found || !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("lookup %U: got %v/%v, want %v/%v", tt.r, got, found, tt.want, tt.found)
		}
	}
}

func TestRawTableValidate(t *testing.T) {
	dup := RawTable{{CodePoint: 'A'}, {CodePoint: 'A'}}
	if err := dup.Validate(); !errors.Is(err, ErrUnsorted) {
		t.Fatalf("expected ErrUnsorted for duplicate keys, got %v", err)
	}
	tables := &Tables{Title: RawTable{{CodePoint: 'B'}, {CodePoint: 'A'}}}
	if err := tables.Validate(); !errors.Is(err, ErrUnsorted) {
		t.Fatalf("expected ErrUnsorted for descending keys, got %v", err)
	}
	for _, cp := range []rune{-1, 0x110000, 0x7FFFFFFF} {
		tables := &Tables{Lower: RawTable{{CodePoint: 'A', Seq: []rune{'a'}}, {CodePoint: cp, Seq: []rune{'a'}}}}
		if err := tables.Validate(); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange for key %#x, got %v", cp, err)
		}
	}
}

func TestBuilderOverrides(t *testing.T) {
	b := NewBuilder()
	b.AddSimple(CaseEntry{CodePoint: 'a', Lower: []rune{'a'}, Upper: []rune{'A'}})
	b.AddSimple(CaseEntry{CodePoint: 0x0130, Lower: []rune{'i'}, Upper: []rune{0x0130}})
	b.AddSpecial(CaseEntry{CodePoint: 0x0130, Lower: []rune{'i', 0x0307}, Title: []rune{0x0130}, Upper: []rune{0x0130}})
	b.AddSpecial(CaseEntry{CodePoint: 0x01C5, Title: []rune{0x01C5}})
	b.AddFold('A', 'a')
	b.AddFold('a', 'a')
	tables := b.Tables()

	want := &Tables{
		Lower: RawTable{{CodePoint: 0x0130, Seq: []rune{'i', 0x0307}}},
		Upper: RawTable{{CodePoint: 'a', Seq: []rune{'A'}}},
		Title: RawTable{{CodePoint: 'a', Seq: []rune{'A'}}}, // defaults to upper
		Fold:  RawTable{{CodePoint: 'A', Seq: []rune{'a'}}},
	}
	if !reflect.DeepEqual(tables, want) {
		t.Fatalf("tables mismatch:\n got %v\nwant %v", tables, want)
	}
	first, last, ok := tables.Bounds()
	if !ok || first != 'A' || last != 0x0130 {
		t.Fatalf("bounds mismatch: %U..%U (%v)", first, last, ok)
	}
}

type sliceCaseReader struct {
	entries []CaseEntry
	index   int
}

func (r *sliceCaseReader) Next() (CaseEntry, error) {
	if r.index >= len(r.entries) {
		return CaseEntry{}, io.EOF
	}
	r.index++
	return r.entries[r.index-1], nil
}

type failingFoldReader struct{}

func (failingFoldReader) Next() (rune, rune, error) {
	return 0, 0, errors.New("broken input")
}

func TestLoadTables(t *testing.T) {
	simple := &sliceCaseReader{entries: []CaseEntry{
		{CodePoint: 'S', Lower: []rune{'s'}},
		{CodePoint: 's', Upper: []rune{'S'}},
	}}
	special := &sliceCaseReader{entries: []CaseEntry{
		{CodePoint: 0xDF, Lower: []rune{0xDF}, Title: []rune{'S', 's'}, Upper: []rune{'S', 'S'}},
	}}
	tables, err := LoadTables(simple, special, nil)
	if err != nil {
		t.Fatal(err)
	}
	if seq, _ := tables.Upper.Lookup(0xDF); !reflect.DeepEqual(seq, []rune{'S', 'S'}) {
		t.Fatalf("upper of ß should be SS, is %q", string(seq))
	}
	if _, found := tables.Lower.Lookup(0xDF); found {
		t.Fatalf("ß should have no lowercase mapping")
	}
	if _, err := LoadTables(nil, nil, failingFoldReader{}); err == nil {
		t.Fatalf("expected reader error to propagate")
	}
}

func TestBuiltin(t *testing.T) {
	tables := Builtin()
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		kind  Kind
		r     rune
		want  []rune
		found bool
	}{
		{kind: Lower, r: 'A', want: []rune{'a'}, found: true},
		{kind: Lower, r: 0x0130, want: []rune{'i', 0x0307}, found: true},
		{kind: Lower, r: 0xDF},
		{kind: Upper, r: 0xDF, want: []rune{'S', 'S'}, found: true},
		{kind: Title, r: 0xDF, want: []rune{'S', 's'}, found: true},
		{kind: Title, r: 0x01C6, want: []rune{0x01C5}, found: true},
		{kind: Title, r: 0x01C5},
		{kind: Upper, r: 0x1F80, want: []rune{0x1F08, 0x0399}, found: true},
		{kind: Title, r: '-'},
		{kind: Fold, r: 'I', want: []rune{'i'}, found: true},
		{kind: Fold, r: 0xDF},
		{kind: Fold, r: 0x1E9E, want: []rune{0xDF}, found: true},
		{kind: Fold, r: 0x03C2, want: []rune{0x03C3}, found: true},
		{kind: Fold, r: 0x0130},
		{kind: Fold, r: 0x0131},
		{kind: Fold, r: 0xAB70, want: []rune{0x13A0}, found: true},
		{kind: Fold, r: 0x13A0},
	}
	for _, tt := range tests {
		got, found := tables.Table(tt.kind).Lookup(tt.r)
		if found != tt.found || !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s mapping of %U: got %X/%v, want %X/%v", tt.kind, tt.r, got, found, tt.want, tt.found)
		}
	}
}
