package names

import (
	"testing"

	"github.com/npillmayer/casemapping/ucd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	ix := New()
	assert.True(t, ix.Add(0xDF, "LATIN SMALL LETTER SHARP S"))
	assert.True(t, ix.Add(0x1E9E, "latin capital letter sharp s"))
	assert.True(t, ix.Add('A', "LATIN CAPITAL LETTER A"))
	assert.True(t, ix.Add('A', "LATIN CAPITAL LETTER A"))
	assert.False(t, ix.Add(0x0007, "<control>"))
	assert.False(t, ix.Add(0x0008, "  "))
	assert.Equal(t, 3, ix.Len())

	r, ok := ix.Lookup("Latin  Capital Letter Sharp S")
	require.True(t, ok)
	assert.Equal(t, rune(0x1E9E), r)
	_, ok = ix.Lookup("LATIN CAPITAL LETTER")
	assert.False(t, ok, "prefix must not match exactly")

	tests := []struct {
		prefix string
		limit  int
		want   []rune
	}{
		{prefix: "latin", want: []rune{'A', 0xDF, 0x1E9E}},
		{prefix: "LATIN CAPITAL", want: []rune{'A', 0x1E9E}},
		{prefix: "latin", limit: 2, want: []rune{'A', 0xDF}},
		{prefix: "GREEK"},
	}
	for _, tt := range tests {
		var got []rune
		for _, e := range ix.Search(tt.prefix, tt.limit) {
			got = append(got, e.CodePoint)
		}
		assert.Equal(t, tt.want, got, "search for %q", tt.prefix)
	}
}

func TestFrozenIndexIgnoresAdditions(t *testing.T) {
	ix := New()
	ix.Add('a', "LATIN SMALL LETTER A")
	ix.Freeze()
	assert.False(t, ix.Add('b', "LATIN SMALL LETTER B"))
	_, ok := ix.Lookup("LATIN SMALL LETTER B")
	assert.False(t, ok)
	assert.Equal(t, 1, ix.Len())
}

func TestFromTables(t *testing.T) {
	ix := FromTables(ucd.Builtin())
	for _, tt := range []struct {
		name string
		r    rune
	}{
		{"LATIN CAPITAL LETTER SHARP S", 0x1E9E},
		{"LATIN SMALL LETTER SHARP S", 0xDF},
		{"LATIN CAPITAL LETTER I WITH DOT ABOVE", 0x0130},
		{"GREEK SMALL LETTER FINAL SIGMA", 0x03C2},
	} {
		r, ok := ix.Lookup(tt.name)
		if !ok || r != tt.r {
			t.Fatalf("lookup of %q: got %U/%v, want %U", tt.name, r, ok, tt.r)
		}
	}
	assert.Empty(t, ix.Search("DIGIT", 0), "digits have no case mappings")
	assert.Equal(t, "LATIN SMALL LETTER SHARP S", Name(0xDF))
	assert.Equal(t, "", Name(0x0007))
}
