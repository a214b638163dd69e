package ucd

import (
	"sync"
	"unicode"
)

// Version is the Unicode version of the data set returned by Builtin.
const Version = unicode.Version

// Builtin returns raw tables derived from the Go standard library's Unicode
// tables, completed with the unconditional mappings of SpecialCasing.txt.
//
// Simple case folds follow CaseFolding.txt (status C and S):
//   - a character folds to the lowercase of its uppercase;
//   - Cherokee folds to uppercase, for stability with pre-8.0 data;
//   - U+0130 and U+0131 only have Turkic (status T) folds and fold to nothing.
//
// The returned tables are shared and must not be modified.
func Builtin() *Tables {
	return builtin()
}

var builtin = sync.OnceValue(func() *Tables {
	b := NewBuilder()
	for _, cr := range unicode.CaseRanges {
		for r := rune(cr.Lo); r <= rune(cr.Hi); r++ {
			b.AddSimple(CaseEntry{
				CodePoint: r,
				Lower:     []rune{unicode.ToLower(r)},
				Upper:     []rune{unicode.ToUpper(r)},
				Title:     []rune{unicode.ToTitle(r)},
			})
			b.AddFold(r, simpleFold(r))
		}
	}
	for _, e := range specialCasing() {
		b.AddSpecial(e)
	}
	t := b.Tables()
	tracer().Infof("built-in raw tables for Unicode %s: %d mappings", Version, t.Len())
	return t
})

func simpleFold(r rune) rune {
	switch {
	case r == 0x0130 || r == 0x0131:
		return r
	case unicode.Is(unicode.Cherokee, r):
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(unicode.ToUpper(r))
}
