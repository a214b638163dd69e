package casemapping

import (
	"unicode"

	"github.com/npillmayer/casemapping/compiler"
	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
)

// UnicodeVersion is the Unicode version the mappings are taken from.
const UnicodeVersion = unicode.Version

// mappings is compiled once and never modified.
var mappings = initMappings()

func initMappings() *table.Table {
	t := compiler.MustCompile(ucd.Builtin())
	tracer().Debugf("case mappings for Unicode %s: %s", UnicodeVersion, t)
	return t
}

// ToLowercase returns the lowercase mapping of r, padded with 0.
// If the result is all zero, r is its own lowercase.
func ToLowercase(r rune) [2]rune {
	return mappings.Lookup(r).Lower
}

// ToUppercase returns the uppercase mapping of r, padded with 0.
// If the result is all zero, r is its own uppercase.
func ToUppercase(r rune) [3]rune {
	return mappings.Lookup(r).Upper
}

// ToTitlecase returns the titlecase mapping of r, padded with 0.
// If the result is all zero, r is its own titlecase.
func ToTitlecase(r rune) [3]rune {
	return mappings.Lookup(r).Title
}

// CaseFolded returns the simple case fold of r. If r has no simple case fold,
// i.e. it folds to itself, ok is false.
//
// Folding is not symmetric: 'ẞ' folds to 'ß', but 'ß' has no simple fold.
func CaseFolded(r rune) (folded rune, ok bool) {
	f := mappings.Lookup(r).Fold
	return f, f != 0
}
