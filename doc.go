/*
Package casemapping maps single code points to their lowercase, uppercase,
titlecase and simply case-folded equivalents.

Some characters change their length when changing case: 'ß' uppercases to "SS",
'İ' lowercases to "i" followed by U+0307 COMBINING DOT ABOVE. The mapping
functions therefore return short, fixed-size arrays padded with 0. An all-zero
result means the code point has no special mapping for this kind and maps to
itself:

	lower := casemapping.ToLowercase('İ')  // [2]rune{'i', 0x307}
	upper := casemapping.ToUppercase('ß')  // [3]rune{'S', 'S', 0}
	title := casemapping.ToTitlecase('-')  // [3]rune{0, 0, 0}, i.e. "-"

Mappings are unconditional: language-sensitive rules (Turkish dotless i) and
contextual rules (final sigma) are not applied. Case folding is simple folding
as of CaseFolding.txt status C and S.

The mappings live in a compact two-level table, compiled from the Unicode data
of the Go standard library during package initialization. Lookups are
constant-time and allocation-free, and all functions are safe for concurrent
use.

Further Reading

	https://www.unicode.org/reports/tr44/#Casemapping
	https://www.unicode.org/Public/UCD/latest/ucd/SpecialCasing.txt
	https://www.unicode.org/Public/UCD/latest/ucd/CaseFolding.txt

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package casemapping

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'casemapping'
func tracer() tracing.Trace {
	return tracing.Select("casemapping")
}
