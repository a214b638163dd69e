/*
Package ucdtext reads case mappings from the text files of the Unicode Character
Database: UnicodeData.txt, SpecialCasing.txt and CaseFolding.txt.

The readers stream entries and plug into ucd.LoadTables. Please refer to

	https://www.unicode.org/Public/UCD/latest/ucd/

for the files and to UAX #44 for their format.
*/
package ucdtext

import (
	"bufio"
	"io"

	"github.com/npillmayer/casemapping/ucd"
)

// UnicodeDataReader streams simple case mappings from UnicodeData.txt.
type UnicodeDataReader struct {
	lineScanner
}

func NewUnicodeDataReader(reader io.Reader) *UnicodeDataReader {
	return &UnicodeDataReader{
		lineScanner: lineScanner{scanner: bufio.NewScanner(reader), file: "UnicodeData.txt"},
	}
}

// Next returns the next code point entry. Fields 12, 13 and 14 carry the simple
// uppercase, lowercase and titlecase mappings; empty fields yield nil sequences.
// It returns io.EOF when exhausted.
func (r *UnicodeDataReader) Next() (ucd.CaseEntry, error) {
	fields, ok := r.scan()
	if !ok {
		if err := r.scanner.Err(); err != nil {
			return ucd.CaseEntry{}, err
		}
		return ucd.CaseEntry{}, io.EOF
	}
	if len(fields) < 15 {
		return ucd.CaseEntry{}, r.errorf("expected 15 fields, have %d", len(fields))
	}
	var e ucd.CaseEntry
	var err error
	if e.CodePoint, err = parseCodePoint(fields[0]); err != nil {
		return e, r.errorf("%v", err)
	}
	e.Name = fields[1]
	if e.Upper, err = parseSequence(fields[12]); err != nil {
		return e, r.errorf("uppercase: %v", err)
	}
	if e.Lower, err = parseSequence(fields[13]); err != nil {
		return e, r.errorf("lowercase: %v", err)
	}
	if e.Title, err = parseSequence(fields[14]); err != nil {
		return e, r.errorf("titlecase: %v", err)
	}
	return e, nil
}
