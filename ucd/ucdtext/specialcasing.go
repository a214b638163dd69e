package ucdtext

import (
	"bufio"
	"io"

	"github.com/npillmayer/casemapping/ucd"
)

// SpecialCasingReader streams unconditional mappings from SpecialCasing.txt.
//
// Lines have the form
//
//	<code>; <lower>; <title>; <upper>; (<condition_list>;)? # <comment>
//
// Lines with a condition list (language-sensitive or context-sensitive
// mappings) are skipped.
type SpecialCasingReader struct {
	lineScanner
}

func NewSpecialCasingReader(reader io.Reader) *SpecialCasingReader {
	return &SpecialCasingReader{
		lineScanner: lineScanner{scanner: bufio.NewScanner(reader), file: "SpecialCasing.txt"},
	}
}

// Identifier returns the file identifier from the header, e.g.
// "SpecialCasing-15.0.0.txt".
func (r *SpecialCasingReader) Identifier() string {
	return r.identifier
}

// Next returns the next unconditional entry. It returns io.EOF when exhausted.
func (r *SpecialCasingReader) Next() (ucd.CaseEntry, error) {
	for {
		fields, ok := r.scan()
		if !ok {
			if err := r.scanner.Err(); err != nil {
				return ucd.CaseEntry{}, err
			}
			return ucd.CaseEntry{}, io.EOF
		}
		if len(fields) < 4 {
			return ucd.CaseEntry{}, r.errorf("expected at least 4 fields, have %d", len(fields))
		}
		if len(fields) > 4 && fields[4] != "" {
			continue // conditional mapping
		}
		var e ucd.CaseEntry
		var err error
		if e.CodePoint, err = parseCodePoint(fields[0]); err != nil {
			return e, r.errorf("%v", err)
		}
		if e.Lower, err = parseSequence(fields[1]); err != nil {
			return e, r.errorf("lowercase: %v", err)
		}
		if e.Title, err = parseSequence(fields[2]); err != nil {
			return e, r.errorf("titlecase: %v", err)
		}
		if e.Upper, err = parseSequence(fields[3]); err != nil {
			return e, r.errorf("uppercase: %v", err)
		}
		return e, nil
	}
}
