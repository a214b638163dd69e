package ucdtext

import (
	"bufio"
	"io"
)

// CaseFoldingReader streams simple case folds from CaseFolding.txt.
//
// Only status C (common) and S (simple) lines are reported; F (full) and
// T (Turkic) lines are skipped.
type CaseFoldingReader struct {
	lineScanner
}

func NewCaseFoldingReader(reader io.Reader) *CaseFoldingReader {
	return &CaseFoldingReader{
		lineScanner: lineScanner{scanner: bufio.NewScanner(reader), file: "CaseFolding.txt"},
	}
}

// Identifier returns the file identifier from the header, e.g.
// "CaseFolding-15.0.0.txt".
func (r *CaseFoldingReader) Identifier() string {
	return r.identifier
}

// Next returns the next simple fold. It returns io.EOF when exhausted.
func (r *CaseFoldingReader) Next() (from, to rune, err error) {
	for {
		fields, ok := r.scan()
		if !ok {
			if err = r.scanner.Err(); err != nil {
				return 0, 0, err
			}
			return 0, 0, io.EOF
		}
		if len(fields) < 3 {
			return 0, 0, r.errorf("expected at least 3 fields, have %d", len(fields))
		}
		switch fields[1] {
		case "C", "S":
		case "F", "T":
			continue
		default:
			return 0, 0, r.errorf("unknown status %q", fields[1])
		}
		if from, err = parseCodePoint(fields[0]); err != nil {
			return 0, 0, r.errorf("%v", err)
		}
		if to, err = parseCodePoint(fields[2]); err != nil {
			return 0, 0, r.errorf("mapping: %v", err)
		}
		return from, to, nil
	}
}
