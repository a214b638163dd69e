package ucdtext

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// lineScanner splits a UCD text file into data lines, tracking line numbers
// and the file identifier found in the first comment line.
type lineScanner struct {
	scanner    *bufio.Scanner
	file       string
	line       int
	identifier string
}

// scan returns the semicolon-separated fields of the next data line, with
// comments removed and fields trimmed.
func (s *lineScanner) scan() ([]string, bool) {
	for s.scanner.Scan() {
		s.line++
		line := s.scanner.Text()
		if strings.HasPrefix(line, "#") {
			if s.identifier == "" && s.line == 1 {
				s.identifier = strings.TrimSpace(line[1:])
			}
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields, true
	}
	return nil, false
}

func (s *lineScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", s.file, s.line, fmt.Sprintf(format, args...))
}

// parseCodePoint parses a single hex code point like "00DF".
func parseCodePoint(field string) (rune, error) {
	v, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("code point out of range: %s", field)
	}
	return rune(v), nil
}

// parseSequence parses a space-separated list of hex code points. An empty
// field yields nil.
func parseSequence(field string) ([]rune, error) {
	parts := strings.Fields(field)
	if len(parts) == 0 {
		return nil, nil
	}
	seq := make([]rune, 0, len(parts))
	for _, part := range parts {
		r, err := parseCodePoint(part)
		if err != nil {
			return nil, err
		}
		seq = append(seq, r)
	}
	return seq, nil
}
