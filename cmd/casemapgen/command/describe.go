package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/casemapping/names"
	"github.com/npillmayer/casemapping/table"
	"github.com/spf13/cobra"
)

// Describe creates the describe subcommand.
func Describe(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <code point>...",
		Short: "Shows the case mappings of code points and where the table stores them",
		Long: "Code points are given as U+XXXX, 0xXXXX, decimal numbers or as a single character, " +
			"e.g. \"describe U+00DF 0x130 ß\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, _, err := s.compile()
			if err != nil {
				return err
			}
			for _, arg := range args {
				r, err := parseCodePoint(arg)
				if err != nil {
					return err
				}
				describe(cmd.OutOrStdout(), t, r)
			}
			return nil
		},
	}
}

// parseCodePoint accepts "U+00DF", "0xDF", "223" and "ß".
func parseCodePoint(arg string) (rune, error) {
	var v int64
	var err error
	switch upper := strings.ToUpper(arg); {
	case strings.HasPrefix(upper, "U+"):
		v, err = strconv.ParseInt(arg[2:], 16, 32)
	case utf8.RuneCountInString(arg) == 1 && (arg[0] < '0' || arg[0] > '9'):
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	default:
		v, err = strconv.ParseInt(arg, 0, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", arg, err)
	}
	if v < 0 || v > unicode.MaxRune {
		return 0, fmt.Errorf("code point out of range: %q", arg)
	}
	return rune(v), nil
}

func describe(w io.Writer, t *table.Table, r rune) {
	fmt.Fprintf(w, "U+%04X %q %s\n", r, r, names.Name(r))
	address, block, slot, ok := t.Locate(r)
	if !ok {
		fmt.Fprintf(w, "  outside of U+%04X..U+%04X, no case mappings\n", t.FirstCodePoint, t.LastCodePoint)
		return
	}
	lo := (t.FirstCodePoint>>t.Shift + rune(address)) << t.Shift
	fmt.Fprintf(w, "  address %d (U+%04X..U+%04X), block %d, slot %d, record %d\n",
		address, lo, lo+rune(t.BlockSize())-1, block, slot, t.RecordIndex(r))
	rec := t.Lookup(r)
	fmt.Fprintf(w, "  lower  %s\n", sequence(rec.Lower[:]))
	fmt.Fprintf(w, "  upper  %s\n", sequence(rec.Upper[:]))
	fmt.Fprintf(w, "  title  %s\n", sequence(rec.Title[:]))
	fmt.Fprintf(w, "  fold   %s\n", sequence([]rune{rec.Fold}))
}

// sequence formats a zero-padded mapping, "-" for identity.
func sequence(rs []rune) string {
	var codes []string
	var text strings.Builder
	for _, r := range rs {
		if r == 0 {
			break
		}
		codes = append(codes, fmt.Sprintf("U+%04X", r))
		text.WriteRune(r)
	}
	if len(codes) == 0 {
		return "-"
	}
	return fmt.Sprintf("%s %q", strings.Join(codes, " "), text.String())
}
