package command

import (
	"fmt"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/npillmayer/casemapping/names"
	"github.com/spf13/cobra"
)

// Search creates the search subcommand, which looks up code points by name.
func Search(s *settings) *cobra.Command {
	var limit int
	searchCmd := &cobra.Command{
		Use:   "search <name prefix>",
		Short: "Finds code points with case mappings by character name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, tables, _, err := s.compile()
			if err != nil {
				return err
			}
			index := names.FromTables(tables)
			entries := index.Search(strings.Join(args, " "), limit)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rec := t.Lookup(e.CodePoint)
				rows = append(rows, []string{
					fmt.Sprintf("U+%04X", e.CodePoint),
					e.Name,
					compact(rec.Lower[:]),
					compact(rec.Upper[:]),
					compact(rec.Title[:]),
					compact([]rune{rec.Fold}),
				})
			}
			tab := gotabulate.Create(rows)
			tab.SetHeaders([]string{"code point", "name", "lower", "upper", "title", "fold"})
			tab.SetAlign("left")
			fmt.Fprint(cmd.OutOrStdout(), tab.Render("simple"))
			return nil
		},
	}
	searchCmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results, 0 for all")
	return searchCmd
}

// compact formats a zero-padded mapping as its code points, "-" for identity.
func compact(rs []rune) string {
	var codes []string
	for _, r := range rs {
		if r == 0 {
			break
		}
		codes = append(codes, fmt.Sprintf("%04X", r))
	}
	if len(codes) == 0 {
		return "-"
	}
	return strings.Join(codes, " ")
}
