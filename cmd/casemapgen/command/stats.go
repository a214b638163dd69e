package command

import (
	"fmt"
	"strconv"

	"github.com/bndr/gotabulate"
	"github.com/dustin/go-humanize"
	"github.com/npillmayer/casemapping/compiler"
	"github.com/npillmayer/casemapping/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Stats creates the stats subcommand.
func Stats(s *settings) *cobra.Command {
	var all bool
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints size and compression statistics of the compiled table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				return runStatsAll(s, cmd)
			}
			return runStats(s, cmd)
		},
	}
	statsCmd.Flags().BoolVar(&all, "all", false, "compare all block sizes and encodings")
	return statsCmd
}

func runStats(s *settings, cmd *cobra.Command) error {
	t, _, version, err := s.compile()
	if err != nil {
		return err
	}
	st := compiler.Stats(t)
	rows := [][]string{
		{"unicode version", version},
		{"code points", fmt.Sprintf("U+%04X..U+%04X (%s)", t.FirstCodePoint, t.LastCodePoint, humanize.Comma(int64(st.Span)))},
		{"encoding", st.Encoding.String()},
		{"block size", strconv.Itoa(st.BlockSize)},
		{"records", humanize.Comma(int64(st.Records))},
		{"distinct blocks", humanize.Comma(int64(st.DistinctBlocks))},
		{"addressed blocks", humanize.Comma(int64(st.AddressedBlocks))},
		{"dedup ratio", fmt.Sprintf("%.3f", st.DedupRatio())},
		{"record bytes", humanize.Bytes(uint64(st.RecordBytes))},
		{"block bytes", humanize.Bytes(uint64(st.BlockBytes))},
		{"offset bytes", humanize.Bytes(uint64(st.OffsetBytes))},
		{"total", humanize.Bytes(uint64(st.TotalBytes()))},
		{"flat array", humanize.Bytes(uint64(st.FlatBytes()))},
	}
	tab := gotabulate.Create(rows)
	tab.SetHeaders([]string{"property", "value"})
	tab.SetAlign("left")
	fmt.Fprint(cmd.OutOrStdout(), tab.Render("simple"))
	return nil
}

func runStatsAll(s *settings, cmd *cobra.Command) error {
	tables, _, err := s.tables()
	if err != nil {
		return err
	}
	encodings := []table.Encoding{table.Indirect, table.Inline}
	results := make([]compiler.Statistics, (table.MaxShift-table.MinShift+1)*len(encodings))
	var g errgroup.Group
	for i := range results {
		i := i
		shift := uint8(table.MinShift + i/len(encodings))
		enc := encodings[i%len(encodings)]
		g.Go(func() error {
			t, err := compiler.Compile(tables, compiler.WithBlockShift(shift), compiler.WithEncoding(enc))
			if err != nil {
				return err
			}
			results[i] = compiler.Stats(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(results))
	for _, st := range results {
		rows = append(rows, []string{
			strconv.Itoa(st.BlockSize),
			st.Encoding.String(),
			humanize.Comma(int64(st.Records)),
			fmt.Sprintf("%d/%d", st.DistinctBlocks, st.AddressedBlocks),
			humanize.Bytes(uint64(st.TotalBytes())),
			fmt.Sprintf("%.2f%%", 100*st.CompressionRatio()),
		})
	}
	tab := gotabulate.Create(rows)
	tab.SetHeaders([]string{"block", "encoding", "records", "blocks", "size", "of flat"})
	fmt.Fprint(cmd.OutOrStdout(), tab.Render("simple"))
	return nil
}
