package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/npillmayer/casemapping/emit"
	"github.com/npillmayer/casemapping/table"
	"github.com/spf13/cobra"
)

// Output formats of gen.
const (
	formatGo     = "go"
	formatBinary = "binary"
)

// Gen creates the gen subcommand, which writes the compiled table.
func Gen(s *settings) *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Compiles a case mapping table and writes it as Go source or binary artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(s, cmd)
		},
	}
	genCmd.Flags().StringP(keyOutput, "o", "", "output file (default: stdout)")
	genCmd.Flags().String(keyFormat, formatGo, "output format {go, binary}")
	addSourceFlags(genCmd)
	return genCmd
}

// addSourceFlags adds the flags controlling generated Go source.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyPackage, "casemapping", "package clause of the generated file")
	cmd.Flags().String(keyVar, "mappings", "name of the generated table variable")
}

func runGen(s *settings, cmd *cobra.Command) error {
	t, _, version, err := s.compile()
	if err != nil {
		return err
	}
	output := s.v.GetString(keyOutput)
	switch format := s.v.GetString(keyFormat); format {
	case formatGo:
		file := s.generate(t, version)
		if output == "" {
			return file.Render(cmd.OutOrStdout())
		}
		if err := file.Save(output); err != nil {
			return fmt.Errorf("failed to save file to '%s': %w", output, err)
		}
	case formatBinary:
		data, err := t.MarshalBinary()
		if err != nil {
			return err
		}
		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to save file to '%s': %w", output, err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved '%s'\n", output)
	return nil
}

func (s *settings) generate(t *table.Table, version string) *jen.File {
	return emit.Generate(t, emit.Config{
		Package:        s.v.GetString(keyPackage),
		Var:            s.v.GetString(keyVar),
		UnicodeVersion: version,
	})
}

// Verify creates the verify subcommand, which checks generated files.
func Verify(s *settings) *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Ensures that generated files match the table compiled from the current configuration",
		Long: "Regenerates the table for every file and compares it to the file on disk. " +
			"Files ending in .go are compared as Go source, all other files as binary artifacts.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(s, cmd, args)
		},
	}
	addSourceFlags(verifyCmd)
	return verifyCmd
}

func runVerify(s *settings, cmd *cobra.Command, paths []string) error {
	t, _, version, err := s.compile()
	if err != nil {
		return err
	}
	var failed int
	for _, path := range paths {
		if err := verifyFile(s, t, version, path); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files are not up to date", failed, len(paths))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d files OK\n", len(paths))
	return nil
}

func verifyFile(s *settings, t *table.Table, version, path string) error {
	if filepath.Ext(path) == ".go" {
		return emit.Verify(path, s.generate(t, version))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing file on disk: %s (%w)", path, err)
	}
	existing, err := table.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("'%s': %w", path, err)
	}
	have, err := existing.Checksum()
	if err != nil {
		return err
	}
	want, err := t.Checksum()
	if err != nil {
		return err
	}
	if have != want {
		return fmt.Errorf("'%s' has changed", path)
	}
	return nil
}
