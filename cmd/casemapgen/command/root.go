/*
Package command implements the casemapgen command line tool.

casemapgen compiles case mapping tables and inspects them:

	casemapgen gen --output mappings_gen.go --package casemapping
	casemapgen verify mappings_gen.go
	casemapgen stats --all
	casemapgen describe U+00DF
	casemapgen search "latin capital letter sharp"

Tables are compiled from the Unicode data built into the Go standard library,
or from the UCD text files in --ucd-dir. Every flag may also be given in a
YAML file passed with --config; flags on the command line take precedence.
*/
package command

import (
	"fmt"

	"github.com/npillmayer/casemapping/compiler"
	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
	"github.com/npillmayer/casemapping/ucd/ucdtext"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tracer writes to trace with key 'casemapping.cmd'
func tracer() tracing.Trace {
	return tracing.Select("casemapping.cmd")
}

// Configuration keys, identical to the flag names.
const (
	keyUCDDir     = "ucd-dir"
	keyBlockShift = "block-shift"
	keyEncoding   = "encoding"
	keyPackage    = "package"
	keyVar        = "var"
	keyOutput     = "output"
	keyFormat     = "format"
)

// settings carries the configuration of one command invocation.
type settings struct {
	configFile string
	v          *viper.Viper
}

// Main creates the root command with all subcommands attached.
func Main() *cobra.Command {
	s := &settings{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "casemapgen",
		Short: "casemapgen compiles and inspects Unicode case mapping tables.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configFile, "config", "", "YAML file with default flag values")
	flags.String(keyUCDDir, "", "directory with UnicodeData.txt, SpecialCasing.txt and CaseFolding.txt (default: built-in data)")
	flags.Uint8(keyBlockShift, table.DefaultShift, fmt.Sprintf("log2 of the block size (%d..%d)", table.MinShift, table.MaxShift))
	flags.String(keyEncoding, table.Indirect.String(), "block slot encoding {indirect, inline}")
	rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	rootCmd.MarkPersistentFlagDirname(keyUCDDir)

	rootCmd.AddCommand(Gen(s))
	rootCmd.AddCommand(Verify(s))
	rootCmd.AddCommand(Stats(s))
	rootCmd.AddCommand(Describe(s))
	rootCmd.AddCommand(Search(s))

	return rootCmd
}

// load binds the flags of cmd to the configuration and reads the config file.
func (s *settings) load(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = s.v.BindPFlag(f.Name, f)
	})
	if err != nil {
		return err
	}
	if s.configFile == "" {
		return nil
	}
	s.v.SetConfigFile(s.configFile)
	if err := s.v.ReadInConfig(); err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}
	tracer().Infof("using config file %s", s.v.ConfigFileUsed())
	return nil
}

// tables returns the raw tables to compile and their Unicode version.
func (s *settings) tables() (*ucd.Tables, string, error) {
	dir := s.v.GetString(keyUCDDir)
	if dir == "" {
		return ucd.Builtin(), ucd.Version, nil
	}
	tables, version, err := ucdtext.Load(dir)
	if err != nil {
		return nil, "", fmt.Errorf("cannot load UCD files from %s: %w", dir, err)
	}
	return tables, version, nil
}

// options returns the compiler options from the configuration.
func (s *settings) options() ([]compiler.Option, error) {
	enc, ok := table.ParseEncoding(s.v.GetString(keyEncoding))
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", s.v.GetString(keyEncoding))
	}
	shift := s.v.GetUint(keyBlockShift)
	if shift > table.MaxShift {
		return nil, fmt.Errorf("block shift out of range (%d..%d): %d", table.MinShift, table.MaxShift, shift)
	}
	return []compiler.Option{compiler.WithBlockShift(uint8(shift)), compiler.WithEncoding(enc)}, nil
}

// compile loads and compiles the configured tables.
func (s *settings) compile() (*table.Table, *ucd.Tables, string, error) {
	tables, version, err := s.tables()
	if err != nil {
		return nil, nil, "", err
	}
	opts, err := s.options()
	if err != nil {
		return nil, nil, "", err
	}
	t, err := compiler.Compile(tables, opts...)
	if err != nil {
		return nil, nil, "", err
	}
	return t, tables, version, nil
}
