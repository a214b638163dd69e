/*
Package emit renders compiled case mapping tables as Go source.

The generated file declares a single variable of type *table.Table, so a
package can ship a precompiled table instead of compiling one during
initialization:

	f := emit.Generate(t, emit.Config{Package: "mappings", Var: "Table"})
	err := f.Save("mappings/table_gen.go")

Record and block lists carry comments with their first code point, which makes
the generated tables reviewable in diffs.
*/
package emit

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/npillmayer/casemapping/table"
)

const tablePkg = "github.com/npillmayer/casemapping/table"

// slots per line in block and offset lists
const lineWidth = 16

// Config controls the generated file.
type Config struct {
	Package        string // package clause
	Var            string // name of the table variable
	UnicodeVersion string // mentioned in the doc comment, if set
	Generator      string // name of the generator in the "DO NOT EDIT" line
}

func (conf Config) withDefaults() Config {
	if conf.Package == "" {
		conf.Package = "casemapping"
	}
	if conf.Var == "" {
		conf.Var = "mappings"
	}
	if conf.Generator == "" {
		conf.Generator = "casemapgen"
	}
	return conf
}

// Generate returns a Go source file declaring t as a package variable.
func Generate(t *table.Table, conf Config) *jen.File {
	conf = conf.withDefaults()
	f := jen.NewFile(conf.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", conf.Generator))
	f.ImportName(tablePkg, "table")

	fields := []jen.Code{
		jen.Id("Shift").Op(":").Lit(int(t.Shift)),
		jen.Id("Encoding").Op(":").Qual(tablePkg, encodingName(t.Encoding)),
		jen.Id("FirstCodePoint").Op(":").Id(hex(t.FirstCodePoint)),
		jen.Id("LastCodePoint").Op(":").Id(hex(t.LastCodePoint)),
		jen.Id("Records").Op(":").Add(records(t)),
	}
	if t.Encoding == table.Inline {
		fields = append(fields, jen.Id("InlineBlocks").Op(":").Add(inlineBlocks(t)))
	} else {
		fields = append(fields, jen.Id("Blocks").Op(":").Add(blocks(t)))
	}
	fields = append(fields, jen.Id("Offsets").Op(":").Add(offsets(t)))

	f.Comment(fmt.Sprintf("%s maps code points to their case mappings, with %d records in %d blocks of %d code points.",
		conf.Var, len(t.Records), t.NumBlocks(), t.BlockSize()))
	if conf.UnicodeVersion != "" {
		f.Comment(fmt.Sprintf("Mappings are taken from Unicode %s.", conf.UnicodeVersion))
	}
	f.Var().Id(conf.Var).Op("=").Op("&").Qual(tablePkg, "Table").Custom(multiline, fields...)
	return f
}

var multiline = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

func encodingName(enc table.Encoding) string {
	if enc == table.Inline {
		return "Inline"
	}
	return "Indirect"
}

func hex(r rune) string {
	return fmt.Sprintf("0x%04X", r)
}

func runes(n int, rs []rune) *jen.Statement {
	return jen.Index(jen.Lit(n)).Rune().ValuesFunc(func(g *jen.Group) {
		last := len(rs)
		for last > 0 && rs[last-1] == 0 {
			last--
		}
		for _, r := range rs[:last] {
			g.Id(hex(r))
		}
	})
}

// record renders rec as a composite literal without type, omitting zero fields.
func record(rec table.Record) *jen.Statement {
	return jen.ValuesFunc(func(g *jen.Group) {
		if rec.Lower != [table.LowerWidth]rune{} {
			g.Id("Lower").Op(":").Add(runes(table.LowerWidth, rec.Lower[:]))
		}
		if rec.Upper != [table.UpperWidth]rune{} {
			g.Id("Upper").Op(":").Add(runes(table.UpperWidth, rec.Upper[:]))
		}
		if rec.Title != [table.TitleWidth]rune{} {
			g.Id("Title").Op(":").Add(runes(table.TitleWidth, rec.Title[:]))
		}
		if rec.Fold != 0 {
			g.Id("Fold").Op(":").Id(hex(rec.Fold))
		}
	})
}

// records lists the record table, one record per line, commented with the
// first code point using it.
func records(t *table.Table) *jen.Statement {
	users := make([]rune, len(t.Records))
	index := recordIndexer(t)
	for cp := t.FirstCodePoint; cp <= t.LastCodePoint; cp++ {
		if i := index(cp); i > 0 && users[i] == 0 {
			users[i] = cp
		}
	}
	items := make([]jen.Code, len(t.Records))
	for i, rec := range t.Records {
		c := fmt.Sprintf("/* %d */", i)
		if i > 0 {
			c = fmt.Sprintf("/* %d: U+%04X */", i, users[i])
		}
		items[i] = jen.Comment(c).Add(record(rec))
	}
	return jen.Index().Qual(tablePkg, "Record").Custom(multiline, items...)
}

// recordIndexer returns a function finding the record index of a code point.
// Inline tables get a reverse index instead of linear search.
func recordIndexer(t *table.Table) func(rune) int {
	if t.Encoding != table.Inline {
		return t.RecordIndex
	}
	indices := make(map[table.Record]int, len(t.Records))
	for i := len(t.Records) - 1; i >= 0; i-- {
		indices[t.Records[i]] = i
	}
	return func(cp rune) int {
		_, _, slot, _ := t.Locate(cp)
		return indices[t.InlineBlocks[slot]]
	}
}

func blocks(t *table.Table) *jen.Statement {
	first := t.FirstUse()
	return jen.Index().Uint16().ValuesFunc(func(g *jen.Group) {
		for b := 0; b < t.NumBlocks(); b++ {
			for i, index := range t.Block(b) {
				switch {
				case i == 0:
					g.Line().Comment(fmt.Sprintf("/* block %d, U+%04X */", b, first[b])).Lit(int(index))
				case i%lineWidth == 0:
					g.Line().Lit(int(index))
				default:
					g.Lit(int(index))
				}
			}
		}
		g.Line()
	})
}

func inlineBlocks(t *table.Table) *jen.Statement {
	first := t.FirstUse()
	var items []jen.Code
	for b := 0; b < t.NumBlocks(); b++ {
		for i, rec := range t.InlineBlock(b) {
			if i == 0 {
				items = append(items, jen.Comment(fmt.Sprintf("/* block %d, U+%04X */", b, first[b])).Add(record(rec)))
				continue
			}
			items = append(items, record(rec))
		}
	}
	return jen.Index().Qual(tablePkg, "Record").Custom(multiline, items...)
}

func offsets(t *table.Table) *jen.Statement {
	base := t.FirstCodePoint >> t.Shift
	return jen.Index().Uint16().ValuesFunc(func(g *jen.Group) {
		for address, block := range t.Offsets {
			if address%lineWidth == 0 {
				cp := (base + rune(address)) << t.Shift
				g.Line().Comment(fmt.Sprintf("/* U+%04X */", cp)).Lit(int(block))
				continue
			}
			g.Lit(int(block))
		}
		g.Line()
	})
}

// Verify compares the rendered form of file to the file at path and returns an
// error if they differ.
func Verify(path string, file *jen.File) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing file on disk: %s (%w)", path, err)
	}
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return fmt.Errorf("render error for '%s': %w", path, err)
	}
	if !bytes.Equal(existing, buf.Bytes()) {
		return fmt.Errorf("'%s' has changed", path)
	}
	return nil
}
