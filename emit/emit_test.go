package emit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/npillmayer/casemapping/compiler"
	"github.com/npillmayer/casemapping/table"
	"github.com/npillmayer/casemapping/ucd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTables() *ucd.Tables {
	return &ucd.Tables{
		Lower: ucd.RawTable{
			{CodePoint: 'A', Seq: []rune{'a'}},
			{CodePoint: 0x0130, Seq: []rune{'i', 0x0307}},
		},
		Upper: ucd.RawTable{
			{CodePoint: 0xDF, Seq: []rune{'S', 'S'}},
		},
		Fold: ucd.RawTable{
			{CodePoint: 'A', Seq: []rune{'a'}},
		},
	}
}

func render(t *testing.T, tbl *table.Table, conf Config) []byte {
	var buf bytes.Buffer
	require.NoError(t, Generate(tbl, conf).Render(&buf))
	return buf.Bytes()
}

// fieldLen returns the number of elements of the composite literal assigned to
// key in the generated table literal.
func fieldLen(t *testing.T, src []byte, key string) int {
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	n := -1
	ast.Inspect(f, func(node ast.Node) bool {
		kv, ok := node.(*ast.KeyValueExpr)
		if !ok {
			return true
		}
		if id, ok := kv.Key.(*ast.Ident); ok && id.Name == key {
			if lit, ok := kv.Value.(*ast.CompositeLit); ok {
				n = len(lit.Elts)
			}
		}
		return true
	})
	return n
}

func TestGenerateIndirect(t *testing.T) {
	tbl := compiler.MustCompile(smallTables(), compiler.WithBlockShift(5))
	src := render(t, tbl, Config{Package: "mappings", Var: "Table", UnicodeVersion: "15.0.0"})

	for _, pattern := range []string{
		`(?m)^// Code generated by casemapgen\. DO NOT EDIT\.$`,
		`(?m)^package mappings$`,
		`"github.com/npillmayer/casemapping/table"`,
		`(?m)^// Mappings are taken from Unicode 15\.0\.0\.$`,
		`var Table = &table\.Table\{`,
		`Shift:\s+5,`,
		`Encoding:\s+table\.Indirect,`,
		`FirstCodePoint:\s+0x0041,`,
		`LastCodePoint:\s+0x0130,`,
		`/\* 2: U\+00DF \*/\s*\{Upper: \[3\]rune\{0x0053, 0x0053\}\}`,
		`\{Lower: \[2\]rune\{0x0069, 0x0307\}\}`,
		`/\* block 0, U\+0040 \*/`,
	} {
		assert.Regexp(t, regexp.MustCompile(pattern), string(src))
	}
	assert.Equal(t, len(tbl.Records), fieldLen(t, src, "Records"))
	assert.Equal(t, len(tbl.Blocks), fieldLen(t, src, "Blocks"))
	assert.Equal(t, len(tbl.Offsets), fieldLen(t, src, "Offsets"))
	assert.Equal(t, -1, fieldLen(t, src, "InlineBlocks"))
}

func TestGenerateInline(t *testing.T) {
	tbl := compiler.MustCompile(smallTables(), compiler.WithBlockShift(4), compiler.WithEncoding(table.Inline))
	src := render(t, tbl, Config{})
	assert.Regexp(t, `(?m)^package casemapping$`, string(src))
	assert.Regexp(t, `var mappings = &table\.Table\{`, string(src))
	assert.Regexp(t, `Encoding:\s+table\.Inline,`, string(src))
	assert.NotContains(t, string(src), "Mappings are taken from Unicode")
	assert.Equal(t, len(tbl.InlineBlocks), fieldLen(t, src, "InlineBlocks"))
	assert.Equal(t, -1, fieldLen(t, src, "Blocks"))
}

func TestVerify(t *testing.T) {
	tbl := compiler.MustCompile(smallTables())
	file := Generate(tbl, Config{})
	path := filepath.Join(t.TempDir(), "mappings_gen.go")

	assert.Error(t, Verify(path, file), "missing file must not verify")
	require.NoError(t, file.Save(path))
	assert.NoError(t, Verify(path, Generate(tbl, Config{})))

	other := compiler.MustCompile(smallTables(), compiler.WithBlockShift(4))
	assert.Error(t, Verify(path, Generate(other, Config{})))

	require.NoError(t, os.WriteFile(path, []byte("package casemapping\n"), 0o644))
	assert.Error(t, Verify(path, file))
}

func TestGenerateBuiltinIsValidGo(t *testing.T) {
	tbl := compiler.MustCompile(ucd.Builtin())
	src := render(t, tbl, Config{UnicodeVersion: ucd.Version})
	assert.Equal(t, len(tbl.Records), fieldLen(t, src, "Records"))
	assert.Equal(t, len(tbl.Offsets), fieldLen(t, src, "Offsets"))
}
