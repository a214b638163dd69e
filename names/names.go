/*
Package names is a small index of Unicode character names, used to find code
points by (a prefix of) their name.

Names are normalized to upper case. The index is write-once/read-many: after
Freeze it may be shared between goroutines, further additions are ignored.
*/
package names

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/casemapping/ucd"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'casemapping.names'
func tracer() tracing.Trace {
	return tracing.Select("casemapping.names")
}

// Entry pairs a code point with its character name.
type Entry struct {
	CodePoint rune
	Name      string
}

// Index maps character names to code points.
type Index struct {
	frozen bool
	trie   *trie.Trie
	size   int
}

// New creates an empty index.
func New() *Index {
	return &Index{trie: trie.New()}
}

// Add registers name for code point r. Empty names and placeholder names like
// "<control>" are skipped. It returns false if the name has not been added.
func (ix *Index) Add(r rune, name string) bool {
	if ix.frozen {
		tracer().Errorf("name index is frozen, cannot add %U", r)
		return false
	}
	name = normalize(name)
	if name == "" || strings.HasPrefix(name, "<") {
		return false
	}
	if _, exists := ix.trie.Find(name); !exists {
		ix.size++
	}
	ix.trie.Add(name, r)
	return true
}

// Freeze makes the index read-only.
func (ix *Index) Freeze() {
	ix.frozen = true
}

// Len returns the number of names in the index.
func (ix *Index) Len() int {
	return ix.size
}

// Lookup finds the code point with the given name, ignoring case.
func (ix *Index) Lookup(name string) (rune, bool) {
	node, ok := ix.trie.Find(normalize(name))
	if !ok {
		return 0, false
	}
	return node.Meta().(rune), true
}

// Search returns the entries whose names start with prefix, ignoring case,
// ordered by code point. If limit is positive, at most limit entries are
// returned.
func (ix *Index) Search(prefix string, limit int) []Entry {
	keys := ix.trie.PrefixSearch(normalize(prefix))
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		if node, ok := ix.trie.Find(key); ok {
			entries = append(entries, Entry{CodePoint: node.Meta().(rune), Name: key})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CodePoint < entries[j].CodePoint
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Name returns the character name of r, or "" if r has none.
func Name(r rune) string {
	name := runenames.Name(r)
	if strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}

// FromTables builds a frozen index of the names of all code points mapped in
// tables, or being the target of a single character mapping.
func FromTables(tables *ucd.Tables) *Index {
	ix := New()
	for _, k := range ucd.Kinds {
		for _, m := range tables.Table(k) {
			ix.Add(m.CodePoint, Name(m.CodePoint))
			if len(m.Seq) == 1 {
				ix.Add(m.Seq[0], Name(m.Seq[0]))
			}
		}
	}
	ix.Freeze()
	tracer().Debugf("indexed %d character names", ix.Len())
	return ix
}

func normalize(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
