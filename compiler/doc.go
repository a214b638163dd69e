/*
Package compiler builds compact two-level case mapping tables from raw tables.

Compilation runs in three steps:

 1. Every code point mapped in any raw table gets a record; all other code
    points resolve to record 0, the zero record.
 2. The code point range is cut into blocks of 1<<shift code points. Blocks with
    identical content are stored once.
 3. An offset index maps every block address of the range to its block.

The result is a frozen *table.Table. Compilation is meant to happen once, either
during package initialization or in a generator, and is not safe to run on
tables modified concurrently.
*/
package compiler

import (
	"errors"

	"github.com/npillmayer/casemapping/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'casemapping.compiler'
func tracer() tracing.Trace {
	return tracing.Select("casemapping.compiler")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Errors returned by Compile. They are wrapped with the offending code point
// and mapping kind.
var (
	ErrEmpty           = errors.New("no case mappings to compile")
	ErrUnsorted        = ucd.ErrUnsorted
	ErrOutOfRange      = ucd.ErrOutOfRange
	ErrSequenceTooLong = errors.New("mapping sequence exceeds slot width")
	ErrInvalidSequence = errors.New("invalid mapping sequence")
	ErrInvalidFold     = errors.New("case fold must map to exactly one code point")
	ErrOverflow        = errors.New("table exceeds 16-bit index range")
)
