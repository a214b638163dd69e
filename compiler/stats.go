package compiler

import (
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/casemapping/table"
)

// RecordSize is the in-memory size of a table.Record in bytes.
const RecordSize = int(unsafe.Sizeof(table.Record{}))

// Statistics describes the size and compression of a compiled table.
type Statistics struct {
	Encoding        table.Encoding
	BlockSize       int
	Span            int // code points in [FirstCodePoint, LastCodePoint]
	Records         int // including the zero record
	DistinctBlocks  int
	AddressedBlocks int // entries of the offset index
	RecordBytes     int
	BlockBytes      int
	OffsetBytes     int
}

// Stats collects statistics for t.
func Stats(t *table.Table) Statistics {
	s := Statistics{
		Encoding:        t.Encoding,
		BlockSize:       t.BlockSize(),
		Span:            int(t.LastCodePoint-t.FirstCodePoint) + 1,
		Records:         len(t.Records),
		DistinctBlocks:  t.NumBlocks(),
		AddressedBlocks: len(t.Offsets),
		OffsetBytes:     len(t.Offsets) * 2,
	}
	if t.Encoding == table.Inline {
		s.BlockBytes = len(t.InlineBlocks) * RecordSize
	} else {
		s.RecordBytes = len(t.Records) * RecordSize
		s.BlockBytes = len(t.Blocks) * 2
	}
	return s
}

// DedupRatio is the ratio of distinct to addressed blocks. Lower is better.
func (s Statistics) DedupRatio() float64 {
	if s.AddressedBlocks == 0 {
		return 0
	}
	return float64(s.DistinctBlocks) / float64(s.AddressedBlocks)
}

// TotalBytes is the size of the arrays a lookup reads.
func (s Statistics) TotalBytes() int {
	return s.RecordBytes + s.BlockBytes + s.OffsetBytes
}

// FlatBytes is the size of a flat record array covering the span.
func (s Statistics) FlatBytes() int {
	return s.Span * RecordSize
}

// CompressionRatio relates TotalBytes to FlatBytes.
func (s Statistics) CompressionRatio() float64 {
	if s.FlatBytes() == 0 {
		return 0
	}
	return float64(s.TotalBytes()) / float64(s.FlatBytes())
}

func formatBytes(n int) string {
	return humanize.Bytes(uint64(n))
}
