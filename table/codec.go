package table

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Binary layout of a serialized table (all integers little endian):
//
//	magic "CMAP" | version u8 | shift u8 | encoding u8 | 0 u8
//	first u32 | last u32 | #records u32 | #slots u32 | #offsets u32
//	records (9 x u32 each)
//	slots (u16 each for indirect, 9 x u32 each for inline)
//	offsets (u16 each)
//	xxhash64 of everything above, u64
//
// The format is an internal build artifact and not stable across versions.
const (
	magic         = "CMAP"
	formatVersion = 1
	headerSize    = 4 + 4 + 5*4
	recordSize    = 9 * 4
)

// ErrCorrupt is returned when a serialized table fails validation.
var ErrCorrupt = errors.New("corrupt case mapping table")

// MarshalBinary serializes t.
func (t *Table) MarshalBinary() ([]byte, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	slots := len(t.Blocks)
	size := len(t.Blocks) * 2
	if t.Encoding == Inline {
		slots = len(t.InlineBlocks)
		size = len(t.InlineBlocks) * recordSize
	}
	buf := make([]byte, 0, headerSize+len(t.Records)*recordSize+size+len(t.Offsets)*2+8)
	buf = append(buf, magic...)
	buf = append(buf, formatVersion, t.Shift, byte(t.Encoding), 0)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(t.FirstCodePoint))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(t.LastCodePoint))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(t.Records)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(slots))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(t.Offsets)))
	for _, rec := range t.Records {
		buf = AppendRecord(buf, rec)
	}
	if t.Encoding == Inline {
		for _, rec := range t.InlineBlocks {
			buf = AppendRecord(buf, rec)
		}
	} else {
		for _, index := range t.Blocks {
			buf = binary.LittleEndian.AppendUint16(buf, index)
		}
	}
	for _, block := range t.Offsets {
		buf = binary.LittleEndian.AppendUint16(buf, block)
	}
	return binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(buf)), nil
}

// Unmarshal decodes a table serialized with MarshalBinary.
func Unmarshal(data []byte) (*Table, error) {
	t := &Table{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalBinary decodes a table serialized with MarshalBinary into t.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize+8 || string(data[:4]) != magic {
		return fmt.Errorf("%w: missing header", ErrCorrupt)
	}
	body, sum := data[:len(data)-8], binary.LittleEndian.Uint64(data[len(data)-8:])
	if xxhash.Sum64(body) != sum {
		return fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	if body[4] != formatVersion {
		return fmt.Errorf("%w: unsupported format version %d", ErrCorrupt, body[4])
	}
	t.Shift, t.Encoding = body[5], Encoding(body[6])
	t.FirstCodePoint = rune(binary.LittleEndian.Uint32(body[8:]))
	t.LastCodePoint = rune(binary.LittleEndian.Uint32(body[12:]))
	nrecords := int(binary.LittleEndian.Uint32(body[16:]))
	nslots := int(binary.LittleEndian.Uint32(body[20:]))
	noffsets := int(binary.LittleEndian.Uint32(body[24:]))
	slotSize := 2
	if t.Encoding == Inline {
		slotSize = recordSize
	}
	if len(body) != headerSize+nrecords*recordSize+nslots*slotSize+noffsets*2 {
		return fmt.Errorf("%w: length mismatch", ErrCorrupt)
	}
	p := body[headerSize:]
	t.Records = make([]Record, nrecords)
	for i := range t.Records {
		t.Records[i], p = decodeRecord(p)
	}
	t.Blocks, t.InlineBlocks = nil, nil
	if t.Encoding == Inline {
		t.InlineBlocks = make([]Record, nslots)
		for i := range t.InlineBlocks {
			t.InlineBlocks[i], p = decodeRecord(p)
		}
	} else {
		t.Blocks = make([]uint16, nslots)
		for i := range t.Blocks {
			t.Blocks[i] = binary.LittleEndian.Uint16(p)
			p = p[2:]
		}
	}
	t.Offsets = make([]uint16, noffsets)
	for i := range t.Offsets {
		t.Offsets[i] = binary.LittleEndian.Uint16(p)
		p = p[2:]
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

// Checksum returns the xxhash64 of the serialized form of t.
func (t *Table) Checksum() (uint64, error) {
	data, err := t.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data[len(data)-8:]), nil
}

// AppendRecord appends the fixed-size binary form of rec to buf.
func AppendRecord(buf []byte, rec Record) []byte {
	for _, r := range rec.Lower {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
	}
	for _, r := range rec.Upper {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
	}
	for _, r := range rec.Title {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
	}
	return binary.LittleEndian.AppendUint32(buf, uint32(rec.Fold))
}

func decodeRecord(p []byte) (Record, []byte) {
	var rec Record
	next := func() rune {
		r := rune(binary.LittleEndian.Uint32(p))
		p = p[4:]
		return r
	}
	for i := range rec.Lower {
		rec.Lower[i] = next()
	}
	for i := range rec.Upper {
		rec.Upper[i] = next()
	}
	for i := range rec.Title {
		rec.Title[i] = next()
	}
	rec.Fold = next()
	return rec, p
}
