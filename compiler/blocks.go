package compiler

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// blockStore keeps distinct blocks of slots, concatenated in first-seen order.
//
// Blocks are bucketed by the xxhash of their binary form; within a bucket,
// blocks are compared slot by slot.
type blockStore[S comparable] struct {
	size    int
	slots   []S
	buckets map[uint64][]uint16
	encode  func([]byte, S) []byte
	scratch []byte
	lookups int
	hits    int
}

func newBlockStore[S comparable](size int, encode func([]byte, S) []byte) *blockStore[S] {
	return &blockStore[S]{
		size:    size,
		buckets: make(map[uint64][]uint16),
		encode:  encode,
	}
}

func appendIndex(buf []byte, index uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, index)
}

func (s *blockStore[S]) block(i uint16) []S {
	base := int(i) * s.size
	return s.slots[base : base+s.size]
}

func (s *blockStore[S]) count() int {
	return len(s.slots) / s.size
}

// intern returns the index of a stored block equal to block, storing a copy of
// block first if there is none.
func (s *blockStore[S]) intern(block []S) (uint16, error) {
	assert(len(block) == s.size, "block size mismatch")
	s.lookups++
	s.scratch = s.scratch[:0]
	for _, slot := range block {
		s.scratch = s.encode(s.scratch, slot)
	}
	h := xxhash.Sum64(s.scratch)
	for _, i := range s.buckets[h] {
		if slices.Equal(s.block(i), block) {
			s.hits++
			return i, nil
		}
	}
	n := s.count()
	if n > math.MaxUint16 {
		return 0, fmt.Errorf("more than %d distinct blocks: %w", math.MaxUint16, ErrOverflow)
	}
	if len(s.buckets[h]) > 0 {
		tracer().Debugf("hash collision for block %d", n)
	}
	s.slots = append(s.slots, block...)
	s.buckets[h] = append(s.buckets[h], uint16(n))
	return uint16(n), nil
}

// partition cuts [first, last] into aligned blocks of 1<<shift code points and
// interns each of them. slot yields the content for a code point of the range;
// code points outside of the range get the zero value. It returns the offset
// index, one entry per block address.
func partition[S comparable](store *blockStore[S], shift uint8, first, last rune,
	slot func(rune) S) ([]uint16, error) {
	//
	size := rune(1) << shift
	base := first &^ (size - 1)
	offsets := make([]uint16, 0, int(last>>shift)-int(first>>shift)+1)
	buf := make([]S, size)
	var zero S
	for lo := base; lo <= last; lo += size {
		for i := range buf {
			buf[i] = zero
		}
		for cp := max(lo, first); cp <= min(lo+size-1, last); cp++ {
			buf[cp-lo] = slot(cp)
		}
		b, err := store.intern(buf)
		if err != nil {
			return nil, fmt.Errorf("block at %U: %w", lo, err)
		}
		offsets = append(offsets, b)
	}
	tracer().Debugf("partitioned %U..%U into %d addresses, %d distinct blocks (%d hits)",
		first, last, len(offsets), store.count(), store.hits)
	return offsets, nil
}
