// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// SlotSize is the fixed size, in bytes, of every slot carved out of a
// Storage's backing buffer.
const SlotSize = 8

// Storage is a []byte reinterpreted as a contiguous array of fixed 8-byte
// slots. It is the memory-only analogue of a Filer in the teacher's
// storage-engine lineage, minus any notion of growth or persistence: a
// Storage never changes size after NewStorage.
//
// Slot 0 is reserved for the allocator's free-list head (see Alloc/Free)
// and MUST NOT be interpreted as a root, interior or tail node.
type Storage struct {
	buf []byte
	n   int // number of whole 8-byte slots in buf
}

// NewStorage reinterprets buf as a Storage of N = len(buf)/8 slots. buf is
// zeroed so slot 0's free-list head starts at its zero value; the caller
// (package queues) is responsible for seeding it to 1 before use.
func NewStorage(buf []byte) *Storage {
	for i := range buf {
		buf[i] = 0
	}
	return &Storage{buf: buf, n: len(buf) / SlotSize}
}

// N returns the total number of addressable slots, including the
// reserved slot 0.
func (s *Storage) N() int { return s.n }

// slot returns the 8-byte window backing slot i. Callers within this
// package are trusted to pass an in-range index; bounds checking for
// untrusted input happens one layer up, in package queues.
func (s *Storage) slot(i uint8) []byte {
	off := int(i) * SlotSize
	return s.buf[off : off+SlotSize]
}
