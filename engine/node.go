// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Typed read/write access over the three interpretations of an 8-byte
// slot: root, interior and tail. See spec.md §3 for the field layout
// this mirrors.

package engine

const (
	// RootPayload is the number of payload bytes a root slot carries
	// directly (Single state) before it must chain out.
	RootPayload = 5
	// NodePayload is the number of payload bytes an interior slot
	// carries alongside its forward link.
	NodePayload = 7
	// TailPayload is the number of payload bytes the terminal (Tail)
	// slot of a chain carries.
	TailPayload = 8
)

// Root byte layout: data[0:5], head_idx, tail_idx, (cnt_tail<<4 | cnt_head).
// The nibble packing order is this package's own choice - spec.md notes
// the in-buffer bit pattern is implementation-private.

func rootCounters(root []byte) (head, tail uint8) {
	b := root[7]
	return b & 0x0f, b >> 4
}

func setRootCounters(root []byte, head, tail uint8) {
	root[7] = (tail << 4) | (head & 0x0f)
}

// IsSingleRoot reports whether root is in the Single or Empty state
// (head_idx == 0).
func (s *Storage) IsSingleRoot(root uint8) bool {
	return s.slot(root)[5] == 0
}

// IsEmptyRoot reports whether root carries no payload at all.
func (s *Storage) IsEmptyRoot(root uint8) bool {
	r := s.slot(root)
	_, tail := rootCounters(r)
	return r[5] == 0 && tail == 0
}

// IsChainedRoot reports whether root has spilled into a chain of
// interior/tail slots.
func (s *Storage) IsChainedRoot(root uint8) bool {
	return s.slot(root)[5] != 0
}

// RootHeadCount returns cnt_head: the number of live bytes remaining in
// the head slot of a chained root.
func (s *Storage) RootHeadCount(root uint8) uint8 {
	head, _ := rootCounters(s.slot(root))
	return head
}

// RootTailCount returns cnt_tail: in Single state, the number of live
// payload bytes in the root itself; in Chained state, the number of live
// bytes written into the tail slot.
func (s *Storage) RootTailCount(root uint8) uint8 {
	_, tail := rootCounters(s.slot(root))
	return tail
}

// RootHeadIdx returns the slot index of the chain's head node, or 0 if
// root is not chained.
func (s *Storage) RootHeadIdx(root uint8) uint8 {
	return s.slot(root)[5]
}

// RootTailIdx returns the slot index of the chain's tail node, or 0 if
// root is not chained.
func (s *Storage) RootTailIdx(root uint8) uint8 {
	return s.slot(root)[6]
}

// SetRootHead installs head as the chain's head node with headCount live
// bytes remaining in it.
func (s *Storage) SetRootHead(root, head, headCount uint8) {
	r := s.slot(root)
	r[5] = head
	_, tail := rootCounters(r)
	setRootCounters(r, headCount, tail)
}

// SetRootTail installs tail as the chain's tail node with tailCount live
// bytes written into it.
func (s *Storage) SetRootTail(root, tail, tailCount uint8) {
	r := s.slot(root)
	r[6] = tail
	head, _ := rootCounters(r)
	setRootCounters(r, head, tailCount)
}

// SetRootTailCount updates cnt_tail in place, leaving tail_idx untouched.
func (s *Storage) SetRootTailCount(root, tailCount uint8) {
	r := s.slot(root)
	head, _ := rootCounters(r)
	setRootCounters(r, head, tailCount)
}

// SetRootHeadCount updates cnt_head in place, leaving head_idx untouched.
func (s *Storage) SetRootHeadCount(root, headCount uint8) {
	r := s.slot(root)
	_, tail := rootCounters(r)
	setRootCounters(r, headCount, tail)
}

// MakeRootSingle collapses a chained root whose tail has just drained
// back to the Single state, with the root's own 5-byte window treated as
// fully populated (the caller has already shifted the real data into
// it).
func (s *Storage) MakeRootSingle(root uint8) {
	r := s.slot(root)
	r[5] = 0
	r[6] = 0
	setRootCounters(r, 0, RootPayload)
}

// ShiftRootForward removes data[0] from the root's 5-byte payload
// window, shifts data[1:5] down by one position, writes newRear into
// data[4], and returns the removed (oldest) byte. Used by the Chained
// dequeue path once the head/tail slot has yielded its own freshest
// byte.
func (s *Storage) ShiftRootForward(root uint8, newRear byte) byte {
	r := s.slot(root)
	old := r[0]
	copy(r[0:4], r[1:5])
	r[4] = newRear
	return old
}

// PushSingleRoot appends b to the Single-state byte stack living in
// data[0:cnt_tail). Precondition: cnt_tail < RootPayload.
func (s *Storage) PushSingleRoot(root uint8, b byte) {
	r := s.slot(root)
	_, cnt := rootCounters(r)
	r[cnt] = b
	setRootCounters(r, 0, cnt+1)
}

// PopSingleRoot removes and returns data[0] of the Single-state byte
// stack, left-shifting the remainder. Precondition: cnt_tail > 0.
func (s *Storage) PopSingleRoot(root uint8) byte {
	r := s.slot(root)
	_, cnt := rootCounters(r)
	old := r[0]
	copy(r[0:RootPayload-1], r[1:RootPayload])
	setRootCounters(r, 0, cnt-1)
	return old
}

// Interior slot: data[0:7], next_idx at byte 7.

// NodeNext returns the forward link of an interior slot.
func (s *Storage) NodeNext(idx uint8) uint8 {
	return s.slot(idx)[7]
}

// SetNodeNext installs the forward link of an interior slot.
func (s *Storage) SetNodeNext(idx, next uint8) {
	s.slot(idx)[7] = next
}

// PushTail appends b into the chain's tail slot at position cnt_tail,
// and increments cnt_tail. Precondition: cnt_tail < TailPayload.
func (s *Storage) PushTail(root uint8, b byte) {
	r := s.slot(root)
	_, cnt := rootCounters(r)
	tail := s.slot(r[6])
	tail[cnt] = b
	setRootCounters(r, r[7]&0x0f, cnt+1)
}

// PopHead reads and removes data[0] of the chain's head slot (which is
// not the tail - see PopTailWhenHeadTail for the degenerate head==tail
// case), preserving the head slot's own forward link, and decrements
// cnt_head. Precondition: cnt_head > 0.
func (s *Storage) PopHead(root uint8) byte {
	r := s.slot(root)
	head, tail := rootCounters(r)
	h := s.slot(r[5])
	old := h[0]
	next := h[7]
	copy(h[0:NodePayload-1], h[1:NodePayload])
	h[7] = next
	setRootCounters(r, head-1, tail)
	return old
}

// PopTailWhenHeadTail handles the degenerate chain of length one: head
// and tail are the same slot, so popping behaves like PopSingleRoot but
// over the tail's 8-byte window, and sets both counters to the tail's
// new live count (cnt_tail-1). Precondition: cnt_tail > 0.
func (s *Storage) PopTailWhenHeadTail(root uint8) byte {
	r := s.slot(root)
	t := s.slot(r[6])
	old := t[0]
	copy(t[0:TailPayload-1], t[1:TailPayload])
	_, cnt := rootCounters(r)
	setRootCounters(r, cnt-1, cnt-1)
	return old
}

// SwapTailForNew promotes the current (full) tail slot to an interior
// slot by overwriting its last byte with newTail's index, installs
// newTail as the chain's new tail with cnt_tail reset to 0, and returns
// the byte that was displaced from the old tail's last position so the
// caller can carry it forward. If this is the first promotion out of
// the head==tail degenerate shape, cnt_head is set to NodePayload (the
// now-interior slot is entirely full) per spec.md §4.3.2 case 5 and §9.
func (s *Storage) SwapTailForNew(root, newTail uint8) byte {
	r := s.slot(root)
	oldTailIdx := r[6]
	oldTail := s.slot(oldTailIdx)
	displaced := oldTail[TailPayload-1]
	oldTail[TailPayload-1] = newTail

	if r[5] == oldTailIdx {
		// head == tail: the slot being promoted was also the head.
		_, tail := rootCounters(r)
		setRootCounters(r, NodePayload, tail)
	}

	r[6] = newTail
	head, _ := rootCounters(r)
	setRootCounters(r, head, 0)
	return displaced
}
