// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The per-queue state machine: the rules governing transitions between
// the Empty, Single and Chained root shapes. See spec.md §4.3.

package engine

// CreateQueue allocates one slot and leaves it zeroed, which satisfies
// the Empty predicate. Returns ErrOutOfMemory if the allocator is
// exhausted.
func (s *Storage) CreateQueue() (root uint8, err error) {
	idx, ok := s.Alloc()
	if !ok {
		return 0, &ErrOutOfMemory{Op: "CreateQueue"}
	}
	return idx, nil
}

// EnqueueByte appends b at the rear of the queue rooted at root.
//
// If a promotion (Single -> Chained, or tail-full) requires a fresh
// slot and the allocator is exhausted, root is left exactly as it was
// before the call and ErrOutOfMemory is returned - allocation is always
// attempted before any mutation of root (spec.md §9, "Allocation
// failure atomicity").
func (s *Storage) EnqueueByte(root uint8, b byte) error {
	switch {
	case s.IsEmptyRoot(root):
		s.PushSingleRoot(root, b)
		return nil

	case s.IsSingleRoot(root):
		if s.RootTailCount(root) < RootPayload {
			s.PushSingleRoot(root, b)
			return nil
		}

		// Single -> Chained: the root's 5 bytes are full, spill into a
		// freshly allocated node that is, for now, both head and tail.
		newNode, ok := s.Alloc()
		if !ok {
			return &ErrOutOfMemory{Op: "EnqueueByte"}
		}
		s.SetRootHead(root, newNode, 0)
		s.SetRootTail(root, newNode, 0)
		s.PushTail(root, b)
		return nil

	default: // Chained
		if s.RootTailCount(root) < TailPayload {
			s.PushTail(root, b)
			return nil
		}

		// Tail promotion: the current tail is full. Allocate the next
		// tail first so a failure leaves the chain untouched.
		newTail, ok := s.Alloc()
		if !ok {
			return &ErrOutOfMemory{Op: "EnqueueByte"}
		}
		displaced := s.SwapTailForNew(root, newTail)
		s.PushTail(root, displaced)
		s.PushTail(root, b)
		return nil
	}
}

// DequeueByte removes and returns the byte at the front of the queue
// rooted at root. Returns ErrIllegalOperation if root is Empty.
func (s *Storage) DequeueByte(root uint8) (byte, error) {
	switch {
	case s.IsEmptyRoot(root):
		return 0, &ErrIllegalOperation{Op: "DequeueByte"}

	case s.IsSingleRoot(root):
		return s.PopSingleRoot(root), nil

	case s.RootHeadIdx(root) == s.RootTailIdx(root):
		// Degenerate chain: head and tail are the same node.
		fresh := s.PopTailWhenHeadTail(root)
		ret := s.ShiftRootForward(root, fresh)
		if s.RootTailCount(root) == 0 {
			s.Free(s.RootTailIdx(root))
			s.MakeRootSingle(root)
		}
		return ret, nil

	default:
		fresh := s.PopHead(root)
		ret := s.ShiftRootForward(root, fresh)
		if s.RootHeadCount(root) == 0 {
			old := s.RootHeadIdx(root)
			next := s.NodeNext(old)
			s.SetRootHead(root, next, NodePayload)
			s.Free(old)
		}
		return ret, nil
	}
}

// DestroyQueue frees every slot owned by the queue rooted at root: the
// chain (if any), then root itself.
func (s *Storage) DestroyQueue(root uint8) {
	if s.IsSingleRoot(root) {
		s.Free(root)
		return
	}

	head, tail := s.RootHeadIdx(root), s.RootTailIdx(root)
	for head != tail {
		next := s.NodeNext(head)
		s.Free(head)
		head = next
	}
	s.Free(tail)
	s.Free(root)
}
