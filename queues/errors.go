// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

// ErrNotInitialized reports use of a Context before InitQueues has
// succeeded on it.
type ErrNotInitialized struct{ Op string }

func (e *ErrNotInitialized) Error() string { return e.Op + ": context not initialized" }

// ErrInvalidBuffer reports that InitQueues was given a buffer too small
// to hold even the reserved allocator slot plus one usable slot.
type ErrInvalidBuffer struct{ Len int }

func (e *ErrInvalidBuffer) Error() string {
	return "InitQueues: buffer too small"
}

// ErrInvalidHandle reports a Handle that does not name a live queue in
// the Context it was presented to - constructed on a different Context,
// produced by a Context that has since been re-initialized, or holding a
// slot index outside the current buffer's bounds (spec.md §4.3.5, §4.3.6).
type ErrInvalidHandle struct{ Op string }

func (e *ErrInvalidHandle) Error() string { return e.Op + ": invalid handle" }
