// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the in-buffer node allocator and bit-packed
// linked-list representation underlying a byte-queue arena: the fixed-size
// slot allocator, the root/interior/tail node layouts and their accessors,
// and the per-queue state machine that walks the empty/single/chained
// shapes described by the package consuming this one.
//
// Every queue, link and payload byte managed by this package lives inside
// a single caller-supplied []byte; the package never allocates from the
// Go heap on behalf of a queue. Storage is addressed in fixed 8-byte
// slots; slot 0 is reserved for the allocator's own bookkeeping and is
// never handed out as a queue or chain node.
//
// engine has no notion of a "handle": it works directly in terms of slot
// indices (uint8) into the caller's Storage. Handle validation, callback
// dispatch and the public API live one layer up, in package queues.
package engine
