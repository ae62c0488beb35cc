// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

import "github.com/randomize/queues-task/engine"

// OutOfMemoryFunc is called when the arena cannot satisfy an allocation.
// Per spec.md §7 it is not expected to return; a Context that registers
// none falls back to returning the error from the failed call instead.
type OutOfMemoryFunc func()

// IllegalOperationFunc is called on client misuse - dequeuing an empty
// queue, or presenting a Handle that doesn't name a live queue.
type IllegalOperationFunc func()

// Context owns one caller-supplied buffer and the queues living in it.
// The zero Context is valid and uninitialized; InitQueues must succeed
// on it before any other method is used.
type Context struct {
	storage *engine.Storage
	gen     uint64

	oom     OutOfMemoryFunc
	illegal IllegalOperationFunc
}

// NewContext returns an uninitialized Context for running an arena
// independently of the package-level default one.
func NewContext() *Context { return &Context{} }

func (c *Context) callOOM() {
	if c.oom != nil {
		c.oom()
	}
}

func (c *Context) callIllegal() {
	if c.illegal != nil {
		c.illegal()
	}
}

// InitQueues adopts buf as this Context's arena, discarding whatever it
// held before. Every Handle obtained from this Context prior to the call
// is invalidated, even if the underlying slot index happens to coincide
// with a live queue afterwards (spec.md §5).
//
// buf must be at least 16 bytes (one reserved allocator slot plus one
// usable slot) and its length need not be a multiple of 8 - any trailing
// partial slot is simply unused.
func (c *Context) InitQueues(buf []byte) (Metrics, error) {
	if len(buf) < 2*engine.SlotSize {
		return Metrics{}, &ErrInvalidBuffer{Len: len(buf)}
	}
	s := engine.NewStorage(buf)
	s.ResetAllocator()

	c.storage = s
	c.gen++
	return computeMetrics(s.N()), nil
}

// SetOutOfMemoryCallback registers fn to be invoked whenever the arena is
// exhausted. Passing nil clears the callback.
func (c *Context) SetOutOfMemoryCallback(fn OutOfMemoryFunc) { c.oom = fn }

// SetIllegalOperationCallback registers fn to be invoked on client
// misuse. Passing nil clears the callback.
func (c *Context) SetIllegalOperationCallback(fn IllegalOperationFunc) { c.illegal = fn }

// Handle names a queue created by a particular Context. The zero Handle
// never validates against any Context.
type Handle struct {
	ctx *Context
	gen uint64
	idx uint8
}

func (c *Context) valid(h Handle) bool {
	return h.ctx == c && c.storage != nil && h.gen == c.gen &&
		h.idx != 0 && int(h.idx) < c.storage.N()
}

// CreateQueue allocates a new, initially empty queue.
func (c *Context) CreateQueue() (Handle, error) {
	if c.storage == nil {
		c.callIllegal()
		return Handle{}, &ErrNotInitialized{Op: "CreateQueue"}
	}
	idx, err := c.storage.CreateQueue()
	if err != nil {
		c.callOOM()
		return Handle{}, err
	}
	return Handle{ctx: c, gen: c.gen, idx: idx}, nil
}

// DestroyQueue releases every slot owned by h. h must not be used again
// afterwards.
func (c *Context) DestroyQueue(h Handle) error {
	if !c.valid(h) {
		c.callIllegal()
		return &ErrInvalidHandle{Op: "DestroyQueue"}
	}
	c.storage.DestroyQueue(h.idx)
	return nil
}

// EnqueueByte appends b to the rear of the queue named by h.
func (c *Context) EnqueueByte(h Handle, b byte) error {
	if !c.valid(h) {
		c.callIllegal()
		return &ErrInvalidHandle{Op: "EnqueueByte"}
	}
	if err := c.storage.EnqueueByte(h.idx, b); err != nil {
		c.callOOM()
		return err
	}
	return nil
}

// DequeueByte removes and returns the byte at the front of the queue
// named by h.
func (c *Context) DequeueByte(h Handle) (byte, error) {
	if !c.valid(h) {
		c.callIllegal()
		return 0, &ErrInvalidHandle{Op: "DequeueByte"}
	}
	b, err := c.storage.DequeueByte(h.idx)
	if err != nil {
		c.callIllegal()
		return 0, err
	}
	return b, nil
}
