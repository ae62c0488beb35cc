// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

// defaultContext backs the package-level free functions, mirroring the
// original C API's implicit single global arena while still letting
// tests run several arenas side by side via NewContext.
var defaultContext = NewContext()

// InitQueues adopts buf as the default Context's arena. See
// (*Context).InitQueues.
func InitQueues(buf []byte) (Metrics, error) { return defaultContext.InitQueues(buf) }

// CreateQueue allocates a new queue in the default Context.
func CreateQueue() (Handle, error) { return defaultContext.CreateQueue() }

// DestroyQueue releases h's slots in the default Context.
func DestroyQueue(h Handle) error { return defaultContext.DestroyQueue(h) }

// EnqueueByte appends b to h's queue in the default Context.
func EnqueueByte(h Handle, b byte) error { return defaultContext.EnqueueByte(h, b) }

// DequeueByte removes the front byte of h's queue in the default
// Context.
func DequeueByte(h Handle) (byte, error) { return defaultContext.DequeueByte(h) }

// DumpQueue renders h's live bytes via the default Context.
func DumpQueue(h Handle) (string, error) { return defaultContext.DumpQueue(h) }

// SetOutOfMemoryCallback registers fn on the default Context.
func SetOutOfMemoryCallback(fn OutOfMemoryFunc) { defaultContext.SetOutOfMemoryCallback(fn) }

// SetIllegalOperationCallback registers fn on the default Context.
func SetIllegalOperationCallback(fn IllegalOperationFunc) {
	defaultContext.SetIllegalOperationCallback(fn)
}
