// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

import (
	"fmt"
	"strings"
)

// DumpQueue renders the live bytes of the queue named by h, oldest
// first, e.g. "[1 9 2 5 1]". It is a read-only diagnostic - the original
// implementation's non-mandatory printQueue (original_source/queue.h) -
// and must never be required for correctness or sit on a hot path.
func (c *Context) DumpQueue(h Handle) (string, error) {
	if !c.valid(h) {
		c.callIllegal()
		return "", &ErrInvalidHandle{Op: "DumpQueue"}
	}

	var drained []byte
	for {
		b, err := c.storage.DequeueByte(h.idx)
		if err != nil {
			break
		}
		drained = append(drained, b)
	}
	for _, b := range drained {
		if err := c.storage.EnqueueByte(h.idx, b); err != nil {
			// The arena had room for these bytes a moment ago; this
			// would only happen if another queue raced us, which
			// spec.md's Non-goals rule out.
			c.callOOM()
			return "", err
		}
	}

	parts := make([]string, len(drained))
	for i, b := range drained {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return "[" + strings.Join(parts, " ") + "]", nil
}
