// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

import (
	"github.com/cznic/mathutil"

	"github.com/randomize/queues-task/engine"
)

// Metrics reports the capacity figures a client can use to parameterize
// stress tests, mirroring the original implementation's queueMetrics_t
// (original_source/queue.h) rather than the single hardcoded constant
// spec.md's prose narrates. Every field is derived from N = len(buf)/8
// at InitQueues time, so it's correct for any buffer length, not just
// the nominal 2048 bytes.
type Metrics struct {
	// Name identifies the allocator strategy, for parity with the
	// original struct's descriptive Name field; fixed for this package.
	Name string

	// MaxEmptyQueues is the largest number of simultaneously open queues
	// that carry no payload - every nonReserved slot holds one.
	MaxEmptyQueues int

	// MaxNonEmptyQueues is the largest number of simultaneously open
	// queues that each carry at least one byte. A queue needs only its
	// root slot to hold its first 5 bytes, so this equals
	// MaxEmptyQueues.
	MaxNonEmptyQueues int

	// MaxBytesSingleQueueFull is the total bytes a single queue can
	// hold when every other slot in the buffer is dedicated to it.
	MaxBytesSingleQueueFull int

	// MaxBytesEven16 is the total bytes held across 16 queues loaded as
	// evenly as possible.
	MaxBytesEven16 int

	// MaxBytesEven64 is the total bytes held across 64 queues loaded as
	// evenly as possible - the published "64 queues equally loaded"
	// capacity (spec.md §4.5). The capacity floor is MaxBytesWorst64.
	MaxBytesEven64 int

	// MaxBytesEvenMaxQueues is MaxBytesEven evaluated at k =
	// nonReserved/2, the largest k for which every queue can still own
	// a root and a tail slot; at that k at most one interior slot is
	// left to share, and for any larger k evenLoaded reports 0.
	MaxBytesEvenMaxQueues int

	// MaxBytesWorst64 is the published worst-case floor: 64 queues
	// open, 63 of them empty, one carrying everything else (spec.md
	// §4.5, §8 P3).
	MaxBytesWorst64 int
}

// computeMetrics derives the published capacity figures from the total
// slot count n (including the reserved slot 0).
func computeMetrics(n int) Metrics {
	nonReserved := n - 1

	m := Metrics{
		Name:                    "byteq-arena",
		MaxEmptyQueues:          nonReserved,
		MaxNonEmptyQueues:       nonReserved,
		MaxBytesSingleQueueFull: singleQueueFull(nonReserved),
		MaxBytesEven16:          evenLoaded(nonReserved, 16),
		MaxBytesEven64:          evenLoaded(nonReserved, 64),
		MaxBytesEvenMaxQueues:   evenLoaded(nonReserved, nonReserved/2),
		MaxBytesWorst64:         worstCase(nonReserved, 64),
	}
	return m
}

// singleQueueFull returns 5 + 7*(chainSlots-1) + 8 where chainSlots is
// every non-root slot available to the one open queue.
func singleQueueFull(nonReserved int) int {
	chainSlots := mathutil.Max(nonReserved-1, 0) // one slot is the queue's own root
	if chainSlots < 1 {
		return 0
	}
	return engine.RootPayload + engine.NodePayload*(chainSlots-1) + engine.TailPayload
}

// evenLoaded returns (nonReserved-2k)*NodePayload + k*TailPayload +
// k*RootPayload, the total bytes k equally loaded queues can hold
// (spec.md §4.5).
func evenLoaded(nonReserved, k int) int {
	if k <= 0 || nonReserved < 2*k {
		return 0
	}
	return (nonReserved-2*k)*engine.NodePayload + k*engine.TailPayload + k*engine.RootPayload
}

// worstCase returns (nonReserved-k-1)*NodePayload + TailPayload +
// RootPayload, k-1 queues empty and one queue consuming every remaining
// slot (spec.md §4.5).
func worstCase(nonReserved, k int) int {
	if nonReserved < k+1 {
		return 0
	}
	return (nonReserved-k-1)*engine.NodePayload + engine.TailPayload + engine.RootPayload
}
