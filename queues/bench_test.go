// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

import "testing"

func benchmarkEnqueueDequeue(b *testing.B, bufLen int) {
	c := NewContext()
	if _, err := c.InitQueues(make([]byte, bufLen)); err != nil {
		b.Fatal(err)
	}
	h, err := c.CreateQueue()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.EnqueueByte(h, byte(i)); err != nil {
			b.Fatal(err)
		}
		if _, err := c.DequeueByte(h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnqueueDequeue256(b *testing.B) {
	benchmarkEnqueueDequeue(b, 256)
}

func BenchmarkEnqueueDequeue2048(b *testing.B) {
	benchmarkEnqueueDequeue(b, 2048)
}

func benchmarkManyQueues(b *testing.B, n int) {
	c := NewContext()
	if _, err := c.InitQueues(make([]byte, 2048)); err != nil {
		b.Fatal(err)
	}
	handles := make([]Handle, n)
	for i := range handles {
		h, err := c.CreateQueue()
		if err != nil {
			b.Fatal(err)
		}
		handles[i] = h
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := handles[i%n]
		if err := c.EnqueueByte(h, byte(i)); err != nil {
			b.Fatal(err)
		}
		if _, err := c.DequeueByte(h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManyQueues16(b *testing.B) {
	benchmarkManyQueues(b, 16)
}

func BenchmarkManyQueues64(b *testing.B) {
	benchmarkManyQueues(b, 64)
}
