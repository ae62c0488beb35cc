// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queues

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1: Interleave.
func TestScenarioInterleave(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 256))
	require.NoError(t, err)

	a, err := c.CreateQueue()
	require.NoError(t, err)
	b, err := c.CreateQueue()
	require.NoError(t, err)

	require.NoError(t, c.EnqueueByte(a, 0))
	require.NoError(t, c.EnqueueByte(a, 1))
	require.NoError(t, c.EnqueueByte(b, 3))
	require.NoError(t, c.EnqueueByte(a, 2))
	require.NoError(t, c.EnqueueByte(b, 4))

	for _, want := range []byte{0, 1} {
		got, err := c.DequeueByte(a)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.NoError(t, c.EnqueueByte(a, 5))
	require.NoError(t, c.EnqueueByte(b, 6))

	for _, want := range []byte{2, 5} {
		got, err := c.DequeueByte(a)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.NoError(t, c.DestroyQueue(a))

	for _, want := range []byte{3, 4, 6} {
		got, err := c.DequeueByte(b)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// Scenario 2: Single saturation.
func TestScenarioSingleSaturation(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 2048))
	require.NoError(t, err)

	first, err := c.CreateQueue()
	require.NoError(t, err)
	for i := 0; i < 1021; i++ {
		require.NoError(t, c.EnqueueByte(first, 42))
	}
	for i := 0; i < 4; i++ {
		got, err := c.DequeueByte(first)
		require.NoError(t, err)
		require.Equal(t, byte(42), got)
	}

	second, err := c.CreateQueue()
	require.NoError(t, err)
	require.NoError(t, c.EnqueueByte(second, 42))
	require.NoError(t, c.EnqueueByte(second, 255))
	require.NoError(t, c.EnqueueByte(second, 0))

	require.NoError(t, c.DestroyQueue(first))

	for _, want := range []byte{42, 255, 0} {
		got, err := c.DequeueByte(second)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// Scenario 3: Wrap around 256.
func TestScenarioWrapAround256(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 2048))
	require.NoError(t, err)
	h, err := c.CreateQueue()
	require.NoError(t, err)

	for i := 0; i < 256; i++ {
		require.NoError(t, c.EnqueueByte(h, byte(i)))
	}
	for i := 0; i < 256; i++ {
		got, err := c.DequeueByte(h)
		require.NoError(t, err)
		require.Equal(t, byte(i), got)
	}
}

// Scenario 4: Max-count empties.
func TestScenarioMaxCountEmpties(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 2048))
	require.NoError(t, err)

	handles := make([]Handle, 0, 255)
	for i := 0; i < 255; i++ {
		h, err := c.CreateQueue()
		require.NoErrorf(t, err, "queue %d", i)
		handles = append(handles, h)
	}
	_, err = c.CreateQueue()
	require.Error(t, err)

	for _, h := range handles {
		require.NoError(t, c.DestroyQueue(h))
	}
}

// Scenario 5: Destroy mid-chain.
func TestScenarioDestroyMidChain(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 2048))
	require.NoError(t, err)

	for iter := 0; iter < 200; iter++ {
		h, err := c.CreateQueue()
		require.NoErrorf(t, err, "iteration %d create", iter)
		for i := 0; i < 14; i++ {
			require.NoErrorf(t, c.EnqueueByte(h, byte(i)), "iteration %d enqueue %d", iter, i)
		}
		require.NoError(t, c.DestroyQueue(h))
	}

	h, err := c.CreateQueue()
	require.NoError(t, err)
	for i := 0; i < 1021; i++ {
		require.NoErrorf(t, c.EnqueueByte(h, 7), "fill byte %d", i)
	}
}

// Scenario 6: Randomised shuffle across 16 intermediate queues,
// preserving multiset identity between input and output.
func TestScenarioRandomisedShuffle(t *testing.T) {
	c := NewContext()
	_, err := c.InitQueues(make([]byte, 2048))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	ground := make([]byte, 512)
	rng.Read(ground)

	input, err := c.CreateQueue()
	require.NoError(t, err)
	for _, b := range ground {
		require.NoError(t, c.EnqueueByte(input, b))
	}

	const lanes = 16
	intermediates := make([]Handle, lanes)
	for i := range intermediates {
		h, err := c.CreateQueue()
		require.NoError(t, err)
		intermediates[i] = h
	}
	output, err := c.CreateQueue()
	require.NoError(t, err)

	// Every byte starts in input and must eventually land in output.
	// At each step, pick a random nonempty source among input and the
	// intermediate lanes, and move its front byte either to output or to
	// a random intermediate lane.
	sources := append([]Handle{input}, intermediates...)
	nonEmpty := func() []Handle {
		var live []Handle
		for _, h := range sources {
			b, err := c.DequeueByte(h)
			if err == nil {
				require.NoError(t, c.EnqueueByte(h, b)) // peek, put back
				live = append(live, h)
			}
		}
		return live
	}

	for {
		live := nonEmpty()
		if len(live) == 0 {
			break
		}
		from := live[rng.Intn(len(live))]
		b, err := c.DequeueByte(from)
		require.NoError(t, err)

		// Send roughly a third of moves straight to output so the
		// process terminates; the rest keep shuffling.
		if rng.Intn(3) == 0 {
			require.NoError(t, c.EnqueueByte(output, b))
		} else {
			require.NoError(t, c.EnqueueByte(intermediates[rng.Intn(lanes)], b))
		}
	}

	for _, h := range intermediates {
		for {
			b, err := c.DequeueByte(h)
			if err != nil {
				break
			}
			require.NoError(t, c.EnqueueByte(output, b))
		}
	}

	var extracted []byte
	for {
		b, err := c.DequeueByte(output)
		if err != nil {
			break
		}
		extracted = append(extracted, b)
	}
	require.ElementsMatch(t, ground, extracted)
}
