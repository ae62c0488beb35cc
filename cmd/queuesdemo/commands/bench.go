// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomize/queues-task/queues"
)

var (
	benchQueues int
	benchOps    int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Microbenchmark enqueue/dequeue throughput against a fixed arena",
	Long: `bench creates --queues queues against a --buf-len arena, then runs
--ops rounds of (enqueue, dequeue) against a round-robin queue selection,
reporting elapsed time and ops/sec. It is a standalone counterpart of the
package-level Benchmark functions in queues/bench_test.go, for eyeballing
throughput without a Go toolchain benchmark run.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchQueues, "queues", 16, "number of queues to round-robin over")
	benchCmd.Flags().IntVar(&benchOps, "ops", 1_000_000, "number of enqueue/dequeue rounds to run")
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	if benchQueues <= 0 {
		return fmt.Errorf("bench: --queues must be positive, got %d", benchQueues)
	}
	if benchOps <= 0 {
		return fmt.Errorf("bench: --ops must be positive, got %d", benchOps)
	}

	ctx := queues.NewContext()
	ctx.SetOutOfMemoryCallback(func() {
		logger.Fatal("out of memory during setup", zap.Int("buf-len", bufLen))
	})

	if _, err := ctx.InitQueues(make([]byte, bufLen)); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	handles := make([]queues.Handle, benchQueues)
	for i := range handles {
		h, err := ctx.CreateQueue()
		if err != nil {
			return fmt.Errorf("bench: creating queue %d: %w", i, err)
		}
		handles[i] = h
	}

	start := time.Now()
	for i := 0; i < benchOps; i++ {
		h := handles[i%len(handles)]
		if err := ctx.EnqueueByte(h, byte(i)); err != nil {
			return fmt.Errorf("bench: enqueue at op %d: %w", i, err)
		}
		if _, err := ctx.DequeueByte(h); err != nil {
			return fmt.Errorf("bench: dequeue at op %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	opsPerSec := float64(benchOps) / elapsed.Seconds()
	logger.Info("bench complete",
		zap.Int("queues", benchQueues),
		zap.Int("ops", benchOps),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ops-per-sec", opsPerSec))

	return nil
}
