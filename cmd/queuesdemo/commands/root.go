// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bufLen int

var rootCmd = &cobra.Command{
	Use:   "queuesdemo",
	Short: "Exercise the byte-queue arena library against a workload",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&bufLen, "buf-len", 2048, "backing arena length in bytes")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on a malformed config; the
		// fixed development config it builds can't produce one.
		panic(err)
	}
	return logger
}
