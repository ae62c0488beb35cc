// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queues is the public face of the byte-queue arena library: it
// wraps engine's slot-index machinery behind an opaque Handle and a
// Context that owns one caller-supplied buffer at a time.
//
// A package-level default Context backs the free-function facade
// (InitQueues, CreateQueue, ...) for the common single-arena case;
// (*Context) methods of the same names exist for running more than one
// arena in a process, e.g. in tests.
package queues
