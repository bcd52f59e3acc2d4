// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package readiness

import (
	"sync"
	"sync/atomic"
)

// interrupter holds the cross-goroutine part of a source: the pending
// flag, the first reason, and the wake descriptor. The mutex orders
// Interrupt against close so a late Interrupt never writes to a
// descriptor number that has been closed and possibly reused.
type interrupter struct {
	pending atomic.Bool

	mu     sync.Mutex
	reason string
	closed bool
	waker  *waker
}

func (i *interrupter) Interrupt(reason string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pending.Load() {
		return
	}
	i.reason = reason
	i.pending.Store(true)
	if !i.closed {
		i.waker.wake()
	}
}

func (i *interrupter) Reason() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.reason
}

func (i *interrupter) interrupted() bool {
	return i.pending.Load()
}

func (i *interrupter) isClosed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.closed
}

// closeWaker marks the interrupter closed and releases the wake
// descriptors. Returns false if it was already closed.
func (i *interrupter) closeWaker() (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return false, nil
	}
	i.closed = true
	return true, i.waker.close()
}
