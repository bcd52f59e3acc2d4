// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package readiness

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrWouldBlock is returned by FD reads and writes when the
	// descriptor is non-blocking and not ready. Callers go back to
	// waiting.
	ErrWouldBlock = errors.New("readiness: operation would block")

	// ErrClosed is returned by Wait after Close.
	ErrClosed = errors.New("readiness: source closed")
)

// Direction selects which descriptor a Wait arms.
type Direction int

const (
	// Read waits for the input descriptor to become readable (or hung
	// up, so the next read observes end of stream).
	Read Direction = iota
	// Write waits for the output descriptor to become writable (or
	// errored, so the next write observes the failure).
	Write
)

func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Event is the outcome of a successful Wait.
type Event int

const (
	// Ready means the next I/O call in the requested direction will
	// not block (it may still fail or observe end of stream).
	Ready Event = iota + 1
	// Timeout means the timeout elapsed first.
	Timeout
	// Interrupted means Interrupt was called. It is sticky: every
	// later Wait returns Interrupted immediately.
	Interrupted
)

func (e Event) String() string {
	switch e {
	case Ready:
		return "ready"
	case Timeout:
		return "timeout"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Source reports descriptor readiness. Wait and Close must be called
// from a single goroutine; Interrupt and Reason may be called from any
// goroutine.
type Source interface {
	// Wait blocks until the descriptor for direction is ready, the
	// timeout elapses, or an interrupt is pending. A pending interrupt
	// takes priority over readiness. Returns an error only when the
	// underlying multiplexer fails or the source is closed.
	Wait(direction Direction, timeout time.Duration) (Event, error)

	// Interrupt requests that the current or next Wait return
	// Interrupted. The first reason is kept.
	Interrupt(reason string)

	// Reason returns the reason passed to the first Interrupt, or ""
	// if none is pending.
	Reason() string

	// Close releases the multiplexer and wake descriptors. It does not
	// close the watched descriptors.
	Close() error
}
