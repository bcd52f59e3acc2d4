// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"sync"
	"time"

	"github.com/bureau-foundation/zpv/lib/clock"
	"github.com/bureau-foundation/zpv/lib/readiness"
)

// scriptedSource is a readiness.Source that simulates blocking by
// advancing a fake clock. delay returns how long the next wait in a
// direction takes to become ready; it is consulted once per logical
// wait (the timed-out attempts of one wait share the remaining delay).
type scriptedSource struct {
	clock *clock.FakeClock
	delay func(direction readiness.Direction) time.Duration

	// waitErr, if set, is returned by every Wait.
	waitErr error

	remaining map[readiness.Direction]time.Duration
	calls     []waitCall

	mu     sync.Mutex
	reason string
	closed bool
}

type waitCall struct {
	direction readiness.Direction
	timeout   time.Duration
	event     readiness.Event
}

func newScriptedSource(fake *clock.FakeClock, delay func(readiness.Direction) time.Duration) *scriptedSource {
	if delay == nil {
		delay = func(readiness.Direction) time.Duration { return 0 }
	}
	return &scriptedSource{
		clock:     fake,
		delay:     delay,
		remaining: make(map[readiness.Direction]time.Duration),
	}
}

func (s *scriptedSource) Wait(direction readiness.Direction, timeout time.Duration) (readiness.Event, error) {
	event, err := s.wait(direction, timeout)
	s.calls = append(s.calls, waitCall{direction: direction, timeout: timeout, event: event})
	return event, err
}

func (s *scriptedSource) wait(direction readiness.Direction, timeout time.Duration) (readiness.Event, error) {
	if s.waitErr != nil {
		return 0, s.waitErr
	}
	if s.Reason() != "" {
		return readiness.Interrupted, nil
	}

	remaining, waiting := s.remaining[direction]
	if !waiting {
		remaining = s.delay(direction)
	}
	if remaining <= timeout {
		s.clock.Advance(remaining)
		delete(s.remaining, direction)
		return readiness.Ready, nil
	}
	if timeout > 0 {
		s.clock.Advance(timeout)
		remaining -= timeout
	}
	s.remaining[direction] = remaining
	return readiness.Timeout, nil
}

func (s *scriptedSource) Interrupt(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reason == "" {
		s.reason = reason
	}
}

func (s *scriptedSource) Reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

// fixedDelays returns a delay function with constant per-direction
// delays.
func fixedDelays(read, write time.Duration) func(readiness.Direction) time.Duration {
	return func(direction readiness.Direction) time.Duration {
		if direction == readiness.Write {
			return write
		}
		return read
	}
}
