// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package readiness

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// PollSource is a Source backed by poll(2). Each Wait polls the armed
// descriptor and the wake descriptor; nothing is registered between
// calls, so it handles any descriptor type.
type PollSource struct {
	interrupter

	in  int
	out int

	// fds is reused across Waits: [0] is the armed descriptor, [1] the
	// wake descriptor.
	fds [2]unix.PollFd
}

var _ Source = (*PollSource)(nil)

// NewPollSource returns a PollSource watching in for reads and out for
// writes.
func NewPollSource(in, out int) (*PollSource, error) {
	waker, err := newWaker()
	if err != nil {
		return nil, fmt.Errorf("creating wake descriptor: %w", err)
	}
	source := &PollSource{in: in, out: out}
	source.waker = waker
	return source, nil
}

// Wait implements Source.
func (s *PollSource) Wait(direction Direction, timeout time.Duration) (Event, error) {
	if s.isClosed() {
		return 0, ErrClosed
	}
	if s.interrupted() {
		return Interrupted, nil
	}

	fd, events := s.in, int16(unix.POLLIN)
	if direction == Write {
		fd, events = s.out, unix.POLLOUT
	}
	s.fds[0] = unix.PollFd{Fd: int32(fd), Events: events}
	s.fds[1] = unix.PollFd{Fd: int32(s.waker.readFD), Events: unix.POLLIN}

	count, err := unix.Poll(s.fds[:], timeoutMillis(timeout))
	if err == unix.EINTR {
		// The caller re-checks its deadlines and waits again.
		return Timeout, nil
	}
	if err != nil {
		return 0, fmt.Errorf("poll: %w", err)
	}

	if s.fds[1].Revents&unix.POLLIN != 0 {
		s.waker.drain()
	}
	if s.interrupted() {
		return Interrupted, nil
	}
	if count == 0 {
		return Timeout, nil
	}

	revents := s.fds[0].Revents
	if revents&unix.POLLNVAL != 0 {
		return 0, fmt.Errorf("poll %s descriptor %d: %w", direction, fd, unix.EBADF)
	}
	if revents&(events|unix.POLLHUP|unix.POLLERR) != 0 {
		return Ready, nil
	}
	return Timeout, nil
}

// Close implements Source.
func (s *PollSource) Close() error {
	_, err := s.closeWaker()
	return err
}
