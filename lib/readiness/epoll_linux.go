// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package readiness

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// EpollSource is a Source backed by epoll(7). The wake descriptor stays
// registered for the life of the source. At most one watched
// descriptor is registered at a time: epoll always reports EPOLLHUP and
// EPOLLERR, even with an empty interest mask, so keeping the idle side
// registered would spin the loop once a peer goes away.
type EpollSource struct {
	interrupter

	epfd int
	in   int
	out  int

	// armedFD is the registered watched descriptor, or -1.
	armedFD     int
	armedEvents uint32

	events [4]unix.EpollEvent
}

var _ Source = (*EpollSource)(nil)

// NewEpollSource returns an EpollSource watching in for reads and out
// for writes. Both descriptors are probed at construction; epoll_ctl
// fails with EPERM for descriptors that do not support polling (regular
// files, some character devices), and that error is returned wrapped.
func NewEpollSource(in, out int) (*EpollSource, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}
	waker, err := newWaker()
	if err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("creating wake descriptor: %w", err)
	}
	source := &EpollSource{epfd: epfd, in: in, out: out, armedFD: -1}
	source.waker = waker

	wakeEvent := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(waker.readFD)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, waker.readFD, &wakeEvent); err != nil {
		source.Close()
		return nil, fmt.Errorf("registering wake descriptor: %w", err)
	}

	for _, probe := range []struct {
		fd     int
		events uint32
	}{{in, unix.EPOLLIN}, {out, unix.EPOLLOUT}} {
		if err := source.register(probe.fd, probe.events); err != nil {
			source.Close()
			return nil, fmt.Errorf("registering descriptor %d: %w", probe.fd, err)
		}
		if err := source.unregister(); err != nil {
			source.Close()
			return nil, fmt.Errorf("unregistering descriptor %d: %w", probe.fd, err)
		}
	}
	return source, nil
}

// Wait implements Source.
func (s *EpollSource) Wait(direction Direction, timeout time.Duration) (Event, error) {
	if s.isClosed() {
		return 0, ErrClosed
	}
	if s.interrupted() {
		return Interrupted, nil
	}

	fd, events := s.in, uint32(unix.EPOLLIN)
	if direction == Write {
		fd, events = s.out, unix.EPOLLOUT
	}
	if err := s.arm(fd, events); err != nil {
		return 0, fmt.Errorf("arming %s descriptor %d: %w", direction, fd, err)
	}

	count, err := unix.EpollWait(s.epfd, s.events[:], timeoutMillis(timeout))
	if err == unix.EINTR {
		return Timeout, nil
	}
	if err != nil {
		return 0, fmt.Errorf("epoll_wait: %w", err)
	}

	ready := false
	for _, event := range s.events[:count] {
		switch int(event.Fd) {
		case s.waker.readFD:
			s.waker.drain()
		case fd:
			if event.Events&(events|unix.EPOLLHUP|unix.EPOLLERR) != 0 {
				ready = true
			}
		}
	}
	if s.interrupted() {
		return Interrupted, nil
	}
	if ready {
		return Ready, nil
	}
	return Timeout, nil
}

// arm makes fd with events the only registered watched descriptor.
// Consecutive waits in the same direction cost no syscalls.
func (s *EpollSource) arm(fd int, events uint32) error {
	if s.armedFD == fd && s.armedEvents == events {
		return nil
	}
	if s.armedFD >= 0 {
		if err := s.unregister(); err != nil {
			return err
		}
	}
	return s.register(fd, events)
}

func (s *EpollSource) register(fd int, events uint32) error {
	event := unix.EpollEvent{Events: events, Fd: int32(fd)}
	if err := unix.EpollCtl(s.epfd, unix.EPOLL_CTL_ADD, fd, &event); err != nil {
		return err
	}
	s.armedFD, s.armedEvents = fd, events
	return nil
}

func (s *EpollSource) unregister() error {
	fd := s.armedFD
	s.armedFD, s.armedEvents = -1, 0
	return unix.EpollCtl(s.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

// Close implements Source.
func (s *EpollSource) Close() error {
	first, err := s.closeWaker()
	if !first {
		return nil
	}
	if closeErr := unix.Close(s.epfd); err == nil {
		err = closeErr
	}
	return err
}
