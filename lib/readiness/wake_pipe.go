// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package readiness

import "golang.org/x/sys/unix"

// waker is a non-blocking self-pipe used to wake a blocked poll on
// platforms without eventfd.
type waker struct {
	readFD  int
	writeFD int
}

func newWaker() (*waker, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return nil, err
	}
	cleanup := func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	}
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	if err := unix.SetNonblock(fds[0], true); err != nil {
		cleanup()
		return nil, err
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		cleanup()
		return nil, err
	}
	return &waker{readFD: fds[0], writeFD: fds[1]}, nil
}

// wake writes one byte. EAGAIN (pipe full) means wakeups are already
// pending.
func (w *waker) wake() {
	_, _ = unix.Write(w.writeFD, []byte{1})
}

// drain empties the pipe so the read end stops polling readable.
func (w *waker) drain() {
	var buffer [64]byte
	for {
		n, err := unix.Read(w.readFD, buffer[:])
		if n <= 0 || err != nil {
			return
		}
	}
}

func (w *waker) close() error {
	errRead := unix.Close(w.readFD)
	errWrite := unix.Close(w.writeFD)
	if errRead != nil {
		return errRead
	}
	return errWrite
}
