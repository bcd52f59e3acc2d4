// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package readiness

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// waker is an eventfd used to wake a blocked poll. The same descriptor
// is both the read and the write end.
type waker struct {
	readFD  int
	writeFD int
}

func newWaker() (*waker, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &waker{readFD: fd, writeFD: fd}, nil
}

// wake increments the eventfd counter. EAGAIN (counter saturated)
// means a wakeup is already pending, which is all we need.
func (w *waker) wake() {
	var buffer [8]byte
	binary.NativeEndian.PutUint64(buffer[:], 1)
	_, _ = unix.Write(w.writeFD, buffer[:])
}

// drain resets the eventfd counter so the descriptor stops polling
// readable.
func (w *waker) drain() {
	var buffer [8]byte
	_, _ = unix.Read(w.readFD, buffer[:])
}

func (w *waker) close() error {
	return unix.Close(w.readFD)
}
