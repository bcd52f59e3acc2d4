// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package readiness

import (
	"io"

	"golang.org/x/sys/unix"
)

// FD is a raw file descriptor read and written with read(2) and
// write(2), bypassing os.File and the Go runtime poller so that
// readiness is observed only through a Source.
//
// Write follows write(2), not io.Writer: it may report a short count
// with a nil error. Errors are returned as the raw syscall.Errno.
type FD int

// Read reads into p. A zero-length read from a non-empty p is
// io.EOF.
func (fd FD) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(int(fd), p)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			return 0, ErrWouldBlock
		case err != nil:
			return 0, err
		case n == 0 && len(p) > 0:
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write writes p, returning however many bytes the kernel accepted.
func (fd FD) Write(p []byte) (int, error) {
	for {
		n, err := unix.Write(int(fd), p)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			return 0, ErrWouldBlock
		case err != nil:
			return 0, err
		}
		return n, nil
	}
}
