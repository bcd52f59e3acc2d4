// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package readiness

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Open returns an EpollSource for in and out, or a PollSource if either
// descriptor cannot be registered with epoll (a regular file or
// /dev/null on either side of the relay).
func Open(in, out int) (Source, error) {
	source, err := NewEpollSource(in, out)
	if err == nil {
		return source, nil
	}
	if errors.Is(err, unix.EPERM) {
		return NewPollSource(in, out)
	}
	return nil, err
}
