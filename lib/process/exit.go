// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"syscall"
)

// maxExitCode is the largest status a parent can observe through
// wait(2); larger values are truncated modulo 256 and could alias 0.
const maxExitCode = 255

// Errno returns the OS error number wrapped by err, if any.
func Errno(err error) (int, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno), true
	}
	return 0, false
}

// ExitCode maps the error that ended a run to a process exit code. A
// nil error is success (0). The result is always in 0..255, and
// non-nil errors never map to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return clamp(coder.ExitCode())
	}
	if errno, ok := Errno(err); ok {
		return clamp(errno)
	}
	return 1
}

func clamp(code int) int {
	if code <= 0 || code > maxExitCode {
		return 1
	}
	return code
}
