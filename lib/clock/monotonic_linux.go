// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// Monotonic returns a Clock backed by CLOCK_MONOTONIC_COARSE. The
// coarse clock is read from the vDSO without a full syscall and has
// jiffy resolution (typically 1-4ms), which is ample for millisecond
// wait accounting. If the clock cannot be read, Monotonic falls back
// to Real.
func Monotonic() Clock {
	clock, err := newMonotonic(readCoarse, time.Now())
	if err != nil {
		return Real()
	}
	return clock
}

func readCoarse() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_COARSE, &ts); err != nil {
		return 0, err
	}
	return ts.Nano(), nil
}
