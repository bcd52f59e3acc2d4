// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package clock

// Monotonic returns Real on platforms without a coarse monotonic
// clock. Go's time.Time already carries a monotonic reading, so
// durations remain monotonic; only timestamp precision differs.
func Monotonic() Clock { return Real() }
