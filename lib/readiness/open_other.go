// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package readiness

// Open returns a PollSource for in and out.
func Open(in, out int) (Source, error) {
	return NewPollSource(in, out)
}
