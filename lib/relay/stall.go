// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import "time"

// StallDetector compares the byte counter across timer ticks.
type StallDetector struct {
	lastBytes  int64
	lastSample time.Time
}

// NewStallDetector returns a detector whose first sample is zero bytes
// at start.
func NewStallDetector(start time.Time) *StallDetector {
	return &StallDetector{lastSample: start}
}

// Check records a tick at now with the current byte counter. It
// reports a stall, and how long the counter has been unchanged, when
// the counter is nonzero and equal to the previous sample. The sample
// is updated either way.
func (d *StallDetector) Check(now time.Time, bytes int64) (time.Duration, bool) {
	stalled := bytes != 0 && bytes == d.lastBytes
	since := now.Sub(d.lastSample)
	d.lastBytes = bytes
	d.lastSample = now
	return since, stalled
}
