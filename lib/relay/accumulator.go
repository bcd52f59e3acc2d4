// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"time"

	"github.com/bureau-foundation/zpv/lib/readiness"
)

// WaitAccumulator totals the time spent waiting for readiness, split by
// direction. Both totals only increase.
type WaitAccumulator struct {
	read  time.Duration
	write time.Duration
}

// Add charges elapsed to direction. Non-positive values are ignored.
func (a *WaitAccumulator) Add(direction readiness.Direction, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	if direction == readiness.Write {
		a.write += elapsed
		return
	}
	a.read += elapsed
}

// Read returns the cumulative time spent waiting for the input.
func (a *WaitAccumulator) Read() time.Duration { return a.read }

// Write returns the cumulative time spent waiting for the output.
func (a *WaitAccumulator) Write() time.Duration { return a.write }
