// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time source for testability. Production code
// injects Monotonic(); tests inject Fake() with deterministic time
// control.
//
// The relay is single-threaded and measures time by reading the clock
// around blocking waits, so the interface is deliberately just Now.
// Timers are expressed as deadlines compared against Now rather than
// as channels, because the relay loop never selects on channels.
type Clock interface {
	// Now returns the current time. Successive calls within one process
	// never go backward: durations computed by subtracting two results
	// are never negative.
	Now() time.Time
}
