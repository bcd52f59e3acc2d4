// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for the relay.
//
// Production code accepts a Clock instead of calling time.Now directly.
// [Monotonic] is the production source: it reads a monotonic clock that
// is immune to system clock adjustments and adds an offset, computed
// once at construction, so that the result approximates wall-clock time
// for the human-facing timestamps in diagnostic records. [Real] is the
// calendar-time fallback. In tests, [Fake] provides a clock that
// advances only when Advance is called.
//
// # Wiring Pattern
//
// Add a Clock field to structs that measure time:
//
//	type Relay struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	r := relay.New(reporter, clock.Monotonic(), relay.DefaultConfig())
//
// In tests, advance the fake clock from the collaborator that simulates
// blocking (for example a scripted readiness source), so elapsed times
// are exact:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	c.Advance(300 * time.Millisecond) // the "wait" took 300ms
package clock
