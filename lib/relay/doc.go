// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package relay implements the phase engine of zpv: a transparent byte
// relay that forwards everything from an input to an output while
// measuring how long it blocks waiting on each side.
//
// The engine alternates between two phases with exactly one chunk in
// flight:
//
//	Reading ──read n>0──▶ Writing ──chunk flushed──▶ Reading
//	   │                     │
//	   ├─ EOF ─▶ Success     └─ write error ─▶ Error
//	   └─ read error ─▶ Error
//
// Before every I/O call it blocks on a [readiness.Source] with a
// bounded timeout, charging the time spent to a [WaitAccumulator]
// split by direction. While it waits it keeps two timers serviced by
// comparing deadlines against the injected [clock.Clock]: the
// readiness notice (a stall record every Config.ReadyTimeout that the
// active side stays blocked) and the stall tick (every
// Config.StallInterval, a [StallDetector] check followed by a stats
// record). A stats record is also emitted at most once per
// Config.ReportInterval after a chunk is flushed.
//
// Every termination cause (end of input, I/O failure, interrupt,
// setup failure) goes through one finalize step that emits the final
// stats record and the exit record exactly once and returns an
// [Outcome]; the caller turns it into the process exit code.
//
// A Relay is single-threaded. The only cross-goroutine interaction is
// Source.Interrupt, which the source turns into an Interrupted event
// the loop observes at its next wait.
package relay
