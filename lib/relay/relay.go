// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bureau-foundation/zpv/lib/clock"
	"github.com/bureau-foundation/zpv/lib/readiness"
	"github.com/bureau-foundation/zpv/lib/report"
	"github.com/bureau-foundation/zpv/lib/version"
)

// errNoProgress is the failure for a write that accepted zero bytes
// without reporting an error.
var errNoProgress = errors.New("write to stdout made no progress")

// Relay owns all mutable relay state: phase, buffer, counters,
// accumulators and timers. Create one with New and call Run once.
type Relay struct {
	reporter *report.Reporter
	clock    clock.Clock
	config   Config

	in     io.Reader
	out    io.Writer
	source readiness.Source

	phase  Phase
	buffer []byte
	// size is the length of the in-flight chunk (0 when empty);
	// written is how much of it has been flushed.
	size    int
	written int
	// pendingErr is a read error returned alongside data, surfaced
	// once that data has been flushed.
	pendingErr error

	bytesOut int64
	waits    WaitAccumulator
	stall    *StallDetector

	started    time.Time
	lastReport time.Time
	nextTick   time.Time

	announced bool
	finalized bool
}

// New returns a Relay that reports through reporter and measures time
// with clock.
func New(reporter *report.Reporter, clock clock.Clock, config Config) *Relay {
	config = config.withDefaults()
	return &Relay{
		reporter: reporter,
		clock:    clock,
		config:   config,
		buffer:   make([]byte, config.BufferSize),
	}
}

// Run relays from in to out until end of input, an I/O failure, or an
// interrupt delivered through source, then finalizes. in and out are
// only touched after source reports them ready. out may accept fewer
// bytes than offered without an error (write(2) semantics); the rest
// is retried.
func (r *Relay) Run(in io.Reader, out io.Writer, source readiness.Source) Outcome {
	r.in, r.out, r.source = in, out, source
	r.announce()

	for {
		r.tickIfDue(r.clock.Now())

		var outcome *Outcome
		switch r.phase {
		case Reading:
			outcome = r.read()
		case Writing:
			outcome = r.write()
		}
		if outcome != nil {
			return r.finalize(*outcome)
		}
	}
}

// Abort finalizes with err without relaying anything. Use it when
// setup fails after New (for example, the readiness source cannot be
// created). The version and startup records are emitted first if Run
// has not already emitted them.
func (r *Relay) Abort(err error) Outcome {
	r.announce()
	return r.finalize(failure(err))
}

// announce emits the version and startup stats records and starts
// the timers.
func (r *Relay) announce() {
	if r.announced {
		return
	}
	r.announced = true
	r.started = r.clock.Now()
	r.lastReport = r.started
	r.nextTick = r.started.Add(r.config.StallInterval)
	r.stall = NewStallDetector(r.started)

	r.reporter.Version(version.Short())
	r.reportStats(r.started)
}

// read performs one Reading step. Returns a terminal outcome or nil.
func (r *Relay) read() *Outcome {
	if r.pendingErr != nil {
		return r.readFailed(r.pendingErr)
	}
	if outcome := r.await(); outcome != nil {
		return outcome
	}

	n, err := r.in.Read(r.buffer)
	if n > 0 {
		r.size, r.written = n, 0
		r.phase = Writing
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, readiness.ErrWouldBlock) {
			r.pendingErr = err
		}
		return nil
	}
	switch {
	case err == nil, errors.Is(err, io.EOF):
		outcome := success("end of input")
		return &outcome
	case errors.Is(err, readiness.ErrWouldBlock):
		return nil
	default:
		return r.readFailed(err)
	}
}

func (r *Relay) readFailed(err error) *Outcome {
	outcome := failure(fmt.Errorf("reading stdin: %w", err))
	return &outcome
}

// write performs one Writing step. A short write leaves the phase at
// Writing so the remainder goes out after the next readiness wait.
func (r *Relay) write() *Outcome {
	if outcome := r.await(); outcome != nil {
		return outcome
	}

	n, err := r.out.Write(r.buffer[r.written:r.size])
	if n > 0 {
		r.written += n
		r.bytesOut += int64(n)
	}
	switch {
	case errors.Is(err, readiness.ErrWouldBlock):
	case err != nil:
		outcome := failure(fmt.Errorf("writing stdout: %w", err))
		return &outcome
	case n <= 0:
		outcome := failure(errNoProgress)
		return &outcome
	}

	if r.written == r.size {
		r.size, r.written = 0, 0
		r.phase = Reading
		r.reportIfDue(r.clock.Now())
	}
	return nil
}

// await blocks until the active phase's descriptor is ready. The
// whole time from the first attempt until readiness, including timed
// out attempts, is charged to the phase's direction. Returns a terminal
// outcome on interrupt or source failure.
func (r *Relay) await() *Outcome {
	direction := r.phase.direction()
	waitStart := r.clock.Now()
	nextNotice := waitStart.Add(r.config.ReadyTimeout)

	for {
		now := r.clock.Now()
		timeout := nextNotice.Sub(now)
		if untilTick := r.nextTick.Sub(now); untilTick < timeout {
			timeout = untilTick
		}

		event, err := r.source.Wait(direction, timeout)
		now = r.clock.Now()
		if err != nil {
			r.waits.Add(direction, now.Sub(waitStart))
			outcome := failure(fmt.Errorf("waiting for %s: %w", r.phase.stream(), err))
			return &outcome
		}

		switch event {
		case readiness.Ready:
			r.waits.Add(direction, now.Sub(waitStart))
			return nil
		case readiness.Interrupted:
			r.waits.Add(direction, now.Sub(waitStart))
			outcome := success(interruptMessage(r.source.Reason()))
			return &outcome
		}

		if !now.Before(nextNotice) {
			r.reporter.Info(now, fmt.Sprintf("stalled while %s: %s %s for %s",
				r.phase, r.phase.stream(), r.phase.blockedState(), now.Sub(waitStart).Round(time.Millisecond)))
			nextNotice = now.Add(r.config.ReadyTimeout)
		}
		r.tickIfDue(now)
	}
}

func interruptMessage(reason string) string {
	if reason == "" {
		return "interrupted"
	}
	return "interrupted: " + reason
}

// tickIfDue runs the stall detector tick when its deadline has passed.
// Ticks missed while a single I/O call blocked are coalesced.
func (r *Relay) tickIfDue(now time.Time) {
	if now.Before(r.nextTick) {
		return
	}
	for !now.Before(r.nextTick) {
		r.nextTick = r.nextTick.Add(r.config.StallInterval)
	}

	if since, stalled := r.stall.Check(now, r.bytesOut); stalled {
		r.reporter.Info(now, fmt.Sprintf("stalled while %s: no bytes relayed in %s",
			r.phase, since.Round(time.Millisecond)))
	}
	r.reportStats(now)
}

// reportIfDue emits a periodic stats record if ReportInterval has
// passed since the last one. Best effort: it is only consulted after a
// chunk is flushed.
func (r *Relay) reportIfDue(now time.Time) {
	if now.Sub(r.lastReport) < r.config.ReportInterval {
		return
	}
	r.lastReport = now
	r.reportStats(now)
}

func (r *Relay) reportStats(now time.Time) {
	r.reporter.Stats(r.snapshot(now))
}

func (r *Relay) snapshot(now time.Time) report.Stats {
	return report.Stats{
		At:         now,
		StdinWait:  r.waits.Read(),
		StdoutWait: r.waits.Write(),
		Total:      now.Sub(r.started),
		BytesOut:   r.bytesOut,
	}
}

// finalize is the single shutdown funnel: final stats record, then
// exit record. It runs at most once; later calls return outcome
// without emitting anything.
func (r *Relay) finalize(outcome Outcome) Outcome {
	if r.finalized {
		return outcome
	}
	r.finalized = true

	now := r.clock.Now()
	r.reportStats(now)
	errno, hasErrno := outcome.Errno()
	r.reporter.Exit(now, outcome.Status, outcome.Message, errno, hasErrno)
	return outcome
}

// BytesOut returns the number of bytes written so far.
func (r *Relay) BytesOut() int64 { return r.bytesOut }

// Phase returns the active phase.
func (r *Relay) Phase() Phase { return r.phase }
