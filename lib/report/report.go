// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// TimeLayout formats the utc_time field: UTC, millisecond precision.
const TimeLayout = "2006-01-02 15:04:05.000"

// Status is the exit_status of an exit record.
type Status string

const (
	Success Status = "Success"
	Error   Status = "Error"
)

// Stats is a snapshot of the relay's cumulative counters.
type Stats struct {
	// At is when the snapshot was taken; rendered as utc_time.
	At time.Time

	// StdinWait is the cumulative time spent waiting for the input
	// descriptor to become readable.
	StdinWait time.Duration

	// StdoutWait is the cumulative time spent waiting for the output
	// descriptor to become writable.
	StdoutWait time.Duration

	// Total is the time elapsed since the relay started.
	Total time.Duration

	// BytesOut is the number of bytes successfully written.
	BytesOut int64
}

// Reporter writes diagnostic records. It is safe for concurrent use;
// each record reaches the underlying writer in a single Write call.
type Reporter struct {
	logger *slog.Logger
}

// New returns a Reporter writing JSON lines to w.
func New(w io.Writer) *Reporter {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: stripBuiltins,
	})
	return &Reporter{logger: slog.New(handler)}
}

// stripBuiltins removes the handler's time and level keys, and the
// message key when the record message is empty. Records that carry a
// message add it as an ordinary "msg" attribute instead, so the field
// lands after utc_time. Attributes inside groups are left alone.
func stripBuiltins(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey, slog.LevelKey:
		return slog.Attr{}
	case slog.MessageKey:
		if attr.Value.Kind() == slog.KindString && attr.Value.String() == "" {
			return slog.Attr{}
		}
	}
	return attr
}

// FormatTime renders t in the utc_time layout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Version emits the version identification record.
func (r *Reporter) Version(version string) {
	r.emit(slog.String("zpv_version", version))
}

// Stats emits a stats record. Durations are truncated to whole
// milliseconds.
func (r *Reporter) Stats(stats Stats) {
	r.emit(
		slog.String("utc_time", FormatTime(stats.At)),
		slog.Int64("stdin_wait_ms", stats.StdinWait.Milliseconds()),
		slog.Int64("stdout_wait_ms", stats.StdoutWait.Milliseconds()),
		slog.Int64("total_time_ms", stats.Total.Milliseconds()),
		slog.Int64("bytes_out", stats.BytesOut),
	)
}

// Info emits an informational record (stall warnings, readiness
// timeouts).
func (r *Reporter) Info(at time.Time, message string) {
	r.emit(
		slog.String("utc_time", FormatTime(at)),
		slog.String("msg", message),
	)
}

// Exit emits the exit record. errno is included only when hasErrno is
// true.
func (r *Reporter) Exit(at time.Time, status Status, message string, errno int, hasErrno bool) {
	attrs := []slog.Attr{
		slog.String("utc_time", FormatTime(at)),
		slog.String("exit_status", string(status)),
		slog.String("msg", message),
	}
	if hasErrno {
		attrs = append(attrs, slog.Int("errno", errno))
	}
	r.emit(attrs...)
}

func (r *Reporter) emit(attrs ...slog.Attr) {
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "", attrs...)
}
