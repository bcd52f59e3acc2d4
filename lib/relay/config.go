// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import "time"

const (
	// DefaultBufferSize is the chunk size: the largest single read.
	DefaultBufferSize = 64 * 1024

	// DefaultReadyTimeout bounds each readiness wait.
	DefaultReadyTimeout = time.Second

	// DefaultReportInterval is the minimum spacing of periodic stats
	// records while data is flowing.
	DefaultReportInterval = time.Second

	// DefaultStallInterval is the stall detector period.
	DefaultStallInterval = 2 * time.Second
)

// Config holds the relay's interval constants. Zero fields take the
// defaults.
type Config struct {
	// BufferSize is the capacity of the single in-flight chunk.
	BufferSize int

	// ReadyTimeout bounds each readiness wait. Each time it elapses
	// without readiness an info record names the blocked side, and the
	// wait is retried.
	ReadyTimeout time.Duration

	// ReportInterval gates periodic stats records during transfer.
	ReportInterval time.Duration

	// StallInterval is the period of the stall detector tick.
	StallInterval time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize:     DefaultBufferSize,
		ReadyTimeout:   DefaultReadyTimeout,
		ReportInterval: DefaultReportInterval,
		StallInterval:  DefaultStallInterval,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = defaults.BufferSize
	}
	if c.ReadyTimeout <= 0 {
		c.ReadyTimeout = defaults.ReadyTimeout
	}
	if c.ReportInterval <= 0 {
		c.ReportInterval = defaults.ReportInterval
	}
	if c.StallInterval <= 0 {
		c.StallInterval = defaults.StallInterval
	}
	return c
}
