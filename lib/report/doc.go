// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package report emits the relay's diagnostic records: one JSON object
// per line on the diagnostic stream (stderr in production).
//
// Four record shapes exist:
//
//	{"zpv_version":"0.6.0"}
//	{"utc_time":"2026-01-01 00:00:01.250","stdin_wait_ms":12,"stdout_wait_ms":840,"total_time_ms":1250,"bytes_out":65536}
//	{"utc_time":"2026-01-01 00:00:02.000","msg":"stalled while writing: no bytes relayed in 2s"}
//	{"utc_time":"2026-01-01 00:00:03.100","exit_status":"Error","msg":"writing stdout: broken pipe","errno":32}
//
// Records are written through a [log/slog] JSON handler whose built-in
// time and level attributes are removed, so each line carries exactly
// the fields above. The timestamp is supplied by the caller (from the
// relay's injected clock) rather than taken from the record, which
// keeps output deterministic under a fake clock.
package report
