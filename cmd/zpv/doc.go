// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// zpv is a pipeline wait-time probe. Inserted between two processes,
//
//	producer | zpv | consumer
//
// it copies stdin to stdout unmodified and reports on stderr, as one
// JSON object per line, how long it spent blocked waiting for the
// producer (stdin_wait_ms) and for the consumer (stdout_wait_ms). A
// large stdin wait means the producer is the bottleneck; a large
// stdout wait means the consumer is.
//
// Several instances can be chained to bracket each stage of a longer
// pipeline. The -u flag takes an arbitrary tag so instances are
// distinguishable in a process listing; it has no other effect.
//
// Records:
//
//	{"zpv_version":"0.6.0"}
//	{"utc_time":"2026-01-01 00:00:00.000","stdin_wait_ms":0,"stdout_wait_ms":0,"total_time_ms":0,"bytes_out":0}
//	{"utc_time":"2026-01-01 00:00:04.000","msg":"stalled while writing: no bytes relayed in 2s"}
//	{"utc_time":"2026-01-01 00:00:05.000","exit_status":"Success","msg":"end of input"}
//
// Stats records are emitted at startup, at most once a second while
// data flows, every two seconds from the stall detector, and once at
// exit. SIGINT, SIGTERM and SIGHUP end the run with a Success exit
// record. A read or write failure ends it with an Error record carrying
// the errno, which is also the exit code.
package main
