// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for zpv packages.
//
// [Pipe] creates an os.Pipe whose ends are closed when the test
// completes. Readiness and CLI tests run over real pipes, the
// descriptors zpv sits between in production.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls. These are the only place
// in the test suite where real wall-clock timeouts are used; relay
// timing is driven by the fake clock.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no zpv-internal dependencies.
package testutil
