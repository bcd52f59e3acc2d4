// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers: turning the
// error that ended a run into the process exit code, and extracting the
// OS error number that diagnostic records carry alongside it.
//
// Errors that implement ExitCode() int choose their own exit code (the
// same interface the CLI's main function checks). Errors wrapping a
// [syscall.Errno] exit with the errno value so that a shell can tell an
// EPIPE (32) from an EIO (5). Anything else exits with 1.
package process
