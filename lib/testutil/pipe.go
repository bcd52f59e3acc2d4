// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"testing"
)

// Pipe returns the read and write ends of a new pipe. Both ends are
// closed when the test completes; closing one earlier (to deliver EOF
// or EPIPE) is fine.
//
// Calling Fd on either end switches it to blocking mode, which is what
// zpv expects of its stdin and stdout.
func Pipe(t *testing.T) (reader, writer *os.File) {
	t.Helper()
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	t.Cleanup(func() {
		_ = reader.Close()
		_ = writer.Close()
	})
	return reader, writer
}
