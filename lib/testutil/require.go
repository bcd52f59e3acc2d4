// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"testing"
	"time"
)

// RequireReceive returns the next value from ch, failing the test if
// none arrives within timeout or ch is closed first. what names the
// awaited event in the failure message.
//
//	code := testutil.RequireReceive(t, exits, 5*time.Second, "waiting for exit code")
func RequireReceive[T any](t testing.TB, ch <-chan T, timeout time.Duration, what string, args ...any) T {
	t.Helper()
	timer := time.NewTimer(timeout) //nolint:realclock test hang prevention
	defer timer.Stop()
	select {
	case value, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before a value arrived: %s", describe(what, args))
		}
		return value
	case <-timer.C:
		t.Fatalf("no value after %v: %s", timeout, describe(what, args))
	}
	panic("unreachable")
}

// RequireClosed waits for ch to be closed (or to deliver a value)
// within timeout, or fails the test. Use it for done channels.
//
//	testutil.RequireClosed(t, done, 5*time.Second, "relay exit")
func RequireClosed(t testing.TB, ch <-chan struct{}, timeout time.Duration, what string, args ...any) {
	t.Helper()
	timer := time.NewTimer(timeout) //nolint:realclock test hang prevention
	defer timer.Stop()
	select {
	case <-ch:
	case <-timer.C:
		t.Fatalf("channel still open after %v: %s", timeout, describe(what, args))
	}
}

func describe(what string, args []any) string {
	if len(args) == 0 {
		return what
	}
	return fmt.Sprintf(what, args...)
}
