// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package readiness

import (
	"math"
	"time"
)

// timeoutMillis converts a timeout to the millisecond argument of
// poll(2) and epoll_wait(2). Sub-millisecond remainders round up so a
// short positive timeout never degenerates into a busy loop of
// zero-length polls. Non-positive timeouts poll without blocking.
func timeoutMillis(timeout time.Duration) int {
	if timeout <= 0 {
		return 0
	}
	millis := (timeout + time.Millisecond - 1) / time.Millisecond
	if millis > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(millis)
}
