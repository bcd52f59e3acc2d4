// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Real returns a Clock backed by the standard time package. The times
// it returns carry Go's monotonic reading, so subtraction stays
// monotonic for the life of the process even though the displayed
// value follows the calendar clock.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
