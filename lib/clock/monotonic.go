// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// monotonicClock converts readings of a raw monotonic counter into
// wall-clock-approximate times. The offset between the counter and the
// calendar clock is captured once; later adjustments to the system
// clock do not affect the result.
type monotonicClock struct {
	read   func() (int64, error)
	offset int64
}

// newMonotonic samples read and the calendar clock once to compute
// the realtime offset. Returns an error if read fails.
func newMonotonic(read func() (int64, error), wall time.Time) (*monotonicClock, error) {
	nanos, err := read()
	if err != nil {
		return nil, err
	}
	return &monotonicClock{
		read:   read,
		offset: wall.UnixNano() - nanos,
	}, nil
}

// Now returns the monotonic reading plus the realtime offset. A read
// failure after construction is not expected from clock_gettime with a
// valid clock ID; if it happens the calendar clock is used for that
// reading.
func (c *monotonicClock) Now() time.Time {
	nanos, err := c.read()
	if err != nil {
		return time.Now()
	}
	return time.Unix(0, nanos+c.offset)
}
