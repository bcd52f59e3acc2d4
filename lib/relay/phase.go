// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"fmt"

	"github.com/bureau-foundation/zpv/lib/readiness"
)

// Phase is the active data-movement direction.
type Phase int

const (
	// Reading waits for and reads the next chunk from the input.
	Reading Phase = iota
	// Writing waits for and writes the in-flight chunk to the output.
	Writing
)

func (p Phase) String() string {
	switch p {
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) direction() readiness.Direction {
	if p == Writing {
		return readiness.Write
	}
	return readiness.Read
}

// stream names the descriptor the phase operates on, as it appears in
// diagnostic messages.
func (p Phase) stream() string {
	if p == Writing {
		return "stdout"
	}
	return "stdin"
}

// blockedState describes the readiness the phase is waiting for.
func (p Phase) blockedState() string {
	if p == Writing {
		return "not writable"
	}
	return "not readable"
}
