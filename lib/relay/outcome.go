// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"github.com/bureau-foundation/zpv/lib/process"
	"github.com/bureau-foundation/zpv/lib/report"
)

// Outcome is why a relay stopped.
type Outcome struct {
	// Status is Success for end of input and interrupts, Error for
	// failures.
	Status report.Status

	// Message is the human-readable msg of the exit record.
	Message string

	// Err is the failure cause for Error outcomes. Its errno, if any,
	// becomes the exit record's errno field and the exit code.
	Err error
}

func success(message string) Outcome {
	return Outcome{Status: report.Success, Message: message}
}

func failure(err error) Outcome {
	return Outcome{Status: report.Error, Message: err.Error(), Err: err}
}

// ExitCode returns the process exit code for the outcome: 0 for
// success, the errno (or 1) for failures.
func (o Outcome) ExitCode() int {
	if o.Status == report.Success {
		return 0
	}
	if code := process.ExitCode(o.Err); code != 0 {
		return code
	}
	return 1
}

// Errno returns the OS error number carried by a failure.
func (o Outcome) Errno() (int, bool) {
	if o.Status == report.Success {
		return 0, false
	}
	return process.Errno(o.Err)
}
