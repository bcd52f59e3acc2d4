// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package readiness

func backends() map[string]constructor {
	return map[string]constructor{
		"poll": func(in, out int) (Source, error) { return NewPollSource(in, out) },
	}
}
