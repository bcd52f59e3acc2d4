// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import "fmt"

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// Version is the semantic version reported in the zpv_version
	// diagnostic record. Set manually for releases.
	Version = "0.6.0"
)

// Info returns a formatted version string for the usage text.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s)", Version, GitCommit, dirty)
}

// Short returns just the version number.
func Short() string {
	return Version
}
