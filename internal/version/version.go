// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/version/version.go
// Summary: Build version reported by `texelpad version`.

package version

import "runtime/debug"

// Set at build time with -ldflags "-X github.com/framegrace/texelpad/internal/version.Version=v1.2.3".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if Commit == "" && revision != "" {
		Commit = revision[:min(len(revision), 7)]
		if dirty {
			Commit += "-dirty"
		}
	}
}

// String formats the version for display.
func String() string {
	return Version + " (commit: " + Commit + ")"
}
