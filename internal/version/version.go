// Package version reports the xcp build version.
//
// Release builds set the variables through -ldflags:
//
//	-X github.com/cumulus13/xcp-go/internal/version.Version=v1.0.0
//	-X github.com/cumulus13/xcp-go/internal/version.Commit=abc1234
//	-X github.com/cumulus13/xcp-go/internal/version.Date=2024-01-01T00:00:00Z
//
// Otherwise the module version and VCS settings from debug.ReadBuildInfo are
// used.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func buildSetting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return ""
}

// GetVersion returns the version string, preferring the compile-time value.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the git commit hash, or "unknown".
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		return rev
	}
	return "unknown"
}

// GetBuildDate returns the build date, or "unknown".
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// GetFullVersion returns the version with the short commit and build date
// when they are known.
func GetFullVersion() string {
	version, commit, date := GetVersion(), GetCommit(), GetBuildDate()
	if commit == "unknown" || len(commit) <= 7 {
		return version
	}
	if date == "unknown" {
		return fmt.Sprintf("%s (%s)", version, commit[:7])
	}
	return fmt.Sprintf("%s (%s, built %s)", version, commit[:7], date)
}
