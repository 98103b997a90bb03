// Package version reports what build of the service is running
package version

import (
	"runtime"
	"runtime/debug"
)

// Service is the name the api process reports
const Service = "chargemap-api"

// set with -ldflags, e.g.
//
//	-X chargemap/internal/core/version.version=v0.1.0
//	-X chargemap/internal/core/version.commit=3f1c2f3
//	-X chargemap/internal/core/version.date=2026-10-01
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// BuildInfo is served on /version and tagged onto clickhouse connections
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the linked values; commit falls back to the vcs stamp go build embeds
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  Commit(),
		Date:    date,
		Go:      runtime.Version(),
	}
}

// Commit is the short revision, "unknown" when neither ldflags nor vcs stamps carry one
func Commit() string {
	c := commit
	if c == "" {
		if bi, ok := readBuildInfo(); ok && bi != nil {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	switch {
	case c == "":
		return "unknown"
	case len(c) > 7:
		return c[:7]
	}
	return c
}
