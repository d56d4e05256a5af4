// Package version reports what swatch binary is running.
//
// Release builds set Version, Commit and Date with -ldflags "-X". Builds
// made with plain "go build" or "go install" fall back to the module and VCS
// data the toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Build-time values. Set with, for example:
//
//	-ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=1.2.0"
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info describes one build of swatch.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the running binary's build information.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuild(bi)
}

// fromBuild fills fields left at their defaults from embedded build info.
// Values set through ldflags always win.
func fromBuild(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// ShortCommit is the first eight characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

// String renders the full version line shown by "swatch version".
func (i Info) String() string {
	if i.Commit == unknown {
		return fmt.Sprintf("swatch version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	}

	commit := i.ShortCommit()
	if i.Dirty {
		commit += "-dirty"
	}
	if i.Date == unknown {
		return fmt.Sprintf("swatch version %s (commit: %s, %s, %s)", i.Version, commit, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
		i.Version, commit, i.Date, i.GoVersion, i.Platform)
}

// String is Get().String().
func String() string {
	return Get().String()
}

// Short returns the bare version, as used by --version.
func Short() string {
	return Get().Version
}
