package version

import "runtime"

// Set at build time via -ldflags "-X .../internal/version.Version=v1.2.3".
// GoVersion overrides the toolchain reported by Get; empty means the one
// the binary was built with.
var (
	Version   = "develop"
	GitCommit = ""
	BuildDate = ""
	GoVersion = ""
)

type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

func Get() BuildInfo {
	v := BuildInfo{
		Name:      "wachatview",
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
	if v.GoVersion == "" {
		v.GoVersion = runtime.Version()
	}
	return v
}

// String renders "wachatview develop" or "wachatview v1.2.3 (abc1234)".
func (b BuildInfo) String() string {
	s := b.Name + " " + b.Version
	if b.GitCommit != "" {
		commit := b.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		s += " (" + commit + ")"
	}
	return s
}
