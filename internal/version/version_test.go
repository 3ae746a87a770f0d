package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	req := require.New(t)

	info := Get()

	req.Equal("wachatview", info.Name)
	req.Equal(Version, info.Version)
	req.Equal(runtime.Version(), info.GoVersion)
}

func TestGet_GoVersionOverride(t *testing.T) {
	prev := GoVersion
	GoVersion = "go1.99.0"
	t.Cleanup(func() { GoVersion = prev })

	require.Equal(t, "go1.99.0", Get().GoVersion)
}

func TestBuildInfo_String(t *testing.T) {
	req := require.New(t)

	req.Equal("wachatview develop", BuildInfo{Name: "wachatview", Version: "develop"}.String())
	req.Equal("wachatview v1.2.0 (0123456)",
		BuildInfo{Name: "wachatview", Version: "v1.2.0", GitCommit: "0123456789abcdef"}.String())
}
