package version

import (
	"runtime/debug"
	"testing"

	"chargemap/internal/platform/testkit"
)

func TestCommit(t *testing.T) {
	testkit.Serial(t)

	testkit.Swap(t, &commit, "")
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "3f1c2f3e8a554f39"}}}, true
	})
	if c := Commit(); c != "3f1c2f3" {
		t.Fatalf("vcs commit = %q", c)
	}

	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })
	if c := Commit(); c != "unknown" {
		t.Fatalf("no stamp = %q", c)
	}

	testkit.Swap(t, &commit, "abcd")
	if c := Commit(); c != "abcd" {
		t.Fatalf("ldflags commit = %q", c)
	}
}

func TestInfo(t *testing.T) {
	testkit.Serial(t)

	testkit.Swap(t, &version, "v0.1.0")
	bi := Info()
	if bi.Service != "chargemap-api" || bi.Version != "v0.1.0" || bi.Go == "" {
		t.Fatalf("Info = %+v", bi)
	}
}
