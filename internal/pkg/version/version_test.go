package version

import (
	"runtime"
	"testing"
)

func TestGet_PrefersInjectedValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abcdef0", "2026-10-01"
	bi := Get()
	if bi.Version != "v1.2.3" || bi.Commit != "abcdef0" || bi.Date != "2026-10-01" {
		t.Fatalf("Get() = %+v", bi)
	}
	if bi.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", bi.GoVersion)
	}
	if got, want := bi.String(), "v1.2.3, commit abcdef0, built at 2026-10-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuildInfoString_SkipsUnknown(t *testing.T) {
	bi := BuildInfo{Version: "dev", Commit: "unknown", Date: "unknown"}
	if got := bi.String(); got != "dev" {
		t.Errorf("String() = %q, want %q", got, "dev")
	}
}
