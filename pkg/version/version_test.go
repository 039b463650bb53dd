package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	tests := []struct {
		name     string
		version  string
		commit   string
		info     *debug.BuildInfo
		expected Build
	}{
		{
			name:     "no build info",
			info:     nil,
			expected: Build{Version: "dev", Commit: "unknown", Date: "unknown"},
		},
		{
			name:     "devel module",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: Build{Version: "dev", Commit: "unknown", Date: "unknown"},
		},
		{
			name:     "vcs stamps",
			info:     stamped,
			expected: Build{Version: "v1.2.0", Commit: "0123456789ab", Date: "2026-10-01T12:00:00Z"},
		},
		{
			name:     "linker values win",
			version:  "v2.0.0",
			commit:   "deadbeef",
			info:     stamped,
			expected: Build{Version: "v2.0.0", Commit: "deadbeef", Date: "2026-10-01T12:00:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
			t.Cleanup(func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate })
			Version, GitCommit, BuildDate = tt.version, tt.commit, ""

			tt.expected.GoVersion = runtime.Version()
			if got := resolve(tt.info); got != tt.expected {
				t.Errorf("resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "fsutils ") || !strings.Contains(info, runtime.Version()) {
		t.Errorf("Info() = %q", info)
	}
}
