package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name                string
		version, commit, dt string
		want                [3]string
	}{
		{"defaults filled", "dev", "none", "unknown", [3]string{"v0.3.1", "0123456789abcdef", "2026-01-02T03:04:05Z"}},
		{"ldflags win", "v1.0.0", "abc", "today", [3]string{"v1.0.0", "abc", "today"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, d := fromBuildInfo(bi, tt.version, tt.commit, tt.dt)
			if got := [3]string{v, c, d}; got != tt.want {
				t.Errorf("fromBuildInfo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromBuildInfoDevel(t *testing.T) {
	v, _, _ := fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev", "none", "unknown")
	if v != "dev" {
		t.Errorf("version = %q, want dev for a (devel) build", v)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), Version) {
		t.Errorf("String() = %q missing version %q", String(), Version)
	}
}
