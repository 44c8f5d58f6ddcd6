package misc

import "testing"

func TestGetAppName(t *testing.T) {
	if got := GetAppName(); got == "" {
		t.Error("application name must not be empty")
	}

	saved := appName
	defer func() { appName = saved }()
	appName = "editor"
	if got := GetAppName(); got != "editor" {
		t.Errorf("GetAppName() = %q, want linker value", got)
	}
}

func TestVersionInfo(t *testing.T) {
	if GetVersion() == "" || GetGitHash() == "" {
		t.Errorf("version %q, hash %q", GetVersion(), GetGitHash())
	}
}
