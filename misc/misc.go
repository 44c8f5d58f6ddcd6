// Package misc keeps program identity set at build time.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by linker.
var (
	appName = ""
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name, derived from executable when not set at
// build time.
func GetAppName() string {
	if appName != "" {
		return appName
	}
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || strings.HasSuffix(name, ".test") {
		return "cmodel"
	}
	return name
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
