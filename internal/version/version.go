package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	name           = "prettysize"
	defaultVersion = "dev"
)

// Version is set with -ldflags "-X prettysize/internal/version.Version=v1.2.3".
var Version = defaultVersion

var (
	mu        sync.Mutex
	resolved  string
	buildInfo = debug.ReadBuildInfo
)

// Identifier returns "prettysize/<version>" for the Server header and health checks.
func Identifier() string {
	return name + "/" + Current()
}

// Current returns the build version. Without an ldflags override it falls
// back to the module version, then to the VCS revision recorded by the Go toolchain.
func Current() string {
	mu.Lock()
	defer mu.Unlock()
	if resolved == "" {
		resolved = resolve()
	}
	return resolved
}

// Override substitutes the version string and clears cached values. Intended for tests.
func Override(v string) {
	mu.Lock()
	defer mu.Unlock()
	Version = v
	resolved = ""
}

func resolve() string {
	if v := strings.TrimSpace(Version); v != "" && v != defaultVersion {
		return v
	}
	info, ok := buildInfo()
	if !ok {
		return defaultVersion
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return defaultVersion + "-" + setting.Value[:7]
		}
	}
	return defaultVersion
}
