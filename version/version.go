package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// Short returns the version, falling back to the main module version
// recorded by the Go toolchain, or "devel".
func Short() string {
	if Version != "" {
		return Version
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if ok && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}

	return "devel"
}

// Info returns a multi-line description of the build, omitting fields that
// were not set.
func Info() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (revision %s)\n", Short(), Revision)

	fields := []struct {
		name, value string
	}{
		{"branch", Branch},
		{"build user", BuildUser},
		{"build date", BuildDate},
	}

	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "  %s: %s\n", f.name, f.value)
		}
	}

	fmt.Fprintf(&b, "  go: %s %s/%s\n", GoVersion, GoOS, GoArch)

	return b.String()
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
