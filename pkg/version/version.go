package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

const name = "heystupid"

func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Summary returns the version with a short commit suffix when one is known.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" && Commit != "none" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		return fmt.Sprintf("%s (%s)", v, short)
	}
	return v
}

// UserAgent is sent with every API request.
func UserAgent() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	return name + "/" + v
}

// Info returns the multi-line text printed by --version.
func Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s version %s\n", name, Summary())
	fmt.Fprintf(&sb, "  commit: %s\n", Commit)
	fmt.Fprintf(&sb, "  built: %s\n", Date)
	fmt.Fprintf(&sb, "  go: %s\n", GoVersion)
	fmt.Fprintf(&sb, "  platform: %s\n", Platform())
	return sb.String()
}
