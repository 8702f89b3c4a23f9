package system

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// kernelRelease returns the running kernel release, e.g. "6.5.0-44-generic".
func kernelRelease() string {
	if runtime.GOOS == "windows" {
		return ""
	}

	// Fast path: no process spawn.
	if content, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		return strings.TrimSpace(string(content))
	}

	output, err := exec.Command("uname", "-r").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// distroName returns a human readable OS name such as "Ubuntu 22.04.3 LTS"
// or "macOS 14.2.1".
func distroName() string {
	switch runtime.GOOS {
	case "linux":
		for _, path := range osReleasePaths {
			if name := readOsRelease(path); name != "" {
				return name
			}
		}
	case "darwin":
		output, err := exec.Command("sw_vers", "-productVersion").Output()
		if err == nil {
			if v := strings.TrimSpace(string(output)); v != "" {
				return "macOS " + v
			}
		}
	}
	return ""
}

func readOsRelease(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	fields, err := godotenv.Parse(f)
	if err != nil {
		return ""
	}
	return OsReleaseName(fields)
}

// OsReleaseName picks the display name from parsed os-release fields,
// preferring PRETTY_NAME and falling back to NAME + VERSION.
func OsReleaseName(fields map[string]string) string {
	if pretty := strings.TrimSpace(fields["PRETTY_NAME"]); pretty != "" {
		return pretty
	}

	name := strings.TrimSpace(fields["NAME"])
	version := strings.TrimSpace(fields["VERSION"])
	if name != "" && version != "" {
		return name + " " + version
	}
	return name
}
