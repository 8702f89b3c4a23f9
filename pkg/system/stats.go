// Package system captures host, OS and process facts that are sent to the
// model as context.
package system

import (
	"encoding/json"
	"sort"
)

// Stats keys.
const (
	KeyDatetime          = "datetime"
	KeyOS                = "os"
	KeyOSRelease         = "os_release"
	KeyOSDistro          = "os_distro"
	KeyArch              = "arch"
	KeyGoVersion         = "go_version"
	KeyHostname          = "hostname"
	KeyUser              = "user"
	KeyCwd               = "cwd"
	KeyShell             = "shell"
	KeyGitBranch         = "git_branch"
	KeyCPUCount          = "cpu_count"
	KeyMemoryTotalMB     = "memory_total_mb"
	KeyMemoryAvailableMB = "memory_available_mb"
	KeyUptimeSec         = "uptime_sec"
)

// Stats maps fact names to scalar values. A Stats value is built once by a
// Probe and must not be modified afterwards.
type Stats map[string]any

// JSON serializes the stats with sorted keys so the output is stable.
func (s Stats) JSON() string {
	data, err := json.Marshal(map[string]any(s))
	if err != nil {
		// Only scalars are stored, so this is unreachable in practice.
		return "{}"
	}
	return string(data)
}

// Keys returns the fact names in sorted order.
func (s Stats) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s Stats) setString(key, value string) {
	if value != "" {
		s[key] = value
	}
}
