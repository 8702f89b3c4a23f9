package system

import (
	"os"
	"os/user"
	"runtime"
	"time"
)

// Probe collects Stats. Collect never fails; facts that cannot be read are
// left out.
type Probe interface {
	Name() string
	Collect(now time.Time) Stats
}

// BasicProbe reports hostname, OS and process facts only.
type BasicProbe struct{}

func (BasicProbe) Name() string { return "basic" }

func (BasicProbe) Collect(now time.Time) Stats {
	stats := Stats{
		KeyDatetime:  now.Format(time.RFC3339),
		KeyOS:        runtime.GOOS,
		KeyArch:      runtime.GOARCH,
		KeyGoVersion: runtime.Version(),
		KeyCPUCount:  runtime.NumCPU(),
	}

	stats.setString(KeyOSRelease, kernelRelease())
	stats.setString(KeyOSDistro, distroName())

	if hostname, err := os.Hostname(); err == nil {
		stats.setString(KeyHostname, hostname)
	}
	stats.setString(KeyUser, currentUser())
	stats.setString(KeyShell, os.Getenv("SHELL"))

	if wd, err := os.Getwd(); err == nil {
		stats.setString(KeyCwd, wd)
		stats.setString(KeyGitBranch, gitBranch(wd))
	}

	return stats
}

// HostMetrics are the facts only the full probe can report.
type HostMetrics struct {
	MemoryTotalBytes     uint64
	MemoryAvailableBytes uint64
	Uptime               time.Duration
}

// FullProbe extends BasicProbe with memory and uptime figures.
type FullProbe struct {
	Basic BasicProbe

	// ReadMetrics defaults to the platform reader.
	ReadMetrics func() (HostMetrics, error)
}

func (FullProbe) Name() string { return "full" }

func (p FullProbe) Collect(now time.Time) Stats {
	stats := p.Basic.Collect(now)

	read := p.ReadMetrics
	if read == nil {
		read = readHostMetrics
	}

	metrics, err := read()
	if err != nil {
		return stats
	}

	const mb = 1024 * 1024
	stats[KeyMemoryTotalMB] = int64((metrics.MemoryTotalBytes + mb/2) / mb)
	stats[KeyMemoryAvailableMB] = int64((metrics.MemoryAvailableBytes + mb/2) / mb)
	stats[KeyUptimeSec] = int64(metrics.Uptime / time.Second)
	return stats
}

// Select returns the full probe when this platform can report host
// metrics and the basic probe otherwise.
func Select() Probe {
	if hostMetricsSupported {
		return FullProbe{}
	}
	return BasicProbe{}
}

// currentUser mirrors the usual login-name lookup order before falling
// back to the passwd database.
func currentUser() string {
	for _, env := range []string{"LOGNAME", "USER", "LNAME", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
