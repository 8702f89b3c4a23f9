//go:build linux

package system

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const hostMetricsSupported = true

func readHostMetrics() (HostMetrics, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return HostMetrics{}, err
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	available, err := readMemAvailable()
	if err != nil {
		// Kernels before 3.14 have no MemAvailable.
		available = (uint64(info.Freeram) + uint64(info.Bufferram)) * unit
	}

	return HostMetrics{
		MemoryTotalBytes:     uint64(info.Totalram) * unit,
		MemoryAvailableBytes: available,
		Uptime:               time.Duration(int64(info.Uptime)) * time.Second,
	}, nil
}

func readMemAvailable() (uint64, error) {
	f, err := os.Open(procMeminfo)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return parseMemAvailable(f)
}
