//go:build !linux

package system

import "errors"

const hostMetricsSupported = false

func readHostMetrics() (HostMetrics, error) {
	return HostMetrics{}, errors.New("host metrics are not supported on this platform")
}
