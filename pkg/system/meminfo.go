package system

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const procMeminfo = "/proc/meminfo"

// parseMemAvailable returns the kernel's MemAvailable estimate in bytes
// from /proc/meminfo content.
func parseMemAvailable(r io.Reader) (uint64, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok || name != "MemAvailable" {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, errors.New("MemAvailable has no value")
		}
		kb, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return 0, err
		}
		if len(fields) > 1 && fields[1] != "kB" {
			return 0, errors.New("MemAvailable has unexpected unit " + fields[1])
		}
		return kb * 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, errors.New("MemAvailable not found")
}
