package service

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	minPort = 1
	maxPort = 65535
)

// ParsePortRange 解析端口范围，支持 "all" 和 "<start>-<end>" 两种格式，包含两端
func ParsePortRange(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "all" {
		return portsBetween(minPort, maxPort), nil
	}

	bounds := strings.SplitN(spec, "-", 2)
	if len(bounds) != 2 {
		return nil, errors.Errorf("invalid port range %q, expected <start>-<end> or all", spec)
	}
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid start port in %q", spec)
	}
	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid end port in %q", spec)
	}
	if start < minPort || end > maxPort {
		return nil, errors.Errorf("port range %q out of %d-%d", spec, minPort, maxPort)
	}
	if start > end {
		return nil, errors.Errorf("port range %q start greater than end", spec)
	}
	return portsBetween(start, end), nil
}

func portsBetween(start, end int) []int {
	ports := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		ports = append(ports, p)
	}
	return ports
}
