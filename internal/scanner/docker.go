package scanner

import (
	"github.com/reclaimdev/reclaim/internal/docker"
)

// DockerScanner wraps the out-of-process Docker adapter as a category
// scanner. It reports at most one aggregate, already-measured item and
// reports nothing when the tool is unavailable or its output unparseable.
type DockerScanner struct{}

// NewDockerScanner returns the Docker category scanner.
func NewDockerScanner() *DockerScanner {
	return &DockerScanner{}
}

// Scan implements CategoryScanner.
func (s *DockerScanner) Scan(_ []string, verbose bool) ([]ScanItem, error) {
	total, err := docker.QueryReclaimable(verbose)
	if err != nil || total == 0 {
		return nil, err
	}
	return []ScanItem{MeasuredItem(CategoryDocker, docker.ScanLabel, total)}, nil
}

// ListTargets implements CategoryScanner.
func (s *DockerScanner) ListTargets(_ []string) ([]string, error) {
	return docker.ListTargets(), nil
}

// Category implements CategoryScanner.
func (s *DockerScanner) Category() Category {
	return CategoryDocker
}
