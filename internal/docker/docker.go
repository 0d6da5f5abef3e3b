// Package docker adapts the Docker CLI as an optional cache category.
// Everything here degrades gracefully: a missing or broken Docker install
// must never take down a filesystem scan.
package docker

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/reclaimdev/reclaim/pkg/utils"
)

// ErrUnavailable signals that the Docker CLI is not installed or not
// reachable. Callers treat it as a skip, not a failure.
var ErrUnavailable = errors.New("docker CLI not available")

// ScanLabel is the synthetic path used for the aggregate Docker item.
const ScanLabel = "docker:prune"

// reclaimableLabels are the `docker system df` row labels whose
// RECLAIMABLE column contributes to the aggregate total.
var reclaimableLabels = []string{
	"Images",
	"Containers",
	"Local Volumes",
	"Build Cache",
}

// pruneSequence is the fixed, ordered set of destructive cleanup commands.
var pruneSequence = [][]string{
	{"image", "prune", "-a", "-f"},
	{"container", "prune", "-f"},
	{"volume", "prune", "-f"},
	{"network", "prune", "-f"},
	{"builder", "prune", "-a", "-f"},
}

// execCommand is swapped out by tests.
var execCommand = exec.Command

// IsAvailable probes for a working Docker CLI. Any failure means false.
func IsAvailable() bool {
	cmd := execCommand("docker", "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// QueryReclaimable sums the reclaimable bytes reported by
// `docker system df` for the recognized resource rows. Unparseable lines
// are skipped; an unavailable tool or empty output yields zero.
func QueryReclaimable(verbose bool) (int64, error) {
	if !IsAvailable() {
		if verbose {
			fmt.Fprintln(os.Stderr, "Docker CLI not available, skipping Docker scan.")
		}
		return 0, nil
	}

	out, err := execCommand("docker", "system", "df").Output()
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "'docker system df' failed: %v\n", err)
		}
		return 0, nil
	}

	return sumReclaimable(string(out)), nil
}

func sumReclaimable(output string) int64 {
	var total int64
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		for _, label := range reclaimableLabels {
			if !strings.HasPrefix(line, label) {
				continue
			}
			if bytes, ok := parseReclaimable(line); ok {
				total += bytes
			}
			break
		}
	}
	return total
}

// parseReclaimable extracts the RECLAIMABLE column from one table row.
// The column is the last token, optionally followed by a "(NN%)" suffix.
func parseReclaimable(line string) (int64, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return 0, false
	}

	idx := len(tokens) - 1
	if strings.HasPrefix(tokens[idx], "(") && idx > 0 {
		idx--
	}

	bytes, err := utils.ParseSize(tokens[idx])
	if err != nil {
		return 0, false
	}
	return bytes, true
}

// Cleanup runs the fixed prune sequence. It returns ErrUnavailable when
// the CLI is missing and the first command failure otherwise.
func Cleanup(verbose bool) error {
	if !IsAvailable() {
		return ErrUnavailable
	}

	for _, args := range pruneSequence {
		if verbose {
			fmt.Printf("$ docker %s\n", strings.Join(args, " "))
		}

		cmd := execCommand("docker", args...)
		if verbose {
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("docker %s: %w", strings.Join(args, " "), err)
		}
	}
	return nil
}

// ListTargets describes what Cleanup would remove, without touching the
// daemon beyond the availability probe.
func ListTargets() []string {
	if !IsAvailable() {
		return nil
	}
	return []string{
		"Unused images",
		"Stopped containers",
		"Dangling volumes",
		"Unused networks",
		"Build cache",
	}
}
