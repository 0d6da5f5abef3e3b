// Package scanner discovers reclaimable cache and build artifacts under a
// set of root paths and computes their sizes. Deletion lives in the cleaner
// package; both consult the same exclusion matcher.
package scanner

import (
	"fmt"
	"os"
	"sort"

	"github.com/reclaimdev/reclaim/internal/exclude"
)

// CategoryScanner is implemented by every concrete scanner. Scan discovers
// candidate items with sizes unset; ListTargets is a cheap existence-only
// preview that never computes sizes.
type CategoryScanner interface {
	Scan(roots []string, verbose bool) ([]ScanItem, error)
	ListTargets(roots []string) ([]string, error)
	Category() Category
}

var pythonTargets = []string{
	"__pycache__",
	".pytest_cache",
	".ruff_cache",
	".mypy_cache",
	".venv",
	".uv-cache",
}

var rustTargets = []string{"target"}

var nodejsTargets = []string{
	"node_modules",
	".next",
	".nuxt",
	".svelte-kit",
}

// NamedDirScanner detects directories by name under the scan roots. Each
// match is reported once as a single opaque unit.
type NamedDirScanner struct {
	category Category
	targets  map[string]struct{}
	matcher  *exclude.Matcher
}

// NewNamedDirScanner returns a scanner that detects the given directory
// names for the given category.
func NewNamedDirScanner(category Category, targets []string, matcher *exclude.Matcher) *NamedDirScanner {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}
	return &NamedDirScanner{category: category, targets: set, matcher: matcher}
}

// Scan walks every existing root in target-detection mode.
func (s *NamedDirScanner) Scan(roots []string, verbose bool) ([]ScanItem, error) {
	var items []ScanItem
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		walkTargets(root, s.targets, s.matcher, verbose, func(path string) {
			items = append(items, DirectoryItem(s.category, path))
		})
	}
	return items, nil
}

// ListTargets counts detected locations per target name.
func (s *NamedDirScanner) ListTargets(roots []string) ([]string, error) {
	counts := make(map[string]int)
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		walkTargets(root, s.targets, s.matcher, false, func(path string) {
			counts[baseName(path)]++
		})
	}
	return formatTargetCounts(counts), nil
}

// Category implements CategoryScanner.
func (s *NamedDirScanner) Category() Category {
	return s.category
}

// FixedPathScanner checks a fixed, platform-derived list of absolute paths
// for existence. No traversal happens at discovery time.
type FixedPathScanner struct {
	category Category
	paths    []string
	matcher  *exclude.Matcher
}

// NewFixedPathScanner returns a scanner over the given absolute paths.
func NewFixedPathScanner(category Category, paths []string, matcher *exclude.Matcher) *FixedPathScanner {
	return &FixedPathScanner{category: category, paths: paths, matcher: matcher}
}

// Scan reports one unmeasured item per existing, non-excluded path.
func (s *FixedPathScanner) Scan(_ []string, _ bool) ([]ScanItem, error) {
	var items []ScanItem
	for _, path := range s.paths {
		if s.matcher.Matches(path) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			items = append(items, DirectoryItem(s.category, path))
		} else {
			items = append(items, FileItem(s.category, path))
		}
	}
	return items, nil
}

// ListTargets reports which fixed paths exist.
func (s *FixedPathScanner) ListTargets(_ []string) ([]string, error) {
	var targets []string
	for _, path := range s.paths {
		if s.matcher.Matches(path) {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			targets = append(targets, fmt.Sprintf("%s (exists)", path))
		}
	}
	return targets, nil
}

// Category implements CategoryScanner.
func (s *FixedPathScanner) Category() Category {
	return s.category
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[i+1:]
		}
	}
	return path
}

func formatTargetCounts(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	targets := make([]string, 0, len(names))
	for _, name := range names {
		targets = append(targets, fmt.Sprintf("%s (%s found)", name, plural(counts[name], "location")))
	}
	return targets
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
