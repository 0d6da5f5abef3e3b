package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/platform"
)

// swiftpmArtifacts are only reported when a Package.swift manifest sits in
// the same directory; without the manifest the artifacts belong to some
// other tool and must be left alone.
var swiftpmArtifacts = []string{".build", ".swiftpm", "Package.resolved"}

// XcodeScanner detects local DerivedData directories and SwiftPM build
// artifacts under the scan roots, plus fixed global Xcode caches when not
// restricted to the current directory.
type XcodeScanner struct {
	env     *platform.Info
	matcher *exclude.Matcher
	current bool
}

// NewXcodeScanner returns the Xcode scanner. When current is true the
// global cache locations are skipped.
func NewXcodeScanner(env *platform.Info, matcher *exclude.Matcher, current bool) *XcodeScanner {
	return &XcodeScanner{env: env, matcher: matcher, current: current}
}

// Scan implements CategoryScanner.
func (s *XcodeScanner) Scan(roots []string, verbose bool) ([]ScanItem, error) {
	items := s.scanLocalProjects(roots, verbose)
	if !s.current {
		items = append(items, s.scanGlobalCaches()...)
	}
	return items, nil
}

// Category implements CategoryScanner.
func (s *XcodeScanner) Category() Category {
	return CategoryXcode
}

// ListTargets implements CategoryScanner.
func (s *XcodeScanner) ListTargets(roots []string) ([]string, error) {
	var targets []string
	derivedData := 0
	swiftpmProjects := 0

	s.walkProjects(roots, false,
		func(string) { derivedData++ },
		func(string) { swiftpmProjects++ },
	)

	if derivedData > 0 {
		targets = append(targets, fmt.Sprintf("DerivedData (%s found)", plural(derivedData, "location")))
	}
	if swiftpmProjects > 0 {
		targets = append(targets, fmt.Sprintf("SwiftPM projects (.build, .swiftpm, Package.resolved) (%s found)", plural(swiftpmProjects, "location")))
	}

	if !s.current {
		for _, path := range s.env.XcodeCaches {
			if s.matcher.Matches(path) {
				continue
			}
			if _, err := os.Stat(path); err == nil {
				targets = append(targets, fmt.Sprintf("%s (exists)", path))
			}
		}
	}

	return targets, nil
}

func (s *XcodeScanner) scanLocalProjects(roots []string, verbose bool) []ScanItem {
	var items []ScanItem
	s.walkProjects(roots, verbose,
		func(path string) {
			items = append(items, DirectoryItem(CategoryXcode, path))
		},
		func(parent string) {
			items = append(items, s.collectSwiftpmArtifacts(parent)...)
		},
	)
	return items
}

// walkProjects walks the roots once, reporting DerivedData directories to
// onDerivedData and directories holding a Package.swift manifest to
// onPackage. Duplicate manifest sightings within the same parent directory
// are deduplicated.
func (s *XcodeScanner) walkProjects(roots []string, verbose bool, onDerivedData, onPackage func(path string)) {
	seenPackages := make(map[string]struct{})

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				warnf(verbose, "Skipping %s: %v", path, err)
				return nil
			}

			if d.IsDir() && s.matcher.Matches(path) {
				return fs.SkipDir
			}

			if d.IsDir() {
				if d.Name() == "DerivedData" && path != root {
					onDerivedData(path)
					return fs.SkipDir
				}
				if walkDepth(root, path) >= maxScanDepth {
					return fs.SkipDir
				}
				return nil
			}

			if d.Name() == "Package.swift" {
				parent := filepath.Dir(path)
				if _, seen := seenPackages[parent]; !seen {
					seenPackages[parent] = struct{}{}
					onPackage(parent)
				}
			}
			return nil
		})
	}
}

func (s *XcodeScanner) collectSwiftpmArtifacts(parent string) []ScanItem {
	var items []ScanItem
	for _, artifact := range swiftpmArtifacts {
		path := filepath.Join(parent, artifact)
		if s.matcher.Matches(path) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			items = append(items, DirectoryItem(CategoryXcode, path))
		} else {
			items = append(items, FileItem(CategoryXcode, path))
		}
	}
	return items
}

func (s *XcodeScanner) scanGlobalCaches() []ScanItem {
	var items []ScanItem
	for _, path := range s.env.XcodeCaches {
		if s.matcher.Matches(path) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			items = append(items, DirectoryItem(CategoryXcode, path))
		} else {
			items = append(items, FileItem(CategoryXcode, path))
		}
	}
	return items
}
