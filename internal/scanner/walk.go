package scanner

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/reclaimdev/reclaim/internal/exclude"
)

// maxScanDepth bounds how deep target detection descends below a root.
// Build caches nested deeper than this are not worth the traversal cost.
const maxScanDepth = 10

var warnColor = color.New(color.FgYellow)

func warnf(verbose bool, format string, args ...interface{}) {
	if verbose {
		warnColor.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// walkTargets walks root depth-first in target-detection mode. Directories
// matching the exclusion matcher are pruned: neither they nor anything
// beneath them is visited. A directory whose name is in targets is emitted
// once as an opaque unit and not descended into, so nested targets inside
// it are never reported separately. Unreadable entries are skipped with a
// warning and never abort the walk.
func walkTargets(root string, targets map[string]struct{}, matcher *exclude.Matcher, verbose bool, emit func(path string)) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnf(verbose, "Skipping %s: %v", path, err)
			return nil
		}

		if d.IsDir() && matcher.Matches(path) {
			return fs.SkipDir
		}

		if !d.IsDir() {
			return nil
		}

		if _, ok := targets[d.Name()]; ok && path != root {
			emit(path)
			return fs.SkipDir
		}

		if walkDepth(root, path) >= maxScanDepth {
			return fs.SkipDir
		}
		return nil
	})
}

// walkAll walks root in full-enumeration mode, applying the same exclusion
// pruning at every directory boundary. fn sees every surviving file and
// directory, including root itself.
func walkAll(root string, matcher *exclude.Matcher, verbose bool, fn func(path string, d fs.DirEntry)) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnf(verbose, "Skipping %s: %v", path, err)
			return nil
		}

		if matcher.Matches(path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		fn(path, d)
		return nil
	})
}

// dirSize returns the saturating sum of the sizes of all plain files
// strictly beneath path, honoring exclusion pruning. Entries that vanish
// or cannot be read are skipped with a warning and contribute nothing.
func dirSize(path string, matcher *exclude.Matcher, verbose bool) int64 {
	var total int64
	walkAll(path, matcher, verbose, func(entryPath string, d fs.DirEntry) {
		if d.IsDir() {
			return
		}
		info, err := d.Info()
		if err != nil {
			warnf(verbose, "Skipping %s: %v", entryPath, err)
			return
		}
		if !info.Mode().IsRegular() {
			return
		}
		total = saturatingAdd(total, info.Size())
	})
	return total
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
