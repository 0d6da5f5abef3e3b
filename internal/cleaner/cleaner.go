// Package cleaner removes scanned items from disk while honoring the same
// exclusion rules the scanner applied at discovery time.
package cleaner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/progress"
	"github.com/reclaimdev/reclaim/internal/scanner"
)

// Result summarizes a deletion pass.
type Result struct {
	DeletedItems  int
	SkippedItems  int
	AttemptedSize int64
}

// Cleaner deletes items, re-checking exclusion at deletion time.
type Cleaner struct {
	matcher  *exclude.Matcher
	reporter *progress.Reporter
}

// New returns a Cleaner over the given exclusion matcher. reporter may be
// nil.
func New(matcher *exclude.Matcher, reporter *progress.Reporter) *Cleaner {
	return &Cleaner{matcher: matcher, reporter: reporter}
}

// DeleteItems removes every item, treating already-missing paths as
// success so repeated runs converge. Top-level items never share subtrees
// and are deleted concurrently. Protected system locations abort the run;
// an item sitting directly beneath one is skipped with a warning instead,
// as is any item the exclusion matcher re-matches at deletion time. The
// first fatal I/O error aborts the remaining work, though sibling
// deletions already in flight run to completion first.
func (c *Cleaner) DeleteItems(items []scanner.ScanItem, verbose bool) (*Result, error) {
	var deleted, skipped int64
	var attempted int64
	startTime := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(deleteWorkerCount())

	for _, item := range items {
		g.Go(func() error {
			// A fatal error in a sibling stops the remaining queue.
			if ctx.Err() != nil {
				return nil
			}
			if err := validatePath(item.Path); err != nil {
				return err
			}
			if criticalChild(item.Path) {
				if verbose {
					warnSkip(item.Path, errSystemPath)
				}
				atomic.AddInt64(&skipped, 1)
				return nil
			}
			if c.matcher.Matches(item.Path) {
				atomic.AddInt64(&skipped, 1)
				return nil
			}

			var err error
			switch item.Kind {
			case scanner.KindDirectory:
				err = c.safeRemoveDirAll(item.Path, verbose)
			case scanner.KindFile:
				err = removeFile(item.Path)
			}
			if err != nil {
				return err
			}

			atomic.AddInt64(&attempted, item.Size)
			done := atomic.AddInt64(&deleted, 1)
			c.reporter.Publish(progress.Update{
				Phase:      progress.PhaseDeleting,
				Category:   item.Category.DisplayName(),
				ItemsDone:  int(done),
				ItemsTotal: len(items),
				StartTime:  startTime,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		DeletedItems:  int(deleted),
		SkippedItems:  int(skipped),
		AttemptedSize: attempted,
	}, nil
}

// safeRemoveDirAll removes a directory tree without touching excluded
// descendants. It walks the subtree once, collecting surviving files and
// directories, deletes all files, then deletes directories deepest-first.
// A directory left non-empty by a surviving excluded child is tolerated;
// the tree ends up partially pruned instead of the run failing.
func (c *Cleaner) safeRemoveDirAll(root string, verbose bool) error {
	var files, dirs []string

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if verbose {
				warnSkip(path, err)
			}
			return nil
		}

		if c.matcher.Matches(path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})

	// Phase one: files. Order is irrelevant; files are independent.
	for _, file := range files {
		if err := removeFile(file); err != nil {
			return err
		}
	}

	// Phase two: directories, deepest first, so every child was attempted
	// before its parent.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		err := os.Remove(dir)
		switch {
		case err == nil:
		case os.IsNotExist(err):
		case isNotEmpty(err):
			// Expected when an excluded descendant survives inside it.
		default:
			return err
		}
	}

	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func deleteWorkerCount() int {
	n := runtime.NumCPU()
	if n < 2 {
		n = 2
	}
	if n > 8 {
		n = 8
	}
	return n
}
