package scanner

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/progress"
)

// sizeWorkerCount bounds the size-pass parallelism: at least 4 workers to
// overlap I/O, capped at 16 to avoid excessive context switching.
func sizeWorkerCount() int {
	n := runtime.NumCPU()
	if n < 4 {
		n = 4
	}
	if n > 16 {
		n = 16
	}
	return n
}

// ComputeSizes fills in the size of every unmeasured item, in parallel.
// Files use their metadata length; directories are summed by walking with
// the same exclusion pruning applied at discovery time. A vanished or
// unreadable item is skipped with a warning and stays unmeasured.
func ComputeSizes(items []ScanItem, matcher *exclude.Matcher, verbose bool, reporter *progress.Reporter) {
	var done int64
	total := len(items)
	startTime := time.Now()

	g := new(errgroup.Group)
	g.SetLimit(sizeWorkerCount())

	for i := range items {
		item := &items[i]
		g.Go(func() error {
			if !item.Measured {
				switch item.Kind {
				case KindDirectory:
					item.Size = dirSize(item.Path, matcher, verbose)
					item.Measured = true
				case KindFile:
					if info, err := os.Lstat(item.Path); err != nil {
						warnf(verbose, "Skipping %s: %v", item.Path, err)
					} else {
						item.Size = info.Size()
						item.Measured = true
					}
				}
			}

			reporter.Publish(progress.Update{
				Phase:      progress.PhaseSizing,
				ItemsDone:  int(atomic.AddInt64(&done, 1)),
				ItemsTotal: total,
				StartTime:  startTime,
			})
			return nil
		})
	}
	g.Wait()
}
