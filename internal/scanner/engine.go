package scanner

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/platform"
	"github.com/reclaimdev/reclaim/internal/progress"
)

// Policy decides whether a scanner failure aborts the whole scan. The
// asymmetry is deliberate: a partial filesystem report could understate
// what will be deleted, while an unavailable external tool just means its
// category is absent.
type Policy int

const (
	// PolicyFailFast propagates the scanner's error and aborts the scan.
	PolicyFailFast Policy = iota
	// PolicyFailSoft downgrades the scanner's error to a warning and an
	// absent category.
	PolicyFailSoft
)

// registration binds a scanner to its failure policy and whether it is
// meaningful in a current-directory-only scan.
type registration struct {
	scanner  CategoryScanner
	policy   Policy
	narrowOK bool
}

// Engine runs category scanners in parallel and merges their discoveries
// into a ScanReport.
type Engine struct {
	env      *platform.Info
	matcher  *exclude.Matcher
	reporter *progress.Reporter
}

// NewEngine returns an engine over the given environment and exclusion
// matcher. reporter may be nil.
func NewEngine(env *platform.Info, matcher *exclude.Matcher, reporter *progress.Reporter) *Engine {
	return &Engine{env: env, matcher: matcher, reporter: reporter}
}

// registrations builds the fixed scanner set. Global-path scanners and the
// external Docker collaborator are unsuitable for narrow scans.
func (e *Engine) registrations(current bool) []registration {
	return []registration{
		{scanner: NewXcodeScanner(e.env, e.matcher, current), policy: PolicyFailFast, narrowOK: true},
		{scanner: NewNamedDirScanner(CategoryPython, pythonTargets, e.matcher), policy: PolicyFailFast, narrowOK: true},
		{scanner: NewNamedDirScanner(CategoryRust, rustTargets, e.matcher), policy: PolicyFailFast, narrowOK: true},
		{scanner: NewNamedDirScanner(CategoryNodejs, nodejsTargets, e.matcher), policy: PolicyFailFast, narrowOK: true},
		{scanner: NewFixedPathScanner(CategoryBrew, e.env.BrewCaches, e.matcher), policy: PolicyFailFast, narrowOK: false},
		{scanner: NewDockerScanner(), policy: PolicyFailSoft, narrowOK: false},
	}
}

func (e *Engine) selectScanners(categories []Category, current bool) []registration {
	requested := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		requested[c] = struct{}{}
	}

	var selected []registration
	for _, reg := range e.registrations(current) {
		if _, ok := requested[reg.scanner.Category()]; !ok {
			continue
		}
		if current && !reg.narrowOK {
			continue
		}
		selected = append(selected, reg)
	}
	return selected
}

// Scan discovers items for the requested categories under roots, one
// concurrent task per scanner, then fills in sizes in parallel. Any error
// from a fail-fast scanner aborts the scan; tasks already in flight run to
// completion before Scan returns.
func (e *Engine) Scan(categories []Category, roots []string, verbose, current bool) (*ScanReport, error) {
	selected := e.selectScanners(categories, current)
	startTime := time.Now()

	results := make([][]ScanItem, len(selected))
	g := new(errgroup.Group)
	for i, reg := range selected {
		g.Go(func() error {
			items, err := reg.scanner.Scan(roots, verbose)
			if err != nil {
				if reg.policy == PolicyFailSoft {
					warnf(verbose, "Skipping %s: %v", reg.scanner.Category().DisplayName(), err)
					return nil
				}
				return err
			}
			results[i] = items

			e.reporter.Publish(progress.Update{
				Phase:      progress.PhaseDiscovering,
				Category:   reg.scanner.Category().DisplayName(),
				ItemsFound: len(items),
				StartTime:  startTime,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Single-threaded merge; order does not matter since the container is
	// keyed by category.
	var discovered []ScanItem
	for _, items := range results {
		discovered = append(discovered, items...)
	}

	ComputeSizes(discovered, e.matcher, verbose, e.reporter)

	report := NewScanReport()
	for _, item := range discovered {
		report.AddItems(item.Category, []ScanItem{item})
	}

	e.reporter.Publish(progress.Update{
		Phase:      progress.PhaseComplete,
		ItemsFound: len(discovered),
		StartTime:  startTime,
	})
	return report, nil
}

// ListTargets runs the cheap existence-only preview for the requested
// categories, in parallel. No sizes are computed.
func (e *Engine) ListTargets(categories []Category, roots []string, current bool) (map[Category][]string, error) {
	selected := e.selectScanners(categories, current)

	listings := make(map[Category][]string)
	var mu sync.Mutex

	g := new(errgroup.Group)
	for _, reg := range selected {
		g.Go(func() error {
			targets, err := reg.scanner.ListTargets(roots)
			if err != nil {
				if reg.policy == PolicyFailSoft {
					return nil
				}
				return err
			}
			if len(targets) == 0 {
				return nil
			}
			mu.Lock()
			listings[reg.scanner.Category()] = targets
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}
