package scanner

import (
	"fmt"
	"sort"
)

// Category identifies a class of reclaimable cache or build artifact.
// Values are ordered; reports iterate categories in this canonical order.
type Category int

const (
	CategoryXcode Category = iota
	CategoryPython
	CategoryRust
	CategoryNodejs
	CategoryBrew
	CategoryDocker
)

// AllCategories lists every category in canonical order.
var AllCategories = []Category{
	CategoryXcode,
	CategoryPython,
	CategoryRust,
	CategoryNodejs,
	CategoryBrew,
	CategoryDocker,
}

// ParseCategory resolves a CLI category name.
func ParseCategory(name string) (Category, error) {
	for _, c := range AllCategories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// String returns the CLI name of the category.
func (c Category) String() string {
	switch c {
	case CategoryXcode:
		return "xcode"
	case CategoryPython:
		return "python"
	case CategoryRust:
		return "rust"
	case CategoryNodejs:
		return "nodejs"
	case CategoryBrew:
		return "brew"
	case CategoryDocker:
		return "docker"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-facing name of the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryXcode:
		return "Xcode"
	case CategoryPython:
		return "Python"
	case CategoryRust:
		return "Rust"
	case CategoryNodejs:
		return "NodeJS"
	case CategoryBrew:
		return "Homebrew"
	case CategoryDocker:
		return "Docker"
	default:
		return "Unknown"
	}
}

// ItemKind distinguishes file items from directory items.
type ItemKind int

const (
	KindFile ItemKind = iota
	KindDirectory
)

// ScanItem is one discovered filesystem object attributed to a category.
// Size is only meaningful once Measured is true; discovery produces
// unmeasured items and the size pass fills them in exactly once.
type ScanItem struct {
	Category Category
	Path     string
	Kind     ItemKind
	Size     int64
	Measured bool
}

// DirectoryItem returns an unmeasured directory item.
func DirectoryItem(category Category, path string) ScanItem {
	return ScanItem{Category: category, Path: path, Kind: KindDirectory}
}

// FileItem returns an unmeasured file item.
func FileItem(category Category, path string) ScanItem {
	return ScanItem{Category: category, Path: path, Kind: KindFile}
}

// MeasuredItem returns a directory item whose size is already known,
// e.g. an aggregate reported by an external tool.
func MeasuredItem(category Category, path string, size int64) ScanItem {
	return ScanItem{Category: category, Path: path, Kind: KindDirectory, Size: size, Measured: true}
}

// CategoryReport groups the items discovered for a single category.
type CategoryReport struct {
	Category Category
	Items    []ScanItem
}

// TotalSize returns the sum of all measured item sizes.
func (r *CategoryReport) TotalSize() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.Size
	}
	return total
}

// IsEmpty reports whether the category holds no items.
func (r *CategoryReport) IsEmpty() bool {
	return len(r.Items) == 0
}

// ScanReport maps categories to their reports. Iteration via Categories()
// follows the canonical category order regardless of discovery order.
type ScanReport struct {
	reports map[Category]*CategoryReport
}

// NewScanReport returns an empty report.
func NewScanReport() *ScanReport {
	return &ScanReport{reports: make(map[Category]*CategoryReport)}
}

// AddItems appends items to the category's report. Every item must belong
// to the given category.
func (r *ScanReport) AddItems(category Category, items []ScanItem) {
	if len(items) == 0 {
		return
	}
	report, ok := r.reports[category]
	if !ok {
		report = &CategoryReport{Category: category}
		r.reports[category] = report
	}
	report.Items = append(report.Items, items...)
}

// ReportFor returns the report for a category, or nil if absent.
func (r *ScanReport) ReportFor(category Category) *CategoryReport {
	return r.reports[category]
}

// Categories returns the categories present, in canonical order.
func (r *ScanReport) Categories() []Category {
	categories := make([]Category, 0, len(r.reports))
	for c := range r.reports {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

// Items returns all items across categories, in canonical category order.
func (r *ScanReport) Items() []ScanItem {
	var items []ScanItem
	for _, c := range r.Categories() {
		items = append(items, r.reports[c].Items...)
	}
	return items
}

// TotalSize returns the measured size across all categories.
func (r *ScanReport) TotalSize() int64 {
	var total int64
	for _, report := range r.reports {
		total += report.TotalSize()
	}
	return total
}

// Subset returns a new report restricted to the given categories.
func (r *ScanReport) Subset(categories []Category) *ScanReport {
	subset := NewScanReport()
	for _, c := range categories {
		if report, ok := r.reports[c]; ok {
			subset.AddItems(c, report.Items)
		}
	}
	return subset
}

// IsEmpty reports whether no category holds any items.
func (r *ScanReport) IsEmpty() bool {
	for _, report := range r.reports {
		if !report.IsEmpty() {
			return false
		}
	}
	return true
}
