// Package reporter renders scan reports for humans and machines.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reclaimdev/reclaim/internal/scanner"
	"github.com/reclaimdev/reclaim/pkg/utils"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatSummary OutputFormat = "summary"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// ParseFormat resolves a CLI format name.
func ParseFormat(name string) (OutputFormat, error) {
	switch OutputFormat(name) {
	case FormatSummary, FormatJSON, FormatYAML:
		return OutputFormat(name), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want summary, json, or yaml)", name)
	}
}

// Reporter handles report generation
type Reporter struct {
	writer  io.Writer
	format  OutputFormat
	homeDir string
}

// New creates a new Reporter. homeDir is used to abbreviate paths in human
// output.
func New(writer io.Writer, format OutputFormat, homeDir string) *Reporter {
	return &Reporter{writer: writer, format: format, homeDir: homeDir}
}

// Report renders the scan report in the configured format. verbose adds
// per-item lines to the summary format.
func (r *Reporter) Report(report *scanner.ScanReport, verbose bool) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	case FormatYAML:
		return r.reportYAML(report)
	case FormatSummary:
		return r.reportSummary(report, verbose)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(report *scanner.ScanReport, verbose bool) error {
	fmt.Fprintln(r.writer, titleStyle.Render("Scan results:"))
	for _, category := range report.Categories() {
		cr := report.ReportFor(category)
		fmt.Fprintf(r.writer, "- %s %s across %s\n",
			categoryStyle.Render(fmt.Sprintf("%-8s", category.String())),
			sizeStyle.Render(fmt.Sprintf("%10s", utils.FormatBytes(cr.TotalSize()))),
			plural(len(cr.Items), "item"))
		if verbose {
			for _, item := range cr.Items {
				fmt.Fprintf(r.writer, "    • %-60s %s\n",
					pathStyle.Render(DisplayPath(item.Path, r.homeDir)),
					itemSize(item))
			}
		}
	}
	fmt.Fprintf(r.writer, "%s %s\n", totalStyle.Render("Total reclaimable:"), utils.FormatBytes(report.TotalSize()))
	return nil
}

// DeletionPlan prints what a confirmed run would remove. Paths are always
// shown so the user knows exactly what is about to be deleted.
func (r *Reporter) DeletionPlan(report *scanner.ScanReport, verbose bool) {
	fmt.Fprintln(r.writer, titleStyle.Render("Deletion plan:"))
	for _, category := range report.Categories() {
		cr := report.ReportFor(category)
		fmt.Fprintf(r.writer, "- %s %s across %s\n",
			categoryStyle.Render(fmt.Sprintf("%-8s", category.String())),
			sizeStyle.Render(utils.FormatBytes(cr.TotalSize())),
			plural(len(cr.Items), "item"))
		for _, item := range cr.Items {
			if verbose {
				fmt.Fprintf(r.writer, "    • %-60s %s\n",
					pathStyle.Render(DisplayPath(item.Path, r.homeDir)), itemSize(item))
			} else {
				fmt.Fprintf(r.writer, "    • %s\n", pathStyle.Render(DisplayPath(item.Path, r.homeDir)))
			}
		}
	}
	fmt.Fprintf(r.writer, "%s %s\n", totalStyle.Render("Total to delete:"), utils.FormatBytes(report.TotalSize()))
}

type reportDoc struct {
	Categories []categoryDoc `json:"categories" yaml:"categories"`
	TotalSize  int64         `json:"total_size" yaml:"total_size"`
}

type categoryDoc struct {
	Category  string    `json:"category" yaml:"category"`
	TotalSize int64     `json:"total_size" yaml:"total_size"`
	Items     []itemDoc `json:"items" yaml:"items"`
}

type itemDoc struct {
	Path     string `json:"path" yaml:"path"`
	Kind     string `json:"kind" yaml:"kind"`
	Size     int64  `json:"size" yaml:"size"`
	Measured bool   `json:"measured" yaml:"measured"`
}

func buildDoc(report *scanner.ScanReport) reportDoc {
	doc := reportDoc{TotalSize: report.TotalSize()}
	for _, category := range report.Categories() {
		cr := report.ReportFor(category)
		cd := categoryDoc{Category: category.String(), TotalSize: cr.TotalSize()}
		for _, item := range cr.Items {
			kind := "file"
			if item.Kind == scanner.KindDirectory {
				kind = "directory"
			}
			cd.Items = append(cd.Items, itemDoc{
				Path:     item.Path,
				Kind:     kind,
				Size:     item.Size,
				Measured: item.Measured,
			})
		}
		doc.Categories = append(doc.Categories, cd)
	}
	return doc
}

func (r *Reporter) reportJSON(report *scanner.ScanReport) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(buildDoc(report))
}

func (r *Reporter) reportYAML(report *scanner.ScanReport) error {
	data, err := yaml.Marshal(buildDoc(report))
	if err != nil {
		return err
	}
	_, err = r.writer.Write(data)
	return err
}

// DisplayPath replaces the home directory prefix with "~" to make output
// easier to read.
func DisplayPath(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if rel, err := filepath.Rel(homeDir, path); err == nil && !strings.HasPrefix(rel, "..") && rel != "." {
		return filepath.Join("~", rel)
	}
	if path == homeDir {
		return "~"
	}
	return path
}

func itemSize(item scanner.ScanItem) string {
	if !item.Measured {
		return "(unmeasured)"
	}
	return sizeStyle.Render(utils.FormatBytes(item.Size))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
