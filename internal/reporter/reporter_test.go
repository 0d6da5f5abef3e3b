package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reclaimdev/reclaim/internal/scanner"
)

func sampleReport() *scanner.ScanReport {
	report := scanner.NewScanReport()
	report.AddItems(scanner.CategoryRust, []scanner.ScanItem{
		scanner.MeasuredItem(scanner.CategoryRust, "/home/tester/svc/target", 1024),
	})
	report.AddItems(scanner.CategoryNodejs, []scanner.ScanItem{
		scanner.MeasuredItem(scanner.CategoryNodejs, "/home/tester/web/node_modules", 2048),
		{Category: scanner.CategoryNodejs, Path: "/home/tester/web/.next", Kind: scanner.KindDirectory},
	})
	return report
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		homeDir  string
		expected string
	}{
		{"under home", "/home/tester/svc/target", "/home/tester", "~/svc/target"},
		{"home itself", "/home/tester", "/home/tester", "~"},
		{"outside home", "/var/cache/thing", "/home/tester", "/var/cache/thing"},
		{"no home", "/home/tester/svc", "", "/home/tester/svc"},
		{"sibling prefix", "/home/tester2/svc", "/home/tester", "/home/tester2/svc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayPath(tt.path, tt.homeDir))
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"summary", "json", "yaml"} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(name), got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary, "/home/tester")

	require.NoError(t, r.Report(sampleReport(), false))

	out := buf.String()
	assert.Contains(t, out, "rust")
	assert.Contains(t, out, "nodejs")
	assert.Contains(t, out, "1 item")
	assert.Contains(t, out, "2 items")
	assert.Contains(t, out, "3.00 KB")
	// Item paths only show up in verbose mode.
	assert.NotContains(t, out, "~/svc/target")
}

func TestReportSummaryVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary, "/home/tester")

	require.NoError(t, r.Report(sampleReport(), true))

	out := buf.String()
	assert.Contains(t, out, "~/svc/target")
	assert.Contains(t, out, "~/web/node_modules")
	assert.Contains(t, out, "(unmeasured)")
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatJSON, "/home/tester")

	require.NoError(t, r.Report(sampleReport(), false))

	var doc struct {
		Categories []struct {
			Category  string `json:"category"`
			TotalSize int64  `json:"total_size"`
			Items     []struct {
				Path     string `json:"path"`
				Kind     string `json:"kind"`
				Measured bool   `json:"measured"`
			} `json:"items"`
		} `json:"categories"`
		TotalSize int64 `json:"total_size"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Categories, 2)
	assert.Equal(t, "rust", doc.Categories[0].Category)
	assert.Equal(t, int64(1024), doc.Categories[0].TotalSize)
	assert.Equal(t, int64(3072), doc.TotalSize)

	nodejs := doc.Categories[1]
	require.Len(t, nodejs.Items, 2)
	assert.True(t, nodejs.Items[0].Measured)
	assert.False(t, nodejs.Items[1].Measured)
	assert.Equal(t, "directory", nodejs.Items[1].Kind)
}

func TestReportYAML(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatYAML, "/home/tester")

	require.NoError(t, r.Report(sampleReport(), false))

	var doc struct {
		Categories []struct {
			Category string `yaml:"category"`
		} `yaml:"categories"`
		TotalSize int64 `yaml:"total_size"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Categories, 2)
	assert.Equal(t, int64(3072), doc.TotalSize)
}

func TestDeletionPlanAlwaysShowsPaths(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary, "/home/tester")

	r.DeletionPlan(sampleReport(), false)

	out := buf.String()
	assert.Contains(t, out, "~/svc/target")
	assert.Contains(t, out, "~/web/node_modules")
	assert.Contains(t, out, "~/web/.next")
}
