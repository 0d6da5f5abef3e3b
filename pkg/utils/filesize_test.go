package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"negative clamps", -42, "0 B"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 1536, "1.50 KB"},
		{"megabytes", 5 * MB, "5.00 MB"},
		{"gigabytes", 3 * GB, "3.00 GB"},
		{"terabytes", 2 * TB, "2.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestParseSize(t *testing.T) {
	kb, gb := float64(1e3), float64(1e9)

	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"bare number", "1024", 1024},
		{"bytes", "512B", 512},
		{"kilobytes", "1KB", 1e3},
		{"megabytes", "100MB", 100 * 1e6},
		{"gigabytes", "2GB", 2 * 1e9},
		{"terabytes", "1TB", 1e12},
		{"fractional", "1.5GB", int64(1.5 * gb)},
		{"docker lowercase kB", "508.8kB", int64(508.8 * kb)},
		{"short unit", "3G", 3 * 1e9},
		{"binary kibibytes", "1KiB", KB},
		{"binary gibibytes", "4GiB", 4 * GB},
		{"surrounding whitespace", " 100MB ", 100 * 1e6},
		{"space before unit", "11.63 GB", int64(11.63 * gb)},
		{"zero", "0B", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "GB", "abc", "12XB"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.Error(t, err)
		})
	}
}
