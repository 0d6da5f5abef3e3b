package utils

import (
	"fmt"
	"strings"
)

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// ParseSize converts a human-readable size such as "11.63GB" or "508.8kB"
// to bytes. Decimal units (kB, MB, GB) are powers of 1000, which is how
// docker reports them; binary units (KiB, MiB, GiB) are powers of 1024.
// Units are case-insensitive; a bare number is taken as bytes.
func ParseSize(size string) (int64, error) {
	s := strings.TrimSpace(size)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	split := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}

	var value float64
	if _, err := fmt.Sscanf(s[:split], "%f", &value); err != nil {
		return 0, fmt.Errorf("invalid size format: %s", size)
	}

	switch strings.ToUpper(strings.TrimSpace(s[split:])) {
	case "", "B":
		return int64(value), nil
	case "KB", "K":
		return int64(value * 1e3), nil
	case "MB", "M":
		return int64(value * 1e6), nil
	case "GB", "G":
		return int64(value * 1e9), nil
	case "TB", "T":
		return int64(value * 1e12), nil
	case "KIB":
		return int64(value * KB), nil
	case "MIB":
		return int64(value * MB), nil
	case "GIB":
		return int64(value * GB), nil
	case "TIB":
		return int64(value * TB), nil
	default:
		return 0, fmt.Errorf("unknown unit in size: %s", size)
	}
}
