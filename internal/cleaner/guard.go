package cleaner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// protectedPaths are system locations deletion must never touch, even if a
// scanner somehow reported one of them.
var protectedPaths = []string{
	"/",
	"/bin",
	"/boot",
	"/dev",
	"/etc",
	"/lib",
	"/lib64",
	"/proc",
	"/root",
	"/sbin",
	"/sys",
	"/usr",
	"/var",
	"/System",
	"/Applications",
}

// validatePath rejects relative paths and the protected locations
// themselves before anything is removed. Scanned items always carry
// absolute paths; anything else reaching the cleaner is a bug.
func validatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("refusing to delete relative path %q", path)
	}

	clean := filepath.Clean(path)
	for _, protected := range protectedPaths {
		if clean == protected {
			return fmt.Errorf("refusing to delete protected path %q", clean)
		}
	}
	return nil
}

// criticalChild reports whether path sits directly beneath a protected
// directory: /usr/bin is critical, /usr/local/Homebrew/... is not. Such
// items are skipped rather than deleted, but they do not abort the run —
// a home directory under /root can legitimately hold scanned targets.
func criticalChild(path string) bool {
	clean := filepath.Clean(path)
	for _, protected := range protectedPaths {
		if !strings.HasPrefix(clean, protected+"/") {
			continue
		}
		if rel, err := filepath.Rel(protected, clean); err == nil && !strings.Contains(rel, "/") {
			return true
		}
	}
	return false
}
