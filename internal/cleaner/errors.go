package cleaner

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
)

// errSystemPath marks items sitting directly beneath a protected system
// directory; they are skipped rather than deleted.
var errSystemPath = errors.New("critical system path")

// isNotEmpty reports whether err is the non-empty-directory failure from
// os.Remove. EEXIST covers platforms that report it instead of ENOTEMPTY.
func isNotEmpty(err error) bool {
	return errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST)
}

var skipColor = color.New(color.FgYellow)

func warnSkip(path string, err error) {
	skipColor.Fprintln(os.Stderr, fmt.Sprintf("Skipping %s: %v", path, err))
}
