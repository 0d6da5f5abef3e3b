// Package exclude implements the user-configured exclusion matcher that
// suppresses paths from discovery, sizing, and deletion alike.
package exclude

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher holds a compiled set of glob patterns. It is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	patterns []string
	workDir  string
}

// New compiles the given glob patterns. A leading "~" in a pattern expands
// to homeDir. Relative candidate paths are resolved against workDir before
// matching so results do not depend on the invocation directory. An invalid
// pattern is a construction error; the caller treats it as fatal.
func New(patterns []string, homeDir, workDir string) (*Matcher, error) {
	m := &Matcher{workDir: workDir}
	for _, pattern := range patterns {
		expanded, err := expandHome(pattern, homeDir)
		if err != nil {
			return nil, err
		}
		expanded = filepath.ToSlash(expanded)
		if !doublestar.ValidatePattern(expanded) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
		m.patterns = append(m.patterns, expanded)
	}
	return m, nil
}

// Matches reports whether path matches any exclude pattern.
func (m *Matcher) Matches(path string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(m.workDir, path)
	}
	candidate := filepath.ToSlash(path)

	for _, pattern := range m.patterns {
		if doublestar.MatchUnvalidated(pattern, candidate) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}

func expandHome(pattern, homeDir string) (string, error) {
	if !strings.HasPrefix(pattern, "~") {
		return pattern, nil
	}
	if homeDir == "" {
		return "", fmt.Errorf("cannot expand %q: home directory unknown", pattern)
	}
	if pattern == "~" {
		return homeDir, nil
	}
	if rest, ok := strings.CutPrefix(pattern, "~/"); ok {
		return filepath.Join(homeDir, rest), nil
	}
	// "~user" expansion is not supported; leave the pattern untouched.
	return pattern, nil
}
