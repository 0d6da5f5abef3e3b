package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{"user cache", "/home/tester/.cache/Homebrew", true},
		{"project target", "/home/tester/svc/target", true},
		{"deep under usr", "/usr/local/Homebrew/Library/Logs", true},
		{"directly under usr", "/usr/bin", true},
		{"root", "/", false},
		{"etc", "/etc", false},
		{"macos system", "/System", false},
		{"relative", "relative/target", false},
		{"traversal to protected", "/home/../etc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCriticalChild(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		critical bool
	}{
		{"directly under usr", "/usr/bin", true},
		{"directly under etc", "/etc/passwd", true},
		{"directly under root home", "/root/node_modules", true},
		{"deep under usr", "/usr/local/Homebrew/Library/Logs", false},
		{"user cache", "/home/tester/.cache/Homebrew", false},
		{"project target", "/home/tester/svc/target", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.critical, criticalChild(tt.path))
		})
	}
}
