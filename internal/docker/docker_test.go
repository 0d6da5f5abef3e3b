package docker

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDF = `TYPE            TOTAL     ACTIVE    SIZE      RECLAIMABLE
Images          12        3         11.63GB   9.2GB (79%)
Containers      5         1         508.8kB   508.8kB (100%)
Local Volumes   4         2         1.5GB     750MB (50%)
Build Cache     89        0         2GB       2GB
`

func stubCommand(t *testing.T, name string, args ...string) {
	t.Helper()
	original := execCommand
	execCommand = func(string, ...string) *exec.Cmd {
		return exec.Command(name, args...)
	}
	t.Cleanup(func() { execCommand = original })
}

func TestParseReclaimable(t *testing.T) {
	// docker system df prints decimal (SI) units.
	kb, gb := float64(1e3), float64(1e9)

	tests := []struct {
		name     string
		line     string
		expected int64
		ok       bool
	}{
		{"with percent suffix", "Images 12 3 11.63GB 9.2GB (79%)", int64(9.2 * gb), true},
		{"without percent suffix", "Build Cache 89 0 2GB 2GB", 2 * 1e9, true},
		{"kilobytes", "Containers 5 1 508.8kB 508.8kB (100%)", int64(508.8 * kb), true},
		{"zero", "Images 0 0 0B 0B", 0, true},
		{"empty line", "", 0, false},
		{"no size token", "Images twelve things (??%)", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseReclaimable(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSumReclaimable(t *testing.T) {
	kb, mb, gb := float64(1e3), float64(1e6), float64(1e9)
	expected := int64(9.2*gb) +
		int64(508.8*kb) +
		int64(750*mb) +
		int64(2*gb)
	assert.Equal(t, expected, sumReclaimable(sampleDF))
}

func TestSumReclaimableIgnoresUnknownRows(t *testing.T) {
	output := `TYPE TOTAL ACTIVE SIZE RECLAIMABLE
Something 1 1 5GB 5GB
Images 1 1 1GB garbage
`
	// Unknown labels and unparseable rows contribute nothing.
	assert.Equal(t, int64(0), sumReclaimable(output))
}

func TestIsAvailable(t *testing.T) {
	stubCommand(t, "true")
	assert.True(t, IsAvailable())

	stubCommand(t, "false")
	assert.False(t, IsAvailable())
}

func TestQueryReclaimableUnavailableIsZero(t *testing.T) {
	stubCommand(t, "false")

	total, err := QueryReclaimable(false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCleanupUnavailable(t *testing.T) {
	stubCommand(t, "false")
	assert.ErrorIs(t, Cleanup(false), ErrUnavailable)
}

func TestCleanupRunsSequence(t *testing.T) {
	stubCommand(t, "true")
	assert.NoError(t, Cleanup(false))
}

func TestListTargetsUnavailable(t *testing.T) {
	stubCommand(t, "false")
	assert.Empty(t, ListTargets())
}
