package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclaimdev/reclaim/internal/testutil"
)

// hideDocker points PATH at an empty directory so the docker binary
// cannot be resolved.
func hideDocker(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

func TestDockerScannerUnavailable(t *testing.T) {
	hideDocker(t)

	s := NewDockerScanner()
	assert.Equal(t, CategoryDocker, s.Category())

	items, err := s.Scan(nil, false)
	require.NoError(t, err)
	assert.Empty(t, items)

	targets, err := s.ListTargets(nil)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestEngineScanDockerUnavailableCategoryAbsent(t *testing.T) {
	hideDocker(t)

	f := testutil.NewFixture(t)
	f.CreateRustProject("svc", 40)

	engine := NewEngine(testEnv(f), nil, nil)
	report, err := engine.Scan(
		[]Category{CategoryRust, CategoryDocker},
		[]string{f.Root}, false, false)
	require.NoError(t, err)

	// The missing tool costs its own category, nothing else.
	assert.Nil(t, report.ReportFor(CategoryDocker))
	assert.Equal(t, int64(40), report.ReportFor(CategoryRust).TotalSize())
}
