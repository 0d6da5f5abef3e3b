package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reclaimdev/reclaim/internal/progress"
	"github.com/reclaimdev/reclaim/internal/testutil"
)

func TestComputeSizesFillsUnmeasured(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := f.CreateDir("cache")
	f.CreateFile("cache/a.bin", 120)
	f.CreateFile("cache/sub/b.bin", 80)
	file := f.CreateFile("single.log", 40)

	items := []ScanItem{
		DirectoryItem(CategoryBrew, dir),
		FileItem(CategoryBrew, file),
		MeasuredItem(CategoryDocker, "docker:prune", 9999),
	}

	ComputeSizes(items, nil, false, nil)

	assert.True(t, items[0].Measured)
	assert.Equal(t, int64(200), items[0].Size)
	assert.True(t, items[1].Measured)
	assert.Equal(t, int64(40), items[1].Size)
	// Pre-measured items are never re-measured.
	assert.Equal(t, int64(9999), items[2].Size)
}

func TestComputeSizesVanishedFileStaysUnmeasured(t *testing.T) {
	items := []ScanItem{FileItem(CategoryBrew, "/does/not/exist.log")}

	ComputeSizes(items, nil, false, nil)

	assert.False(t, items[0].Measured)
	assert.Equal(t, int64(0), items[0].Size)
}

func TestComputeSizesPublishesProgress(t *testing.T) {
	f := testutil.NewFixture(t)
	file := f.CreateFile("a.log", 10)

	reporter := progress.NewReporter()
	updates := reporter.Subscribe()

	ComputeSizes([]ScanItem{FileItem(CategoryBrew, file)}, nil, false, reporter)
	reporter.Close()

	var sizing int
	for u := range updates {
		if u.Phase == progress.PhaseSizing {
			sizing++
			assert.Equal(t, 1, u.ItemsTotal)
		}
	}
	assert.Equal(t, 1, sizing)
}
