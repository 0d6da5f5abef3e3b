package scanner

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/testutil"
)

func mustMatcher(t *testing.T, patterns []string, workDir string) *exclude.Matcher {
	t.Helper()
	m, err := exclude.New(patterns, "/home/tester", workDir)
	require.NoError(t, err)
	return m
}

func TestWalkTargetsFindsNamedDirs(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateNodeProject("app", 100)
	f.CreateNodeProject(filepath.Join("nested", "deeper", "web"), 100)
	f.CreateFile("app/src/index.js", 10)

	var found []string
	walkTargets(f.Root, map[string]struct{}{"node_modules": {}}, nil, false, func(path string) {
		found = append(found, path)
	})

	assert.ElementsMatch(t, []string{
		f.Path("app/node_modules"),
		f.Path("nested/deeper/web/node_modules"),
	}, found)
}

func TestWalkTargetsNestedTargetsAreOpaque(t *testing.T) {
	f := testutil.NewFixture(t)
	// A target nested inside another target must not be reported twice.
	f.CreateFile("app/node_modules/pkg/node_modules/dep/index.js", 10)

	var found []string
	walkTargets(f.Root, map[string]struct{}{"node_modules": {}}, nil, false, func(path string) {
		found = append(found, path)
	})

	assert.Equal(t, []string{f.Path("app/node_modules")}, found)
}

func TestWalkTargetsRootNameNeverMatches(t *testing.T) {
	f := testutil.NewFixture(t)
	root := f.CreateDir("target")
	f.CreateFile("target/sub/target/out.o", 10)

	var found []string
	walkTargets(root, map[string]struct{}{"target": {}}, nil, false, func(path string) {
		found = append(found, path)
	})

	// The root itself is skipped even though its name matches.
	assert.Equal(t, []string{f.Path("target/sub/target")}, found)
}

func TestWalkTargetsPrunesExcluded(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateNodeProject("keep", 10)
	f.CreateNodeProject("skip", 10)

	matcher := mustMatcher(t, []string{f.Path("skip") + "/**", f.Path("skip")}, f.Root)

	var found []string
	walkTargets(f.Root, map[string]struct{}{"node_modules": {}}, matcher, false, func(path string) {
		found = append(found, path)
	})

	assert.Equal(t, []string{f.Path("keep/node_modules")}, found)
}

func TestWalkTargetsDepthCap(t *testing.T) {
	f := testutil.NewFixture(t)

	shallow := make([]string, maxScanDepth-1)
	for i := range shallow {
		shallow[i] = "d"
	}
	f.CreateDir(filepath.Join(strings.Join(shallow, "/"), "node_modules"))

	deep := make([]string, maxScanDepth+2)
	for i := range deep {
		deep[i] = "e"
	}
	f.CreateDir(filepath.Join(strings.Join(deep, "/"), "node_modules"))

	var found []string
	walkTargets(f.Root, map[string]struct{}{"node_modules": {}}, nil, false, func(path string) {
		found = append(found, path)
	})

	require.Len(t, found, 1)
	assert.Contains(t, found[0], "d")
}

func TestDirSizeSumsRegularFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("cache/a.bin", 100)
	f.CreateFile("cache/sub/b.bin", 250)
	f.CreateDir("cache/empty")

	assert.Equal(t, int64(350), dirSize(f.Path("cache"), nil, false))
}

func TestDirSizeSkipsExcluded(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("cache/a.bin", 100)
	f.CreateFile("cache/keepme/b.bin", 250)

	matcher := mustMatcher(t, []string{f.Path("cache/keepme") + "/**", f.Path("cache/keepme")}, f.Root)

	assert.Equal(t, int64(100), dirSize(f.Path("cache"), matcher, false))
}

func TestSaturatingAdd(t *testing.T) {
	const max = int64(^uint64(0) >> 1)
	assert.Equal(t, int64(3), saturatingAdd(1, 2))
	assert.Equal(t, max, saturatingAdd(max-1, 5))
}

func TestWalkDepth(t *testing.T) {
	assert.Equal(t, 0, walkDepth("/a", "/a"))
	assert.Equal(t, 1, walkDepth("/a", "/a/b"))
	assert.Equal(t, 3, walkDepth("/a", "/a/b/c/d"))
}
