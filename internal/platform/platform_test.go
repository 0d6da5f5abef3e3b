package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMatchesRuntime(t *testing.T) {
	p := Detect()
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, MacOS, p)
	case "linux":
		assert.Equal(t, Linux, p)
	default:
		assert.Equal(t, Unknown, p)
	}
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	require.NoError(t, err)

	assert.NotEmpty(t, info.HomeDir)
	assert.NotEmpty(t, info.WorkDir)
	assert.True(t, filepath.IsAbs(info.WorkDir))
}

func TestMacOSInfoCachePaths(t *testing.T) {
	info := getMacOSInfo("/Users/tester")

	assert.Equal(t, MacOS, info.OS)
	assert.NotEmpty(t, info.XcodeCaches)
	assert.NotEmpty(t, info.BrewCaches)

	for _, path := range info.XcodeCaches {
		assert.True(t, strings.HasPrefix(path, "/Users/tester/"), path)
	}

	joined := strings.Join(info.XcodeCaches, " ")
	assert.Contains(t, joined, "DerivedData")
	assert.Contains(t, joined, "org.swift.swiftpm")
}

func TestLinuxInfoCachePaths(t *testing.T) {
	info := getLinuxInfo("/home/tester")

	assert.Equal(t, Linux, info.OS)
	assert.Empty(t, info.XcodeCaches)
	assert.NotEmpty(t, info.BrewCaches)
}
