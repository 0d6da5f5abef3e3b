package platform

import (
	"os"
	"os/user"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// Info carries the ambient process state the scan and delete paths need.
// It is captured once at startup and threaded through explicitly so that
// tests can construct a hermetic Info instead of touching globals.
type Info struct {
	OS       Platform
	HomeDir  string
	WorkDir  string
	Username string

	// XcodeCaches are global Xcode/SwiftPM cache locations that are safe
	// to remove wholesale.
	XcodeCaches []string

	// BrewCaches are global Homebrew cache and log locations.
	BrewCaches []string
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information for the current process.
func GetInfo() (*Info, error) {
	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var info *Info
	switch Detect() {
	case MacOS:
		info = getMacOSInfo(currentUser.HomeDir)
	case Linux:
		info = getLinuxInfo(currentUser.HomeDir)
	default:
		info = &Info{OS: Unknown, HomeDir: currentUser.HomeDir}
	}

	info.WorkDir = workDir
	info.Username = currentUser.Username
	return info, nil
}
