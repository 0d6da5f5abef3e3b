package platform

import "path/filepath"

// getLinuxInfo returns platform-specific cache locations for Linux.
// There is no Xcode on Linux; Homebrew may live under linuxbrew.
func getLinuxInfo(homeDir string) *Info {
	return &Info{
		OS:      Linux,
		HomeDir: homeDir,
		BrewCaches: []string{
			filepath.Join(homeDir, ".cache/Homebrew"),
			"/home/linuxbrew/.linuxbrew/Homebrew/Library/Homebrew/cache",
		},
	}
}
