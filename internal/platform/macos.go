package platform

import "path/filepath"

// getMacOSInfo returns platform-specific cache locations for macOS
func getMacOSInfo(homeDir string) *Info {
	lib := filepath.Join(homeDir, "Library")
	return &Info{
		OS:      MacOS,
		HomeDir: homeDir,
		XcodeCaches: []string{
			filepath.Join(lib, "Developer/Xcode/DerivedData"),
			filepath.Join(lib, "Caches/com.apple.dt.Xcode"),
			filepath.Join(lib, "Developer/Xcode/DocumentationCache"),
			filepath.Join(lib, "Developer/Xcode/DocumentationIndex"),
			filepath.Join(lib, "Developer/Xcode/UserData/Previews"),
			filepath.Join(lib, "Caches/org.swift.swiftpm"),
			filepath.Join(lib, "org.swift.swiftpm"),
			filepath.Join(lib, "Developer/CoreSimulator/Caches"),
		},
		BrewCaches: []string{
			filepath.Join(lib, "Caches/Homebrew"),
			"/opt/homebrew/Library/Caches",
			"/usr/local/Homebrew/Library/Logs",
		},
	}
}
