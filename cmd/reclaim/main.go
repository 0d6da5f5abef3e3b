package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reclaimdev/reclaim/internal/config"
	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/platform"
	"github.com/reclaimdev/reclaim/internal/scanner"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// EnvDebug enables diagnostic output on stderr when set to any value.
const EnvDebug = "RECLAIM_DEBUG"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reclaim",
	Short: "Reclaim disk space from developer caches and build artifacts",
	Long: `Reclaim finds and removes developer caches and build artifacts: Xcode
derived data, Python and Rust build output, node_modules, Homebrew caches,
and Docker's reclaimable storage.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

func debugf(format string, args ...any) {
	if os.Getenv(EnvDebug) != "" {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}

// setup loads the configuration and environment and compiles the exclusion
// matcher every command shares.
func setup() (*platform.Info, *exclude.Matcher, error) {
	env, err := platform.GetInfo()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to detect environment: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	debugf("loaded %d exclude pattern(s)", len(cfg.Exclude))

	matcher, err := cfg.CompileExcludes(env)
	if err != nil {
		return nil, nil, err
	}
	return env, matcher, nil
}

// resolveRoots decides where filesystem scanners look: the current
// directory with --current, explicit paths when given, otherwise the
// user's Desktop.
func resolveRoots(env *platform.Info, paths []string, current bool) []string {
	if current {
		return []string{env.WorkDir}
	}
	if len(paths) > 0 {
		roots := make([]string, 0, len(paths))
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
			roots = append(roots, p)
		}
		return roots
	}
	return []string{filepath.Join(env.HomeDir, "Desktop")}
}

// resolveCategories turns --type flags into categories; no flags means all.
func resolveCategories(names []string) ([]scanner.Category, error) {
	if len(names) == 0 {
		return scanner.AllCategories, nil
	}

	seen := make(map[scanner.Category]bool)
	var categories []scanner.Category
	for _, name := range names {
		c, err := scanner.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}
