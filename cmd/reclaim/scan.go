package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reclaimdev/reclaim/internal/progress"
	"github.com/reclaimdev/reclaim/internal/reporter"
	"github.com/reclaimdev/reclaim/internal/scanner"
	"github.com/reclaimdev/reclaim/internal/ui"
)

var (
	scanTypes   []string
	scanAll     bool
	scanCurrent bool
	scanVerbose bool
	scanList    bool
	scanFormat  string
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan for reclaimable caches and build artifacts",
	Long: `Scans the given paths (default: ~/Desktop) and reports what could be
reclaimed, without deleting anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, matcher, err := setup()
		if err != nil {
			return err
		}

		types := scanTypes
		if scanAll {
			types = nil
		}
		categories, err := resolveCategories(types)
		if err != nil {
			return err
		}
		roots := resolveRoots(env, args, scanCurrent)
		debugf("scanning roots %v", roots)

		tracker := progress.NewReporter()
		engine := scanner.NewEngine(env, matcher, tracker)

		if scanList {
			listings, err := engine.ListTargets(categories, roots, scanCurrent)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			printListings(listings, env.HomeDir)
			return nil
		}

		format, err := reporter.ParseFormat(scanFormat)
		if err != nil {
			return err
		}

		var report *scanner.ScanReport
		err = ui.RunWithProgress(tracker, "Scanning", func() error {
			var scanErr error
			report, scanErr = engine.Scan(categories, roots, scanVerbose, scanCurrent)
			return scanErr
		})
		tracker.Close()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if report.IsEmpty() {
			fmt.Println("Nothing to reclaim.")
			return nil
		}

		rptr := reporter.New(os.Stdout, format, env.HomeDir)
		return rptr.Report(report, scanVerbose)
	},
}

func init() {
	scanCmd.Flags().StringArrayVarP(&scanTypes, "type", "t", nil,
		"limit to categories (xcode, python, rust, nodejs, brew, docker); repeatable")
	scanCmd.Flags().BoolVarP(&scanAll, "all", "a", false,
		"scan every category, overriding --type")
	scanCmd.Flags().BoolVarP(&scanCurrent, "current", "c", false,
		"scan only the current directory")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"show per-item paths and warnings")
	scanCmd.Flags().BoolVarP(&scanList, "list", "l", false,
		"list what each category would target, without measuring sizes")
	scanCmd.Flags().StringVarP(&scanFormat, "output", "o", "summary",
		"output format (summary, json, yaml)")
}

func printListings(listings map[scanner.Category][]string, homeDir string) {
	if len(listings) == 0 {
		fmt.Println("Nothing to reclaim.")
		return
	}
	for _, category := range scanner.AllCategories {
		targets, ok := listings[category]
		if !ok {
			continue
		}
		fmt.Printf("%s:\n", category.DisplayName())
		for _, target := range targets {
			fmt.Printf("  %s\n", reporter.DisplayPath(target, homeDir))
		}
	}
}
