package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reclaimdev/reclaim/internal/cleaner"
	"github.com/reclaimdev/reclaim/internal/docker"
	"github.com/reclaimdev/reclaim/internal/progress"
	"github.com/reclaimdev/reclaim/internal/reporter"
	"github.com/reclaimdev/reclaim/internal/scanner"
	"github.com/reclaimdev/reclaim/internal/ui"
	"github.com/reclaimdev/reclaim/pkg/utils"
)

var (
	runTypes   []string
	runAll     bool
	runYes     bool
	runCurrent bool
	runVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Scan and delete reclaimable caches and build artifacts",
	Long: `Scans the given paths (default: ~/Desktop), lets you pick which
categories to clean, shows exactly what will be removed, and deletes it
after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, matcher, err := setup()
		if err != nil {
			return err
		}

		categories, err := resolveCategories(runTypes)
		if err != nil {
			return err
		}
		roots := resolveRoots(env, args, runCurrent)
		debugf("cleaning roots %v", roots)

		tracker := progress.NewReporter()
		engine := scanner.NewEngine(env, matcher, tracker)

		var report *scanner.ScanReport
		err = ui.RunWithProgress(tracker, "Scanning", func() error {
			var scanErr error
			report, scanErr = engine.Scan(categories, roots, runVerbose, runCurrent)
			return scanErr
		})
		if err != nil {
			tracker.Close()
			return fmt.Errorf("scan failed: %w", err)
		}

		if report.IsEmpty() {
			tracker.Close()
			fmt.Println("Nothing to reclaim.")
			return nil
		}

		// Explicit --type or --all skips the interactive picker.
		selected := report.Categories()
		if !runAll && len(runTypes) == 0 {
			selected, err = ui.SelectCategories(report)
			if errors.Is(err, ui.ErrCancelled) {
				tracker.Close()
				fmt.Println("Cancelled, nothing deleted.")
				return nil
			}
			if err != nil {
				tracker.Close()
				return err
			}
		}

		subset := report.Subset(selected)
		if subset.IsEmpty() {
			tracker.Close()
			fmt.Println("Nothing to reclaim.")
			return nil
		}

		rptr := reporter.New(os.Stdout, reporter.FormatSummary, env.HomeDir)
		rptr.DeletionPlan(subset, runVerbose)

		if !runYes && !ui.ConfirmDeletion(subset.TotalSize()) {
			tracker.Close()
			fmt.Println("Cancelled, nothing deleted.")
			return nil
		}

		// Docker space is reclaimed through the docker CLI; everything else
		// is deleted from the filesystem. The two proceed concurrently.
		var fsItems []scanner.ScanItem
		dockerSelected := false
		for _, item := range subset.Items() {
			if item.Category == scanner.CategoryDocker {
				dockerSelected = true
				continue
			}
			fsItems = append(fsItems, item)
		}

		clnr := cleaner.New(matcher, tracker)
		var result *cleaner.Result

		err = ui.RunWithProgress(tracker, "Cleaning", func() error {
			g := new(errgroup.Group)
			g.Go(func() error {
				var delErr error
				result, delErr = clnr.DeleteItems(fsItems, runVerbose)
				return delErr
			})
			if dockerSelected {
				g.Go(func() error {
					if err := docker.Cleanup(runVerbose); err != nil {
						if errors.Is(err, docker.ErrUnavailable) {
							color.Yellow("Warning: docker is not available, skipping")
							return nil
						}
						return err
					}
					return nil
				})
			}
			return g.Wait()
		})
		tracker.Close()
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		fmt.Printf("Done. Deleted %d item(s)", result.DeletedItems)
		if result.SkippedItems > 0 {
			fmt.Printf(", skipped %d excluded item(s)", result.SkippedItems)
		}
		fmt.Printf(", reclaimed up to %s.\n", utils.FormatBytes(subset.TotalSize()))
		return nil
	},
}

func init() {
	runCmd.Flags().StringArrayVarP(&runTypes, "type", "t", nil,
		"limit to categories (xcode, python, rust, nodejs, brew, docker); repeatable")
	runCmd.Flags().BoolVarP(&runAll, "all", "a", false,
		"clean every discovered category without prompting for a selection")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false,
		"skip the deletion confirmation prompt")
	runCmd.Flags().BoolVarP(&runCurrent, "current", "c", false,
		"clean only the current directory")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false,
		"show per-item paths and warnings")
}
