package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reclaimdev/reclaim/internal/config"
)

var (
	configShowPath   bool
	configEdit       bool
	configAddExclude string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration",
	Long: `Shows the current configuration. With --edit the config file opens in
your editor; with --add-exclude a glob pattern is appended to the exclude
list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.EnsureExists()
		if err != nil {
			return err
		}

		if configShowPath {
			fmt.Println(path)
			return nil
		}

		if configAddExclude != "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AppendExclude(configAddExclude) {
				fmt.Printf("Pattern %q is already excluded.\n", configAddExclude)
				return nil
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Printf("Added exclude pattern %q.\n", configAddExclude)
			return nil
		}

		if configEdit {
			return openEditor(path)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Config file: %s\n", path)
		if len(cfg.Exclude) == 0 {
			fmt.Println("No exclude patterns configured.")
			return nil
		}
		fmt.Println("Exclude patterns:")
		for _, pattern := range cfg.Exclude {
			fmt.Printf("  %s\n", pattern)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configShowPath, "path", false,
		"print the config file path and exit")
	configCmd.Flags().BoolVar(&configEdit, "edit", false,
		"open the config file in $EDITOR")
	configCmd.Flags().StringVar(&configAddExclude, "add-exclude", "",
		"append a glob pattern to the exclude list")
}

// openEditor launches $EDITOR (or $VISUAL, falling back to nano) on the
// config file. The variable may carry arguments, e.g. "code --wait".
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "nano"
	}

	parts := strings.Fields(editor)
	args := append(parts[1:], path)

	ed := exec.Command(parts[0], args...)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}
	return nil
}
