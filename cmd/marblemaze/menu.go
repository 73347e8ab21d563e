package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/platform/tui"
	"github.com/vovakirdan/marble-maze/internal/registry"
)

var flagMenuInput string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start marble maze in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected level.
When you quit a level you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Q            - Quit

Examples:
  marblemaze menu
  marblemaze menu --levels ./my-levels
  marblemaze menu --input pointer`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuInput, "input", "", "Input: accelerometer or pointer (default from config)")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

// menuItems lists every catalog level with a short summary.
func menuItems(cat *registry.Catalog) []tui.MenuItem {
	levels := cat.List()
	items := make([]tui.MenuItem, 0, len(levels))
	for _, l := range levels {
		detail, err := levelSummary(cat, l.Name)
		if err != nil {
			continue // Unreadable levels are reported by 'list'
		}
		items = append(items, tui.MenuItem{Name: l.Name, Title: l.Title, Detail: detail})
	}
	return items
}

func runMenu(_ *cobra.Command, _ []string) {
	cat, err := openCatalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	baseCfg, err := resolveConfig(cat, flagConfig, flagDifficulty, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyInput(&baseCfg, flagMenuInput, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := newLogger(logOut, "marblemaze")

	items := menuItems(cat)
	cfg := runtimeConfig()
	current := baseCfg.Level.Name

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(items, current, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		mazeCfg, err := resolveConfig(cat, flagConfig, flagDifficulty, menuResult.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		mazeCfg.Input = baseCfg.Input
		current = menuResult.Level

		game := newGame(mazeCfg, cat, maze.NewInputs(), logger)
		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		}

		// Loop back to menu
	}
}
