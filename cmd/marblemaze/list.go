package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus any found in the --levels directory,
with their size and how many stars and vortices they contain.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	cat, err := openCatalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	levels := cat.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxTitleLen := 5
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-7s  %5s  %8s\n", maxNameLen, "Name", maxTitleLen, "Title", "Size", "Stars", "Vortices")
	fmt.Printf("  %-*s  %-*s  %-7s  %5s  %8s\n", maxNameLen, "----", maxTitleLen, "-----", "----", "-----", "--------")

	// Print levels
	for _, l := range levels {
		lvl, err := maze.LoadLevel(cat, l.Name, maze.DefaultCellSize)
		if err != nil {
			fmt.Printf("  %-*s  %-*s  (unreadable: %v)\n", maxNameLen, l.Name, maxTitleLen, l.Title, err)
			continue
		}
		size := fmt.Sprintf("%dx%d", lvl.Cols, lvl.Rows)
		fmt.Printf("  %-*s  %-*s  %-7s  %5d  %8d\n", maxNameLen, l.Name, maxTitleLen, l.Title,
			size, lvl.Count(maze.KindStar), lvl.Count(maze.KindVortex))
	}

	fmt.Println()
	fmt.Println("Run 'marblemaze play <name>' to play a level.")
}
