// marblemaze is a tilt-controlled marble maze for the terminal.
//
// Usage:
//
//	marblemaze list              - List available levels
//	marblemaze play [level]      - Play a level
//	marblemaze menu              - Pick levels interactively
//	marblemaze inspect <level>   - Show the entities of a level
//	marblemaze serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Custom maze config YAML
//	--levels <dir>      - Extra level directory
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marblemaze",
	Short: "Marble Maze - roll a marble through a maze in your terminal",
	Long: `Marble Maze is a tilt-controlled maze game. Tilt the board to roll the
marble, collect stars, avoid vortices and reach the finish.

Available commands:
  list     - Show all available levels
  play     - Play a level
  menu     - Interactive level picker
  inspect  - Show the parsed entities of a level
  serve    - Start SSH server for remote play

Examples:
  marblemaze list
  marblemaze play level2
  marblemaze menu
  marblemaze play --input pointer
  marblemaze play --input bridge
  marblemaze serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra levels (*.txt, optional levels.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}
