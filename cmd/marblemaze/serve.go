package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeInput  string
)

var serveCmd = &cobra.Command{
	Use:   "serve [level]",
	Short: "Start the marble maze SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session of the selected level with its own
board, inputs and score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.marblemaze/host_key

Examples:
  marblemaze serve                           # Listen on :23234 with auto-generated key
  marblemaze serve level2 --ssh :2222        # Serve level2 on port 2222
  marblemaze serve --host-key ./my_host_key  # Use specific host key
  marblemaze serve --input pointer           # Steer with the mouse

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeInput, "input", "", "Input: accelerometer or pointer (default from config)")
}

func runServe(_ *cobra.Command, args []string) {
	level := ""
	if len(args) > 0 {
		level = args[0]
	}

	cat, err := openCatalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mazeCfg, err := resolveConfig(cat, flagConfig, flagDifficulty, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyInput(&mazeCfg, flagServeInput, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	logger := newLogger(os.Stderr, "marblemaze-ssh")
	factory := func(_ string, sessLogger *log.Logger) core.Game {
		return newGame(mazeCfg, cat, maze.NewInputs(), sessLogger)
	}

	server, err := tui.NewSSHServer(cfg, factory, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting marble maze SSH server on %s (level %s)\n", cfg.Address, mazeCfg.Level.Name)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
