package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/platform/sensorbridge"
	"github.com/vovakirdan/marble-maze/internal/platform/tui"
)

const inputBridge = "bridge"

var (
	flagInput      string
	flagBridgeAddr string
	flagPublicURL  string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. Without an argument the level from the config
(level1 by default) is played.

Controls:
  Arrows/WASD  - Tilt the board
  Space        - Level the board
  Mouse drag   - Pull the marble (pointer input)
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Input options:
  accelerometer - Keyboard tilt drives a virtual accelerometer (default)
  pointer       - The marble rolls towards the held mouse button
  bridge        - Stream a phone's accelerometer over the local network

Examples:
  marblemaze play
  marblemaze play level2 --difficulty hard
  marblemaze play --input pointer
  marblemaze play --input bridge --bridge :8077
  marblemaze play --log-file /tmp/maze.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagInput, "input", "", "Input: accelerometer, pointer, bridge (default from config)")
	playCmd.Flags().StringVar(&flagBridgeAddr, "bridge", ":8077", "Sensor bridge address when --input bridge")
	playCmd.Flags().StringVar(&flagPublicURL, "public-url", "", "Base URL the phone uses to reach the bridge")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, args []string) {
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

	useBridge := flagInput == inputBridge
	if err := applyInput(&mazeCfg, flagInput, true); err != nil {
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

	inputs := maze.NewInputs()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if useBridge {
		if err := startBridge(ctx, inputs.Accel, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := runtimeConfig()
	game := newGame(mazeCfg, cat, inputs, logger)
	if err := tui.Run(game, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := game.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startBridge serves the sensor page, prints the pairing link and waits for
// Enter so the player can scan it before the TUI takes the screen.
func startBridge(ctx context.Context, accel *core.Latest[maze.Accel], logger *log.Logger) error {
	bcfg := sensorbridge.DefaultConfig()
	bcfg.Address = flagBridgeAddr
	bcfg.PublicURL = flagPublicURL

	bridge, err := sensorbridge.New(bcfg, accel, logger.WithPrefix("bridge"))
	if err != nil {
		return err
	}
	go func() {
		if err := bridge.ListenAndServe(ctx); err != nil {
			logger.Error("sensor bridge stopped", "err", err)
		}
	}()

	link, err := bridge.PairingURL(uuid.NewString())
	if err != nil {
		return err
	}
	if qr, qrErr := sensorbridge.QRCode(link); qrErr == nil {
		fmt.Println(qr)
	}
	fmt.Println("Open this link on your phone (same network):")
	fmt.Println("  " + link)
	fmt.Println("Press Enter to start playing...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	return nil
}
