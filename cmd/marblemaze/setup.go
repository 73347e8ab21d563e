package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/physics"
	"github.com/vovakirdan/marble-maze/internal/registry"
)

// openCatalog returns the built-in levels plus the --levels directory.
func openCatalog(extraDir string) (*registry.Catalog, error) {
	cat := registry.Default()
	if extraDir != "" {
		if err := cat.AddDir(extraDir); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// resolveConfig loads the maze config, applies the difficulty preset and
// selects level. A manifest spawn for the level overrides the configured one.
func resolveConfig(cat *registry.Catalog, path, difficulty, level string) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(path)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplyMazePreset(&cfg, preset)
	} else if difficulty != "" {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", difficulty)
	}

	if level != "" {
		cfg.Level.Name = level
	}
	info, ok := cat.Info(cfg.Level.Name)
	if !ok {
		return cfg, fmt.Errorf("unknown level %q, run 'marblemaze list' to see available levels", cfg.Level.Name)
	}
	if info.Spawn != nil {
		cfg.Spawn = config.SpawnConfig{X: info.Spawn.X, Y: info.Spawn.Y}
	}
	return cfg, nil
}

// newGame wires a maze game to the catalog and the resolv physics engine.
func newGame(cfg config.MazeConfig, cat *registry.Catalog, inputs maze.Inputs, logger *log.Logger) *maze.Game {
	return maze.New(cfg,
		maze.WithLevelSource(cat),
		maze.WithEngineFactory(physics.Factory(cfg.Physics)),
		maze.WithInputs(inputs),
		maze.WithLogger(logger),
	)
}

// newLogger builds a logger in the style used across the commands.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// applyInput overrides the configured steering strategy. The bridge input
// is only accepted where a sensor bridge can be started.
func applyInput(cfg *config.MazeConfig, input string, allowBridge bool) error {
	switch input {
	case "":
	case inputBridge:
		if !allowBridge {
			return fmt.Errorf("input %q is only available with 'marblemaze play'", input)
		}
		cfg.Input.Strategy = config.StrategyAccelerometer
	case config.StrategyAccelerometer, config.StrategyPointer:
		cfg.Input.Strategy = input
	default:
		return fmt.Errorf("unknown input %q (want accelerometer, pointer or bridge)", input)
	}
	return nil
}

// openLogOutput returns where game logs go. The TUI owns the terminal, so
// that is a file or nowhere.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// levelSummary describes a level for listings, e.g. "12x9, 3 stars".
func levelSummary(cat *registry.Catalog, name string) (string, error) {
	lvl, err := maze.LoadLevel(cat, name, maze.DefaultCellSize)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%dx%d, %d stars, %d vortices",
		lvl.Cols, lvl.Rows, lvl.Count(maze.KindStar), lvl.Count(maze.KindVortex)), nil
}
