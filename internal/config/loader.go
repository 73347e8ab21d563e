package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.marblemaze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
//
// An explicit path must exist and parse. The fallback locations are skipped
// silently when they are missing or broken.
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, candidate := range searchPaths("maze.yaml") {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultMazeYAML); err == nil {
		return cfg, nil
	}
	return DefaultMazeConfig(), nil
}

// parse decodes YAML on top of the defaults so that partial files only
// override what they mention, then validates the result.
func parse(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// Validate checks values the game cannot run with.
func (c MazeConfig) Validate() error {
	if c.Level.CellSize <= 0 {
		return fmt.Errorf("%w: level.cell_size must be positive, got %v", ErrInvalidConfig, c.Level.CellSize)
	}
	if c.Sprites.Player <= 0 {
		return fmt.Errorf("%w: sprites.player must be positive", ErrInvalidConfig)
	}
	switch c.Input.Strategy {
	case StrategyAccelerometer, StrategyPointer:
	default:
		return fmt.Errorf("%w: unknown input.strategy %q", ErrInvalidConfig, c.Input.Strategy)
	}
	if c.Input.PointerDivisor <= 0 {
		return fmt.Errorf("%w: input.pointer_divisor must be positive, got %v", ErrInvalidConfig, c.Input.PointerDivisor)
	}
	if c.Input.AccelScale <= 0 {
		return fmt.Errorf("%w: input.accel_scale must be positive, got %v", ErrInvalidConfig, c.Input.AccelScale)
	}
	if c.Gameplay.RespawnDelayTicks < 0 || c.Gameplay.Lives < 0 {
		return fmt.Errorf("%w: gameplay values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// searchPaths lists the fallback locations for a config file, user
// directory first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".marblemaze", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}
