package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded YAML and DefaultMazeConfig disagree:\n%+v\n%+v", cfg, DefaultMazeConfig())
	}
}

func TestLoadMazeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("input:\n  strategy: pointer\ngameplay:\n  lives: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Input.Strategy != StrategyPointer {
		t.Errorf("strategy = %q, expected pointer", cfg.Input.Strategy)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	// Untouched sections keep defaults.
	if cfg.Level.CellSize != 64 || cfg.Input.PointerDivisor != 100 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadMazeMissingCustomPath(t *testing.T) {
	_, err := LoadMaze(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMazeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero cell size", "level:\n  cell_size: 0\n"},
		{"unknown strategy", "input:\n  strategy: gyroscope\n"},
		{"zero divisor", "input:\n  pointer_divisor: 0\n"},
		{"negative divisor", "input:\n  pointer_divisor: -100\n"},
		{"zero accel scale", "input:\n  accel_scale: 0\n"},
		{"negative accel scale", "input:\n  accel_scale: -50\n"},
		{"negative lives", "gameplay:\n  lives: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "maze.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadMaze(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("hard preset lives = %d, expected 3", cfg.Gameplay.Lives)
	}

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyNormal)
	if cfg != DefaultMazeConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("fixed") != "" {
		t.Error("unknown presets should map to empty")
	}
}
