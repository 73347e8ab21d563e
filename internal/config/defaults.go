package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration. It mirrors
// defaults/maze.yaml and is used when the embedded YAML cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Level: LevelConfig{
			Name:     "level1",
			CellSize: 64,
		},
		Sprites: SpriteConfig{
			Wall:   64,
			Vortex: 64,
			Star:   64,
			Finish: 64,
			Player: 48,
		},
		Spawn: SpawnConfig{
			X: 96,
			Y: 672,
		},
		Physics: PhysicsConfig{
			GravityScale:  150,
			LinearDamping: 0.5,
			Restitution:   0.2,
			MaxSpeed:      900,
		},
		Input: InputConfig{
			Strategy:       StrategyAccelerometer,
			AccelScale:     50,
			PointerDivisor: 100,
			TiltStep:       0.1,
		},
		Gameplay: GameplayConfig{
			RespawnDelayTicks: 15, // 0.25s at 60 ticks per second
			Lives:             0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
