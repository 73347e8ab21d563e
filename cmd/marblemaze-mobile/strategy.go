package main

import (
	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/physics"
	"github.com/vovakirdan/marble-maze/internal/registry"
)

const tickRate = 60

// pickStrategy selects the steering strategy for the whole run. Tilt is used
// when the accelerometer can be enabled and touch otherwise. The enable error
// is returned so the caller can report why it fell back.
func pickStrategy(enableAccel func() error) (string, error) {
	if err := enableAccel(); err != nil {
		return config.StrategyPointer, err
	}
	return config.StrategyAccelerometer, nil
}

// newSessionGame builds and starts the maze with a single steering strategy.
func newSessionGame(cfg config.MazeConfig, strategy string, cat *registry.Catalog, inputs maze.Inputs) (*maze.Game, error) {
	cfg.Input.Strategy = strategy
	if info, ok := cat.Info(cfg.Level.Name); ok && info.Spawn != nil {
		cfg.Spawn = config.SpawnConfig{X: info.Spawn.X, Y: info.Spawn.Y}
	}

	g := maze.New(cfg,
		maze.WithLevelSource(cat),
		maze.WithEngineFactory(physics.Factory(cfg.Physics)),
		maze.WithInputs(inputs),
	)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate}); err != nil {
		return nil, err
	}
	return g, nil
}
