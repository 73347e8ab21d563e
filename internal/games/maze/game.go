package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
)

// Game adapts a World to the core.Game loop used by the front ends: it
// owns level loading, keyboard tilt, pointer mapping, pause and restart.
type Game struct {
	cfg      config.MazeConfig
	levels   LevelSource
	engines  EngineFactory
	steering Steering // Injected strategy; nil means build from cfg.Input
	logger   *log.Logger
	inputs   Inputs

	runtime     core.RuntimeConfig
	world       *World
	tilt        *Tilt
	layout      layout
	paused      bool
	lastPointer core.PointerState
	err         error
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its world.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithLevelSource sets where named levels are read from.
func WithLevelSource(src LevelSource) Option {
	return func(g *Game) {
		g.levels = src
	}
}

// WithEngineFactory sets how a physics engine is created for each level.
func WithEngineFactory(f EngineFactory) Option {
	return func(g *Game) {
		g.engines = f
	}
}

// WithSteering fixes the steering strategy instead of building the one
// named in the config.
func WithSteering(s Steering) Option {
	return func(g *Game) {
		g.steering = s
	}
}

// WithInputs shares input cells with external sources such as the sensor
// bridge.
func WithInputs(in Inputs) Option {
	return func(g *Game) {
		g.inputs = in
	}
}

// New creates a game for cfg. Reset must be called before the first Step.
func New(cfg config.MazeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		inputs: NewInputs(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "marblemaze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Marble Maze"
}

// Reset loads the configured level and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.paused = false
	g.lastPointer = core.PointerState{}
	g.world = nil

	err := g.reset()
	g.err = err
	if err != nil {
		g.logger.Error("reset failed", "level", g.cfg.Level.Name, "err", err)
	}
	return err
}

func (g *Game) reset() error {
	if g.engines == nil {
		return errors.New("maze: no physics engine configured")
	}

	level, err := LoadLevel(g.levels, g.cfg.Level.Name, g.cfg.Level.CellSize, WithSprites(SpritesFrom(g.cfg.Sprites)))
	if err != nil {
		return err
	}

	steering := g.steering
	if steering == nil {
		steering, err = NewSteering(g.cfg.Input, g.inputs)
		if err != nil {
			return err
		}
	}

	g.tilt = NewTilt(g.inputs.Accel, g.cfg.Input.TiltStep)
	g.inputs.Pointer.Store(Pointer{})

	world, err := NewWorld(level, g.engines(level), steering, WorldOptions{
		Spawn:        core.V(g.cfg.Spawn.X, g.cfg.Spawn.Y),
		RespawnDelay: g.cfg.Gameplay.RespawnDelayTicks,
		Lives:        g.cfg.Gameplay.Lives,
		Logger:       g.logger,
	})
	if err != nil {
		return fmt.Errorf("maze: start level %q: %w", level.Name, err)
	}
	g.world = world
	g.layout = newLayout(level, g.runtime.ScreenW, g.runtime.ScreenH)
	return nil
}

// Resize recomputes the screen layout without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.world != nil {
		g.layout = newLayout(g.world.Level(), w, h)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		_ = g.Reset(g.runtime) // error is kept in g.err and rendered
		return core.StepResult{State: g.State()}
	}
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.Session().State.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tilt.Apply(in)
	if in.Pointer != g.lastPointer {
		g.lastPointer = in.Pointer
		g.inputs.Pointer.Store(Pointer{
			Position: g.layout.toWorld(in.Pointer.Col, in.Pointer.Row),
			Active:   in.Pointer.Active,
		})
	}

	g.world.Tick(g.runtime.TickSeconds())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	s := g.world.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.State.Terminal(),
		Won:      s.State == StateWon,
		Paused:   g.paused,
	}
}

// World returns the running world, or nil if Reset failed.
func (g *Game) World() *World {
	return g.world
}

// Inputs returns the cells external input sources write into.
func (g *Game) Inputs() Inputs {
	return g.inputs
}

// Tilt returns the keyboard virtual accelerometer attitude.
func (g *Game) Tilt() Accel {
	if g.tilt == nil {
		return Accel{}
	}
	return g.tilt.Current()
}

// Err returns the error of the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}
