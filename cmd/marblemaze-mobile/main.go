//go:build android || ios

// marblemaze-mobile runs the maze on a phone. The accelerometer tilts the
// board; phones without one steer by holding a finger on the screen, which
// pulls the marble towards it. The choice is made once at startup.
// Build with gomobile:
//
//	gomobile build -target=android ./cmd/marblemaze-mobile
package main

import (
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/sensor"
	"golang.org/x/mobile/gl"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
	"github.com/vovakirdan/marble-maze/internal/registry"
)

const (
	sensorDelay   = time.Second / tickRate
	standardGrav  = 9.80665
	maxFrameSteps = 5
)

type mobileGame struct {
	game     *maze.Game
	inputs   maze.Inputs
	view     viewport
	strategy string

	touchSeq  touch.Sequence
	touchDown bool
	acc       float64
}

// newMobileGame starts the maze once the steering strategy is known.
func newMobileGame(cfg config.MazeConfig, strategy string) (*mobileGame, error) {
	inputs := maze.NewInputs()
	game, err := newSessionGame(cfg, strategy, registry.Default(), inputs)
	if err != nil {
		return nil, err
	}
	return &mobileGame{game: game, inputs: inputs, strategy: strategy}, nil
}

// step runs as many fixed ticks as fit into dt.
func (g *mobileGame) step(dt float64) {
	g.acc += dt
	tick := 1.0 / tickRate
	for n := 0; g.acc >= tick && n < maxFrameSteps; n++ {
		g.game.Step(core.NewInputFrame())
		g.acc -= tick
	}
	if g.acc > tick {
		g.acc = 0
	}
}

func (g *mobileGame) handleSensor(e sensor.Event) {
	if e.Sensor != sensor.Accelerometer || len(e.Data) < 3 {
		return
	}
	a := maze.Accel{X: e.Data[0], Y: e.Data[1], Z: e.Data[2]}
	// Android reports m/s^2, iOS reports g.
	if runtime.GOOS == "android" {
		a = maze.Accel{X: a.X / standardGrav, Y: a.Y / standardGrav, Z: a.Z / standardGrav}
	}
	g.inputs.Accel.Store(a)
}

func (g *mobileGame) handleTouch(e touch.Event) {
	switch e.Type {
	case touch.TypeBegin:
		if g.game.State().GameOver {
			in := core.NewInputFrame()
			in.Set(core.ActionRestart)
			g.game.Step(in)
			return
		}
		if g.strategy != config.StrategyPointer {
			return
		}
		if !g.touchDown {
			g.touchSeq = e.Sequence
			g.touchDown = true
		}
		if e.Sequence == g.touchSeq {
			g.inputs.Pointer.Store(maze.Pointer{Position: g.view.toWorld(e.X, e.Y), Active: true})
		}
	case touch.TypeMove:
		if g.touchDown && e.Sequence == g.touchSeq {
			g.inputs.Pointer.Store(maze.Pointer{Position: g.view.toWorld(e.X, e.Y), Active: true})
		}
	case touch.TypeEnd:
		if g.touchDown && e.Sequence == g.touchSeq {
			g.touchDown = false
			g.inputs.Pointer.Store(maze.Pointer{})
		}
	}
}

func enableAccel() error {
	return sensor.Enable(sensor.Accelerometer, sensorDelay)
}

func main() {
	cfg, err := config.LoadMaze("")
	if err != nil {
		log.Fatal("cannot load config", "err", err)
	}

	app.Main(func(a app.App) {
		var (
			glctx gl.Context
			last  time.Time
			game  *mobileGame
			sz    size.Event
		)

		sensor.Notify(a)

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if game == nil {
						strategy, enableErr := pickStrategy(enableAccel)
						if enableErr != nil {
							log.Warn("accelerometer unavailable, steering by touch", "err", enableErr)
						}
						if game, err = newMobileGame(cfg, strategy); err != nil {
							log.Fatal("cannot start marble maze", "err", err)
						}
						game.view.resize(sz.WidthPx, sz.HeightPx, game.game.World().Level())
					} else if game.strategy == config.StrategyAccelerometer {
						if err := enableAccel(); err != nil {
							log.Warn("cannot re-enable accelerometer", "err", err)
						}
					}
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if game != nil && game.strategy == config.StrategyAccelerometer {
						_ = sensor.Disable(sensor.Accelerometer)
					}
					glctx = nil
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				sz = e
				if game == nil {
					continue
				}
				var level *maze.Level
				if w := game.game.World(); w != nil {
					level = w.Level()
				}
				game.view.resize(e.WidthPx, e.HeightPx, level)

			case touch.Event:
				if game != nil {
					game.handleTouch(e)
				}

			case sensor.Event:
				if game != nil {
					game.handleSensor(e)
				}

			case paint.Event:
				if glctx == nil || game == nil || game.view.width <= 0 || game.view.height <= 0 {
					continue
				}
				now := time.Now()
				game.step(now.Sub(last).Seconds())
				last = now
				if w := game.game.World(); w != nil {
					game.view.fit(w.Level())
					draw(glctx, game.view, w)
				}
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
