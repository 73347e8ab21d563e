package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
)

// ErrUnknownStrategy is returned for an input strategy name that is not
// supported.
var ErrUnknownStrategy = errors.New("unknown input strategy")

// Accel is one accelerometer sample in device axes, in units of g.
type Accel struct {
	X, Y, Z float64
}

// Pointer is the latest pointer state in world coordinates.
type Pointer struct {
	Position core.Vec2
	Active   bool
}

// Steering turns the latest input sample into the steering vector for a
// tick. One strategy is chosen per session.
type Steering interface {
	Sample(player core.Vec2) core.Vec2
}

// AccelerometerSteering maps device tilt to a steering vector. The device is
// held in landscape, so device Y drives world X (inverted) and device X
// drives world Y.
type AccelerometerSteering struct {
	samples *core.Latest[Accel]
	scale   float64
	last    core.Vec2
}

// NewAccelerometerSteering reads samples from cell. scale <= 0 uses 50.
func NewAccelerometerSteering(cell *core.Latest[Accel], scale float64) *AccelerometerSteering {
	if scale <= 0 {
		scale = 50
	}
	return &AccelerometerSteering{samples: cell, scale: scale}
}

// Sample returns the vector for the freshest sample, or the previous vector
// when nothing new arrived since the last tick.
func (s *AccelerometerSteering) Sample(core.Vec2) core.Vec2 {
	a, fresh := s.samples.Take()
	if fresh {
		s.last = core.V(a.Y*-s.scale, a.X*s.scale)
	}
	return s.last
}

// PointerSteering pulls the ball towards the pointer while it is held down.
type PointerSteering struct {
	pointer *core.Latest[Pointer]
	divisor float64
}

// NewPointerSteering reads pointer state from cell. divisor <= 0 uses 100.
func NewPointerSteering(cell *core.Latest[Pointer], divisor float64) *PointerSteering {
	if divisor <= 0 {
		divisor = 100
	}
	return &PointerSteering{pointer: cell, divisor: divisor}
}

// Sample returns (pointer - player) / divisor while the pointer is active
// and exactly zero otherwise.
func (s *PointerSteering) Sample(player core.Vec2) core.Vec2 {
	p, _ := s.pointer.Peek()
	if !p.Active {
		return core.Vec2{}
	}
	return p.Position.Sub(player).Div(s.divisor)
}

// Inputs bundles the cells that input sources write into.
type Inputs struct {
	Accel   *core.Latest[Accel]
	Pointer *core.Latest[Pointer]
}

// NewInputs allocates empty input cells.
func NewInputs() Inputs {
	return Inputs{
		Accel:   &core.Latest[Accel]{},
		Pointer: &core.Latest[Pointer]{},
	}
}

// NewSteering builds the strategy named in cfg over the given cells.
func NewSteering(cfg config.InputConfig, in Inputs) (Steering, error) {
	switch cfg.Strategy {
	case config.StrategyAccelerometer, "":
		return NewAccelerometerSteering(in.Accel, cfg.AccelScale), nil
	case config.StrategyPointer:
		return NewPointerSteering(in.Pointer, cfg.PointerDivisor), nil
	default:
		return nil, fmt.Errorf("maze: %w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// Tilt is a keyboard-driven virtual accelerometer. Each key press tilts the
// board by a fixed step and publishes the new attitude as a sample.
type Tilt struct {
	out  *core.Latest[Accel]
	step float64
	cur  Accel
}

// NewTilt publishes into out. step <= 0 uses 0.1 g.
func NewTilt(out *core.Latest[Accel], step float64) *Tilt {
	if step <= 0 {
		step = 0.1
	}
	return &Tilt{out: out, step: step}
}

// Apply updates the attitude for the tilt actions present in the frame.
// It publishes a sample only when something changed.
func (t *Tilt) Apply(in core.InputFrame) {
	next := t.cur
	if in.Has(core.ActionLevel) {
		next = Accel{}
	}
	// Device axes: +X rolls the ball up the screen, -Y rolls it right.
	if in.Has(core.ActionTiltUp) {
		next.X += t.step
	}
	if in.Has(core.ActionTiltDown) {
		next.X -= t.step
	}
	if in.Has(core.ActionTiltRight) {
		next.Y -= t.step
	}
	if in.Has(core.ActionTiltLeft) {
		next.Y += t.step
	}
	next.X = core.ClampF(next.X, -1, 1)
	next.Y = core.ClampF(next.Y, -1, 1)

	if next != t.cur || in.Has(core.ActionLevel) {
		t.cur = next
		t.out.Store(next)
	}
}

// Current returns the current virtual attitude.
func (t *Tilt) Current() Accel {
	return t.cur
}
