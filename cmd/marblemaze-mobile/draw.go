//go:build android || ios

package main

import (
	"math"

	"golang.org/x/mobile/gl"

	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

type rgb struct{ r, g, b float32 }

var (
	colorBackground = rgb{0.07, 0.07, 0.10}
	colorWall       = rgb{0.55, 0.55, 0.62}
	colorVortex     = rgb{0.55, 0.20, 0.75}
	colorStar       = rgb{0.98, 0.82, 0.20}
	colorFinish     = rgb{0.25, 0.80, 0.35}
	colorPlayer     = rgb{0.90, 0.90, 0.95}
	colorDying      = rgb{0.60, 0.45, 0.70}
)

// fillBox clears the pixels covered by b in the given colour. Scissored
// clears draw axis-aligned boxes without any shader setup.
func (v viewport) fillBox(glctx gl.Context, b core.Box, c rgb) {
	x, y, w, h, ok := v.rect(b)
	if !ok {
		return
	}
	glctx.Scissor(x, y, w, h)
	glctx.ClearColor(c.r, c.g, c.b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
}

func draw(glctx gl.Context, v viewport, w *maze.World) {
	glctx.Disable(gl.SCISSOR_TEST)
	glctx.ClearColor(colorBackground.r, colorBackground.g, colorBackground.b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	if v.scale == 0 {
		return
	}
	glctx.Enable(gl.SCISSOR_TEST)
	defer glctx.Disable(gl.SCISSOR_TEST)

	for _, e := range w.Entities() {
		size := e.Body.Width
		if e.Body.Shape == maze.ShapeCircle {
			size = e.Body.Radius * 2
		}
		var c rgb
		switch e.Kind {
		case maze.KindWall:
			c = colorWall
		case maze.KindVortex:
			c = colorVortex
			size *= 0.85 + 0.1*math.Sin(e.Spin(w.TickCount(), tickRate))
		case maze.KindStar:
			c = colorStar
			size *= 0.6
		case maze.KindFinish:
			c = colorFinish
		default:
			continue
		}
		v.fillBox(glctx, core.BoxAt(e.Position, size, size), c)
	}

	p := w.Player()
	size := p.Radius * 2
	c := colorPlayer
	if !p.Alive {
		c = colorDying
		size *= 1 - w.DeathProgress()
	}
	v.fillBox(glctx, core.BoxAt(w.DisplayPosition(), size, size), c)
}
