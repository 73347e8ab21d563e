package main

import (
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

// viewport maps world units to framebuffer pixels. GL and the world both
// put the origin at the bottom-left; touch events use the top-left.
type viewport struct {
	width, height int
	scale         float64
	offX, offY    float64
	levelCols     int
	levelRows     int
}

func (v *viewport) resize(w, h int, level *maze.Level) {
	v.width, v.height = w, h
	v.levelCols, v.levelRows = 0, 0
	if level != nil {
		v.fit(level)
	}
}

// fit centres the level in the framebuffer, recomputed when the level
// shape changes.
func (v *viewport) fit(l *maze.Level) {
	if l.Cols == v.levelCols && l.Rows == v.levelRows && v.scale > 0 {
		return
	}
	v.levelCols, v.levelRows = l.Cols, l.Rows
	size := l.Size()
	if size.X <= 0 || size.Y <= 0 {
		v.scale = 0
		return
	}
	v.scale = min(float64(v.width)/size.X, float64(v.height)/size.Y)
	v.offX = (float64(v.width) - size.X*v.scale) / 2
	v.offY = (float64(v.height) - size.Y*v.scale) / 2
}

func (v viewport) toWorld(px, py float32) core.Vec2 {
	if v.scale == 0 {
		return core.Vec2{}
	}
	x := (float64(px) - v.offX) / v.scale
	y := (float64(v.height) - float64(py) - v.offY) / v.scale
	return core.V(x, y)
}

// rect returns the pixel rectangle covered by b, bottom-left origin.
func (v viewport) rect(b core.Box) (x, y, w, h int32, ok bool) {
	lo, hi := b.Min(), b.Max()
	x = int32(v.offX + lo.X*v.scale)
	y = int32(v.offY + lo.Y*v.scale)
	w = int32((hi.X - lo.X) * v.scale)
	h = int32((hi.Y - lo.Y) * v.scale)
	return x, y, w, h, w > 0 && h > 0
}
