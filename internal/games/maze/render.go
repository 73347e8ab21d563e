package maze

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/marble-maze/internal/core"
)

// Tile glyphs. Each tile is two screen cells wide so the maze keeps a
// roughly square aspect in a terminal.
const (
	WallGlyph   = "██"
	StarGlyph   = "<>"
	FinishGlyph = "[]"
	PlayerGlyph = '●'
)

// VortexFrames are drawn in turn as the vortex spins.
var VortexFrames = []string{"◴◴", "◷◷", "◶◶", "◵◵"}

// dyingGlyphs shrink the ball while it is pulled into a vortex.
var dyingGlyphs = []rune{'●', '•', '·'}

const tileChars = 2

// layout maps world coordinates to screen cells. Row 0 of the screen is the
// HUD; the maze is centred in the rest.
type layout struct {
	offX, offY int
	rows, cols int
	cell       float64
	tooSmall   bool
}

func newLayout(level *Level, screenW, screenH int) layout {
	l := layout{rows: level.Rows, cols: level.Cols, cell: level.CellSize}
	mapW := level.Cols * tileChars
	l.tooSmall = screenW < mapW || screenH < level.Rows+1
	l.offX = max(0, (screenW-mapW)/2)
	l.offY = 1 + max(0, (screenH-1-level.Rows)/2)
	return l
}

// tileOrigin returns the screen cell of the left half of a tile.
func (l layout) tileOrigin(col, row int) (int, int) {
	return l.offX + col*tileChars, l.offY + l.rows - 1 - row
}

func (l layout) toScreen(p core.Vec2) (int, int) {
	col := int(math.Floor(p.X / l.cell * tileChars))
	row := int(math.Floor(p.Y / l.cell))
	return l.offX + col, l.offY + l.rows - 1 - row
}

// toWorld returns the world point at the centre of a screen cell.
func (l layout) toWorld(col, row int) core.Vec2 {
	x := (float64(col-l.offX) + 0.5) * l.cell / tileChars
	y := (float64(l.rows-1-(row-l.offY)) + 0.5) * l.cell
	return core.V(x, y)
}

// Render draws the maze, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		msg := "Level could not be loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorOverlay)
		return
	}

	w := g.world
	l := g.layout
	if l.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorOverlay)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", l.cols*tileChars, l.rows+1), core.ColorOverlay)
		return
	}

	tickRate := g.runtime.TickRate
	for _, e := range w.Entities() {
		x, y := l.tileOrigin(e.Col, e.Row)
		switch e.Kind {
		case KindWall:
			dst.DrawTextColored(x, y, WallGlyph, core.ColorWall)
		case KindStar:
			dst.DrawTextColored(x, y, StarGlyph, core.ColorStar)
		case KindFinish:
			dst.DrawTextColored(x, y, FinishGlyph, core.ColorFinish)
		case KindVortex:
			turn := e.Spin(w.TickCount(), tickRate) / (2 * math.Pi)
			frame := int(turn*float64(len(VortexFrames))) % len(VortexFrames)
			dst.DrawTextColored(x, y, VortexFrames[frame], core.ColorVortex)
		}
	}

	px, py := l.toScreen(w.DisplayPosition())
	if w.Player().Alive {
		dst.SetColored(px, py, PlayerGlyph, core.ColorPlayer)
	} else if w.Session().State != StateLost {
		i := int(w.DeathProgress() * float64(len(dyingGlyphs)))
		if i < len(dyingGlyphs) {
			dst.SetColored(px, py, dyingGlyphs[i], core.ColorPlayerDying)
		}
	}

	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	s := w.Session()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorHUD)

	right := fmt.Sprintf("Stars: %d/%d", w.Level().Count(KindStar)-w.StarsLeft(), w.Level().Count(KindStar))
	if s.LivesLeft >= 0 {
		right = fmt.Sprintf("Lives: %d  %s", s.LivesLeft, right)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorHUD)

	switch {
	case s.State == StateWon:
		drawPanel(dst, fmt.Sprintf("FINISHED! Score: %d", s.Score), "Press R to play again")
	case s.State == StateLost:
		drawPanel(dst, "LOST IN THE VORTEX", "Press R to try again")
	case g.paused:
		drawPanel(dst, "PAUSED")
	}
}

// drawPanel draws a framed message box in the middle of the screen,
// blanking the board behind it.
func drawPanel(dst *core.Screen, lines ...string) {
	inner := 0
	for _, line := range lines {
		inner = max(inner, utf8.RuneCountInString(line))
	}
	w := core.Clamp(inner+4, 0, dst.Width())
	h := core.Clamp(len(lines)+2, 0, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorOverlay)
	for i, line := range lines {
		dst.DrawTextCentered(r.Y+1+i, line, core.ColorOverlay)
	}
}
