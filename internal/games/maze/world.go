package maze

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/marble-maze/internal/core"
)

// DefaultRespawnDelay is the number of ticks a player stays dead after
// falling into a vortex.
const DefaultRespawnDelay = 15

// WorldOptions configures a World.
type WorldOptions struct {
	Spawn        core.Vec2
	RespawnDelay int // Ticks; negative uses DefaultRespawnDelay
	Lives        int // 0 = unlimited soft deaths
	Logger       *log.Logger
}

// World owns all mutable gameplay state of one session: live entities, the
// player, the session and the engine holding their bodies.
type World struct {
	level    *Level
	engine   Engine
	driver   *Driver
	steering Steering
	resolver *Resolver
	session  *Session
	logger   *log.Logger

	player Player
	live   map[EntityID]*Entity
	order  []EntityID // Level order, includes removed ids

	tick         uint64
	respawnDelay int
	respawnAt    uint64
	deathAt      uint64
	deathFrom    core.Vec2
	deathTo      core.Vec2
}

// NewWorld registers every level entity and the player with engine.
func NewWorld(level *Level, engine Engine, steering Steering, opts WorldOptions) (*World, error) {
	if level == nil || engine == nil || steering == nil {
		return nil, fmt.Errorf("maze: world needs a level, an engine and a steering strategy")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	delay := opts.RespawnDelay
	if delay < 0 {
		delay = DefaultRespawnDelay
	}

	w := &World{
		level:        level,
		engine:       engine,
		driver:       NewDriver(engine),
		steering:     steering,
		session:      newSession(opts.Lives),
		logger:       logger,
		live:         make(map[EntityID]*Entity, len(level.Entities)),
		order:        make([]EntityID, 0, len(level.Entities)),
		respawnDelay: delay,
	}
	w.resolver = &Resolver{w: w}

	for i := range level.Entities {
		e := level.Entities[i]
		if err := engine.AddBody(Body{ID: e.ID, Kind: e.Kind, Position: e.Position, Spec: e.Body}); err != nil {
			return nil, fmt.Errorf("maze: add %s body %d: %w", e.Kind, e.ID, err)
		}
		w.live[e.ID] = &e
		w.order = append(w.order, e.ID)
	}

	spec := BodySpecFor(KindPlayer, level.Sprites.width(KindPlayer, level.CellSize))
	w.player = Player{
		Position: opts.Spawn,
		Spawn:    opts.Spawn,
		Radius:   spec.Radius,
		Alive:    true,
	}
	if err := engine.AddBody(Body{ID: PlayerID, Kind: KindPlayer, Position: opts.Spawn, Spec: spec}); err != nil {
		return nil, fmt.Errorf("maze: add player body: %w", err)
	}

	logger.Info("level loaded",
		"level", level.Name,
		"rows", level.Rows,
		"cols", level.Cols,
		"entities", len(level.Entities),
		"stars", level.Count(KindStar))

	return w, nil
}

// Tick advances the session by one step of dt seconds. Once the session
// has ended the world is frozen and the engine is no longer driven.
func (w *World) Tick(dt float64) {
	if w.session.State().Terminal() {
		return
	}
	w.tick++

	if !w.player.Alive && w.tick >= w.respawnAt {
		w.respawn()
	}

	steer := w.steering.Sample(w.player.Position)
	w.player.Steering = steer
	w.driver.Apply(steer)

	contacts := w.engine.Step(dt)
	w.player.Position = w.engine.Position(PlayerID)
	w.resolver.Resolve(contacts)
}

// remove takes an entity out of the live world and the engine.
func (w *World) remove(id EntityID) {
	delete(w.live, id)
	w.engine.RemoveBody(id)
}

// kill handles a vortex hit: the player body stops colliding and a respawn
// is scheduled unless the session just ran out of lives.
func (w *World) kill(vortex *Entity) {
	w.player.Alive = false
	w.engine.SetEnabled(PlayerID, false)
	w.deathAt = w.tick
	w.deathFrom = w.player.Position
	w.deathTo = vortex.Position
	w.respawnAt = w.tick + uint64(w.respawnDelay) //#nosec G115 -- delay is non-negative
	w.session.onVortexHit()

	if w.session.State() == StateLost {
		w.logger.Info("out of lives", "level", w.level.Name, "deaths", w.session.Deaths())
		return
	}
	w.logger.Info("player fell into vortex", "vortex", vortex.ID, "respawn_at", w.respawnAt)
}

func (w *World) respawn() {
	w.engine.Teleport(PlayerID, w.player.Spawn)
	w.engine.SetEnabled(PlayerID, true)
	w.player.Position = w.player.Spawn
	w.player.Alive = true
	w.logger.Info("player respawned", "tick", w.tick)
}

// Level returns the loaded level.
func (w *World) Level() *Level {
	return w.level
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Session returns a read-only view of the session.
func (w *World) Session() SessionView {
	return w.session.view()
}

// TickCount returns the number of ticks simulated.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Gravity returns the field last written into the engine.
func (w *World) Gravity() core.Vec2 {
	return w.driver.Gravity()
}

// Live reports whether an entity is still part of the world.
func (w *World) Live(id EntityID) bool {
	_, ok := w.live[id]
	return ok
}

// Entities returns the live entities in level order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.live))
	for _, id := range w.order {
		if e, ok := w.live[id]; ok {
			out = append(out, *e)
		}
	}
	return out
}

// StarsLeft returns the number of uncollected stars.
func (w *World) StarsLeft() int {
	n := 0
	for _, e := range w.live {
		if e.Kind == KindStar {
			n++
		}
	}
	return n
}

// DeathProgress returns how far the death animation has run, from 0 right
// after a vortex hit to 1 at respawn. It is 0 while the player is alive.
func (w *World) DeathProgress() float64 {
	if w.player.Alive {
		return 0
	}
	if w.respawnDelay == 0 {
		return 1
	}
	return core.ClampF(float64(w.tick-w.deathAt)/float64(w.respawnDelay), 0, 1)
}

// DisplayPosition returns where the player should be drawn: its body
// position while alive, sliding into the vortex centre while dying.
func (w *World) DisplayPosition() core.Vec2 {
	if w.player.Alive {
		return w.player.Position
	}
	t := w.DeathProgress()
	return w.deathFrom.Add(w.deathTo.Sub(w.deathFrom).Scale(t))
}
