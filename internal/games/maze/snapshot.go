package maze

import "math"

// Snapshot captures the observable world state with primitive types only,
// for determinism checks.
type Snapshot struct {
	Tick      uint64
	Score     int
	State     int
	PlayerX   int // World units, rounded
	PlayerY   int
	Alive     bool
	Deaths    int
	StarsLeft int
	LiveIDs   []int // Live entity ids in level order
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	ids := make([]int, 0, len(w.live))
	for _, e := range w.Entities() {
		ids = append(ids, int(e.ID))
	}
	s := w.session.view()
	return Snapshot{
		Tick:      w.tick,
		Score:     s.Score,
		State:     int(s.State),
		PlayerX:   int(math.Round(w.player.Position.X)),
		PlayerY:   int(math.Round(w.player.Position.Y)),
		Alive:     w.player.Alive,
		Deaths:    s.Deaths,
		StarsLeft: w.StarsLeft(),
		LiveIDs:   ids,
	}
}

// Hash returns a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + s.Tick
	h = h*31 + uint64(s.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.State)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Deaths)    //#nosec G115 -- hash computation
	h = h*31 + uint64(s.StarsLeft) //#nosec G115 -- hash computation
	if s.Alive {
		h = h*31 + 1
	}
	for _, id := range s.LiveIDs {
		h = h*31 + uint64(id) //#nosec G115 -- hash computation
	}
	return h
}
