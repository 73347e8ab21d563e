package maze

import "slices"

// contactPriority orders same-tick contacts: hazards first, then the goal,
// then pickups. A star touched in the same tick as a vortex is not collected.
func contactPriority(k Kind) int {
	switch k {
	case KindVortex:
		return 0
	case KindFinish:
		return 1
	case KindStar:
		return 2
	default:
		return 3
	}
}

// Resolver turns the engine's contact events into session transitions.
type Resolver struct {
	w *World
}

// Resolve applies one tick's contacts. Contacts that do not involve the
// player or name an entity that is no longer live are ignored, as is
// everything while the player is dead or the session has ended.
func (r *Resolver) Resolve(contacts []Contact) {
	if len(contacts) == 0 {
		return
	}

	hits := make([]*Entity, 0, len(contacts))
	for _, c := range contacts {
		id, ok := c.Other(PlayerID)
		if !ok || id == PlayerID {
			continue
		}
		e, live := r.w.live[id]
		if !live {
			r.w.logger.Debug("stale contact ignored", "entity", id)
			continue
		}
		if !e.ReportsContact() {
			continue
		}
		hits = append(hits, e)
	}

	slices.SortStableFunc(hits, func(a, b *Entity) int {
		return contactPriority(a.Kind) - contactPriority(b.Kind)
	})

	for _, e := range hits {
		r.apply(e)
	}
}

func (r *Resolver) apply(e *Entity) {
	w := r.w
	if !w.player.Alive || w.session.State().Terminal() {
		return
	}
	if _, live := w.live[e.ID]; !live {
		return
	}

	w.logger.Debug("contact", "kind", e.Kind, "entity", e.ID, "tick", w.tick)

	switch e.Kind {
	case KindStar:
		w.remove(e.ID)
		w.session.onStarCollected()
	case KindVortex:
		w.kill(e)
	case KindFinish:
		w.session.onFinishReached()
		w.logger.Info("level finished", "level", w.level.Name, "score", w.session.Score(), "tick", w.tick)
	}
}
