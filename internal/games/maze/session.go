package maze

// State is the session state. Won and Lost are terminal.
type State uint8

const (
	StatePlaying State = iota
	StateLost
	StateWon
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateLost:
		return "Lost"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Session holds score and state. Only the collision resolver mutates it.
type Session struct {
	score  int
	state  State
	lives  int // 0 = unlimited
	deaths int
}

func newSession(lives int) *Session {
	return &Session{lives: lives}
}

// Score returns the number of stars collected.
func (s *Session) Score() int { return s.score }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Deaths returns the number of vortex hits so far.
func (s *Session) Deaths() int { return s.deaths }

// LivesLeft returns the remaining lives, or -1 when lives are unlimited.
func (s *Session) LivesLeft() int {
	if s.lives <= 0 {
		return -1
	}
	return max(s.lives-s.deaths, 0)
}

func (s *Session) onStarCollected() {
	if s.state != StatePlaying {
		return
	}
	s.score++
}

// onVortexHit records a death. With limited lives the last one ends the
// session; otherwise the state stays Playing.
func (s *Session) onVortexHit() {
	if s.state != StatePlaying {
		return
	}
	s.deaths++
	if s.lives > 0 && s.deaths >= s.lives {
		s.state = StateLost
	}
}

func (s *Session) onFinishReached() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateWon
}

// SessionView is a read-only copy of the session for renderers.
type SessionView struct {
	Score     int
	State     State
	Deaths    int
	LivesLeft int
}

func (s *Session) view() SessionView {
	return SessionView{
		Score:     s.score,
		State:     s.state,
		Deaths:    s.deaths,
		LivesLeft: s.LivesLeft(),
	}
}
